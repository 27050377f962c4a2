package quiz

import "testing"

func TestProfilesInDefinitionOrder(t *testing.T) {
	ps := Profiles()
	if len(ps) != NumTypes {
		t.Fatalf("Profiles() len = %d, want %d", len(ps), NumTypes)
	}
	for i, p := range ps {
		if p.ID != TypeOrder[i] {
			t.Errorf("Profiles()[%d] = %q, want %q", i, p.ID, TypeOrder[i])
		}
		if p.Name == "" || p.LocalName == "" || p.Description == "" {
			t.Errorf("profile %q has empty names or description", p.ID)
		}
		if len(p.Strengths) == 0 || len(p.Roles) == 0 || len(p.GrowthPoints) == 0 {
			t.Errorf("profile %q has empty lists", p.ID)
		}
		if p.FourPillars == "" || p.FiveElements == "" {
			t.Errorf("profile %q missing interpretive texts", p.ID)
		}
	}
}

func TestQuestionTypeMapping(t *testing.T) {
	want := map[TypeID][]int{
		Commander:   {0, 8},
		Analyzer:    {1, 9},
		Implementer: {2},
		Creator:     {3},
		Coordinator: {4},
		Stabilizer:  {5},
		Finisher:    {6},
		Catalyst:    {7},
	}
	for id, idx := range want {
		got := QuestionsFor(id)
		if len(got) != len(idx) {
			t.Errorf("QuestionsFor(%q) = %v, want %v", id, got, idx)
			continue
		}
		for i := range got {
			if got[i] != idx[i] {
				t.Errorf("QuestionsFor(%q) = %v, want %v", id, got, idx)
			}
		}
	}
}

func TestQuestionAt(t *testing.T) {
	if _, ok := QuestionAt(-1); ok {
		t.Error("QuestionAt(-1) should be out of range")
	}
	if _, ok := QuestionAt(NumQuestions); ok {
		t.Error("QuestionAt(NumQuestions) should be out of range")
	}
	q, ok := QuestionAt(3)
	if !ok || q.Index != 3 || q.Type != Creator {
		t.Errorf("QuestionAt(3) = %+v, %v", q, ok)
	}
}

func TestLookupType(t *testing.T) {
	tests := []struct {
		in   string
		want TypeID
		ok   bool
	}{
		{"Analyzer", Analyzer, true},
		{"analyzer", Analyzer, true},
		{"  catalyst ", Catalyst, true},
		{"完遂者型", Finisher, true},
		{"Wizard", "", false},
	}
	for _, tt := range tests {
		p, ok := LookupType(tt.in)
		if ok != tt.ok {
			t.Errorf("LookupType(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if ok && p.ID != tt.want {
			t.Errorf("LookupType(%q) = %q, want %q", tt.in, p.ID, tt.want)
		}
	}
}

func TestRatingLabel(t *testing.T) {
	if RatingLabel(1) != "strongly disagree" {
		t.Errorf("RatingLabel(1) = %q", RatingLabel(1))
	}
	if RatingLabel(5) != "strongly agree" {
		t.Errorf("RatingLabel(5) = %q", RatingLabel(5))
	}
	if RatingLabel(0) != "" || RatingLabel(6) != "" {
		t.Error("out of range ratings should have empty labels")
	}
}

func TestResponsesComplete(t *testing.T) {
	var r Responses
	if r.Complete() {
		t.Error("empty responses should not be complete")
	}
	for i := range r {
		r[i] = 3
	}
	if !r.Complete() || r.Answered() != NumQuestions {
		t.Error("fully rated responses should be complete")
	}
	r[4] = 7
	if r.Complete() {
		t.Error("out of range rating should make responses incomplete")
	}

	if _, ok := ResponsesFrom([]int{1, 2, 3}); ok {
		t.Error("ResponsesFrom should reject short slices")
	}
}
