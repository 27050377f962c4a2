package quiz

// NumQuestions is the fixed length of the questionnaire.
const NumQuestions = 10

// Question is a single Likert-scale statement. Type is consulted only by the
// fallback scorer.
type Question struct {
	Index int    `json:"index"`
	Text  string `json:"text"`
	Type  TypeID `json:"-"`
}

// questions is the questionnaire in presentation order.
var questions = [NumQuestions]Question{
	{Index: 0, Type: Commander, Text: "I am good at leading a team and getting people moving toward a goal."},
	{Index: 1, Type: Analyzer, Text: "When I make a decision, I put weight on logical analysis and detailed data."},
	{Index: 2, Type: Implementer, Text: "I value action over ideas and usually put things into practice right away."},
	{Index: 3, Type: Creator, Text: "I enjoy coming up with new ideas and bringing innovation to the way things are done."},
	{Index: 4, Type: Coordinator, Text: "I am good at keeping the team in harmony and bridging people so everyone works together."},
	{Index: 5, Type: Stabilizer, Text: "I prefer stability to change and care about delivering consistent performance."},
	{Index: 6, Type: Finisher, Text: "I pay attention to every detail and care about finishing projects perfectly."},
	{Index: 7, Type: Catalyst, Text: "I am good at encouraging people and raising motivation to drive change."},
	{Index: 8, Type: Commander, Text: "I like setting clear goals and planning a strategy to reach them."},
	{Index: 9, Type: Analyzer, Text: "When solving a problem I take time to gather information and analyse it carefully."},
}

// Questions returns the questionnaire in order.
func Questions() []Question {
	out := make([]Question, NumQuestions)
	copy(out, questions[:])
	return out
}

// QuestionAt returns the question at index i and whether i is in range.
func QuestionAt(i int) (Question, bool) {
	if i < 0 || i >= NumQuestions {
		return Question{}, false
	}
	return questions[i], true
}

// QuestionsFor returns the indices of the questions associated with id.
func QuestionsFor(id TypeID) []int {
	var idx []int
	for _, q := range questions {
		if q.Type == id {
			idx = append(idx, q.Index)
		}
	}
	return idx
}
