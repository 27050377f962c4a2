package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/abhisek/keizoku/internal/diagnosis"
	"github.com/abhisek/keizoku/internal/quiz"
	"github.com/abhisek/keizoku/internal/session"
)

// maxBodyBytes bounds request bodies; the largest valid one is a handful of
// numbers.
const maxBodyBytes = 4 << 10

type questionsResponse struct {
	Questions []quiz.Question `json:"questions"`
	Labels    []string        `json:"labels"`
}

type resultView struct {
	*diagnosis.Result
	Profile  *quiz.TypeProfile     `json:"profile"`
	Ranked   []diagnosis.TypeScore `json:"ranked"`
	Degraded bool                  `json:"degraded"`
}

type sessionView struct {
	ID       string         `json:"id"`
	Current  int            `json:"current"`
	Total    int            `json:"total"`
	Complete bool           `json:"complete"`
	Question *quiz.Question `json:"question,omitempty"`
	Result   *resultView    `json:"result,omitempty"`
}

type answerRequest struct {
	Index  int     `json:"index"`
	Rating float64 `json:"rating"`
}

type classifyRequest struct {
	Ratings []float64 `json:"ratings"`
}

func newResultView(res *diagnosis.Result) *resultView {
	if res == nil {
		return nil
	}
	return &resultView{
		Result:   res,
		Profile:  res.Profile(),
		Ranked:   res.Ranked(),
		Degraded: res.Degraded(),
	}
}

func newSessionView(id string, st session.State) sessionView {
	answered, total := st.Progress()
	v := sessionView{
		ID:       id,
		Current:  answered,
		Total:    total,
		Complete: st.IsComplete(),
		Result:   newResultView(st.Result),
	}
	if q, ok := st.CurrentQuestion(); ok {
		v.Question = &q
	}
	return v
}

func (s *Server) handleQuestions(w http.ResponseWriter, _ *http.Request) {
	labels := make([]string, 0, quiz.MaxRating)
	for r := quiz.MinRating; r <= quiz.MaxRating; r++ {
		labels = append(labels, quiz.RatingLabel(r))
	}
	writeJSON(w, http.StatusOK, questionsResponse{Questions: quiz.Questions(), Labels: labels})
}

func (s *Server) handleTypes(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"types": quiz.Profiles()})
}

func (s *Server) handleType(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	p, ok := quiz.LookupType(name)
	if !ok {
		writeError(w, http.StatusNotFound, fmt.Sprintf("unknown type %q", name))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	var req classifyRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if len(req.Ratings) != quiz.NumQuestions {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("expected %d ratings, got %d", quiz.NumQuestions, len(req.Ratings)))
		return
	}

	var responses quiz.Responses
	for i, f := range req.Ratings {
		rating, err := session.RatingFromFloat(f)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("rating %d: %v", i+1, err))
			return
		}
		responses[i] = rating
	}

	res, err := s.classifier.Classify(r.Context(), responses)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newResultView(res))
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	id, e := s.sessions.create()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(s.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.logger.Debug("session created", zap.String("session_id", id))

	e.mu.Lock()
	defer e.mu.Unlock()
	writeJSON(w, http.StatusCreated, newSessionView(id, e.state))
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id, e, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	writeJSON(w, http.StatusOK, newSessionView(id, e.state))
}

func (s *Server) handleAnswer(w http.ResponseWriter, r *http.Request) {
	id, e, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	var req answerRequest
	if !decodeBody(w, r, &req) {
		return
	}
	rating, err := session.RatingFromFloat(req.Rating)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	next, err := session.Record(e.state, req.Index, rating)
	if err != nil {
		s.writeDomainError(w, err)
		return
	}
	if next.IsComplete() {
		ctx := diagnosis.WithSessionID(r.Context(), id)
		next, err = session.Complete(ctx, next, s.classifier)
		if err != nil {
			s.writeDomainError(w, err)
			return
		}
	}
	e.state = next
	writeJSON(w, http.StatusOK, newSessionView(id, e.state))
}

func (s *Server) handleReset(w http.ResponseWriter, r *http.Request) {
	id, e, ok := s.lookupSession(w, r)
	if !ok {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state = session.Reset()
	writeJSON(w, http.StatusOK, newSessionView(id, e.state))
}

// lookupSession resolves {id}; the literal "current" means the session
// named by the cookie.
func (s *Server) lookupSession(w http.ResponseWriter, r *http.Request) (string, *sessionEntry, bool) {
	id := chi.URLParam(r, "id")
	if id == "current" {
		c, err := r.Cookie(sessionCookie)
		if err != nil {
			writeError(w, http.StatusNotFound, "no session cookie")
			return "", nil, false
		}
		id = c.Value
	}
	e, ok := s.sessions.get(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found or expired")
		return "", nil, false
	}
	return id, e, true
}

func (s *Server) writeDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, session.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, diagnosis.ErrPreconditionViolation):
		writeError(w, http.StatusConflict, err.Error())
	default:
		s.logger.Error("request failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
