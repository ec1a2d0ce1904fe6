package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pops-math/popsmath-web/internal/scoring"

	"github.com/go-chi/chi/v5"
)

// answersFromStrings converts the wire shape {"1":"A",...} into
// question-number keys. Non-numeric keys are a client bug.
func answersFromStrings(in map[string]string) (map[int]string, bool) {
	out := make(map[int]string, len(in))
	for k, v := range in {
		n, err := strconv.Atoi(k)
		if err != nil {
			return nil, false
		}
		out[n] = v
	}
	return out, true
}

func SubmitTestHandler(eng *scoring.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "testID"))
		if err != nil {
			http.Error(w, "bad test id", http.StatusBadRequest)
			return
		}
		var req struct {
			Answers map[string]string `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		answers, ok := answersFromStrings(req.Answers)
		if !ok {
			http.Error(w, "answers must be keyed by question number", http.StatusBadRequest)
			return
		}
		res, err := eng.SubmitTest(id, answers)
		if err != nil {
			writeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}

func SubmitRetryHandler(eng *scoring.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			AttemptID string            `json:"attempt_id"`
			Answers   map[string]string `json:"answers"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.AttemptID == "" {
			http.Error(w, "attempt_id required", http.StatusBadRequest)
			return
		}
		answers, ok := answersFromStrings(req.Answers)
		if !ok {
			http.Error(w, "answers must be keyed by question number", http.StatusBadRequest)
			return
		}
		res, err := eng.SubmitRetry(req.AttemptID, answers)
		if err != nil {
			writeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(res)
	}
}
