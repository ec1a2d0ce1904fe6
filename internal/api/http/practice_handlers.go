package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pops-math/popsmath-web/internal/scoring"

	"github.com/go-chi/chi/v5"
)

func sectionID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "sectionID"))
	return id, err == nil
}

func CheckAnswerHandler(eng *scoring.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sectionID(r)
		if !ok {
			http.Error(w, "bad section id", http.StatusBadRequest)
			return
		}
		var req struct {
			QuestionID string `json:"question_id"`
			Selected   string `json:"selected"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad json", http.StatusBadRequest)
			return
		}
		if req.QuestionID == "" || req.Selected == "" {
			http.Error(w, "question_id and selected required", http.StatusBadRequest)
			return
		}
		st, err := eng.CheckAnswer(id, req.QuestionID, req.Selected)
		if err != nil {
			writeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(st)
	}
}

func ResetPracticeHandler(eng *scoring.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sectionID(r)
		if !ok {
			http.Error(w, "bad section id", http.StatusBadRequest)
			return
		}
		st, err := eng.ResetPractice(id)
		if err != nil {
			writeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(st)
	}
}

func MarkCompleteHandler(eng *scoring.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sectionID(r)
		if !ok {
			http.Error(w, "bad section id", http.StatusBadRequest)
			return
		}
		st, err := eng.MarkSectionComplete(id)
		if err != nil {
			writeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(st)
	}
}

func GetPracticeStateHandler(eng *scoring.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := sectionID(r)
		if !ok {
			http.Error(w, "bad section id", http.StatusBadRequest)
			return
		}
		st, err := eng.PracticeStateFor(id)
		if err != nil {
			writeError(w, err)
			return
		}
		_ = json.NewEncoder(w).Encode(st)
	}
}
