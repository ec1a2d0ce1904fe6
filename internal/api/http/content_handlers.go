package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/pops-math/popsmath-web/internal/content"

	"github.com/go-chi/chi/v5"
)

func ListSectionsHandler(c *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(c.Meta())
	}
}

func GetLessonHandler(c *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "sectionID"))
		if err != nil {
			http.Error(w, "bad section id", http.StatusBadRequest)
			return
		}
		l, ok := c.Lesson(id)
		if !ok {
			http.Error(w, "section not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(l)
	}
}

// GetPracticeHandler serves a section's practice set with answer keys
// and explanations stripped; those come back per question via the check
// action.
func GetPracticeHandler(c *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "sectionID"))
		if err != nil {
			http.Error(w, "bad section id", http.StatusBadRequest)
			return
		}
		qs, ok := c.Questions(id)
		if !ok {
			http.Error(w, "section not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"section_id": id,
			"questions":  stripQuestions(qs),
		})
	}
}

func GetTestHandler(c *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "testID"))
		if err != nil {
			http.Error(w, "bad test id", http.StatusBadRequest)
			return
		}
		t, ok := c.Test(id)
		if !ok {
			http.Error(w, "test not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(stripTest(t))
	}
}

// GetTestExplanationsHandler serves the full question list, answers and
// explanations included. The route sits behind the explanations unlock
// token, a UX deterrent only.
func GetTestExplanationsHandler(c *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.Atoi(chi.URLParam(r, "testID"))
		if err != nil {
			http.Error(w, "bad test id", http.StatusBadRequest)
			return
		}
		t, ok := c.Test(id)
		if !ok {
			http.Error(w, "test not found", http.StatusNotFound)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"test_info": t.TestInfo,
			"questions": t.Questions,
		})
	}
}
