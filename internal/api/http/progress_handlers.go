package http

import (
	"encoding/json"
	"net/http"

	"github.com/pops-math/popsmath-web/internal/content"
	"github.com/pops-math/popsmath-web/internal/progress"
	"github.com/pops-math/popsmath-web/internal/scoring"
)

func GetProgressHandler(ps *progress.Store, c *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := ps.Load()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(buildProgressView(p, c))
	}
}

// ResetProgressHandler erases the whole record plus any live practice
// sessions and attempt snapshots. Explicit action only; nothing expires
// or resets on its own.
func ResetProgressHandler(eng *scoring.Engine, ps *progress.Store, c *content.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := eng.ResetAll(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		p, err := ps.Load()
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(buildProgressView(p, c))
	}
}
