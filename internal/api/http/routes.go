// Package http is the JSON surface the front-end renders from. It owns
// no domain rules: every response is assembled from the content catalog,
// the progress store, and the scoring engine.
package http

import (
	"net/http"

	"github.com/pops-math/popsmath-web/internal/content"
	"github.com/pops-math/popsmath-web/internal/progress"
	"github.com/pops-math/popsmath-web/internal/scoring"

	"github.com/go-chi/chi/v5"
)

// Mount wires every route onto r.
func Mount(r chi.Router, c *content.Store, ps *progress.Store, eng *scoring.Engine, u *Unlocker) {
	// Read-only catalog.
	r.Get("/content/sections", ListSectionsHandler(c))
	r.Get("/content/sections/{sectionID}/lesson", GetLessonHandler(c))
	r.Get("/content/sections/{sectionID}/practice", GetPracticeHandler(c))
	r.Get("/content/tests/{testID}", GetTestHandler(c))

	// Progress snapshot and reset.
	r.Get("/progress", GetProgressHandler(ps, c))
	r.Post("/progress/reset", ResetProgressHandler(eng, ps, c))

	// Practice flow.
	r.Get("/sections/{sectionID}/practice/state", GetPracticeStateHandler(eng))
	r.Post("/sections/{sectionID}/practice/check", CheckAnswerHandler(eng))
	r.Post("/sections/{sectionID}/practice/reset", ResetPracticeHandler(eng))
	r.Post("/sections/{sectionID}/complete", MarkCompleteHandler(eng))

	// Tests: two-phase submission. Neither route checks an unlock
	// token; the password screen is presentation, never scoring.
	r.Post("/tests/{testID}/submit", SubmitTestHandler(eng))
	r.Post("/tests/retry", SubmitRetryHandler(eng))

	// Soft password gates.
	r.Post("/unlock", UnlockHandler(u))
	r.With(RequireUnlock(u, ScopeExplanations)).
		Get("/tests/{testID}/explanations", GetTestExplanationsHandler(c))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })
}
