package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/jaminalder/codex-dominoes/internal/app"
	"github.com/jaminalder/codex-dominoes/internal/i18n"
)

// NewServer wires routes and returns an http.Handler. Broadcast fragments
// are rendered in lang.
func NewServer(s *app.Service, lang string, logger zerolog.Logger) http.Handler {
	h := &handlers{
		svc:    s,
		tpl:    loadTemplates(),
		lang:   lang,
		logger: logger.With().Str("component", "web").Logger(),
	}
	s.SetRenderer(func(gs app.GameState) []byte {
		return h.renderBoard(gs, i18n.Printer(lang), "")
	})

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(requestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Get("/", h.index)
	r.Post("/game", h.create)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Get("/", h.view)
		r.Post("/join", h.join)
		r.Post("/play", h.play)
		r.Post("/computer", h.computer)
		r.Get("/events", h.events)
	})
	return r
}
