package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/secmon-lab/offboarding/pkg/service/report"
	"github.com/secmon-lab/offboarding/pkg/usecase"
)

type Server struct {
	router   *chi.Mux
	uc       *usecase.UseCases
	report   *report.Renderer
	upgrader websocket.Upgrader
}

type Options func(*Server)

// WithReport replaces the PDF case report renderer
func WithReport(r *report.Renderer) Options {
	return func(s *Server) {
		s.report = r
	}
}

// WithCheckOrigin sets the origin policy of websocket upgrades
func WithCheckOrigin(fn func(r *http.Request) bool) Options {
	return func(s *Server) {
		s.upgrader.CheckOrigin = fn
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router: r,
		uc:     uc,
		report: report.New(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(requestLogger)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", healthHandler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/dashboard", func(r chi.Router) {
			r.Get("/", dashboardHandler(uc.Dashboard))
			r.Put("/filter", setFilterHandler(uc.Dashboard))
			r.Post("/refresh", refreshHandler(uc.Dashboard))
			r.Post("/reminders", reminderHandler(uc.Dashboard))
		})
		r.Get("/sidebar", sidebarHandler(uc.Dashboard))
		r.Get("/cases/report.pdf", reportHandler(uc.Dashboard, s.report))

		r.Get("/directory", suggestHandler(uc.Directory))
		r.Get("/directory/lookup", lookupHandler(uc.Directory))
		r.Get("/form-options", formOptionsHandler)

		r.Route("/drafts", func(r chi.Router) {
			r.Post("/", createDraftHandler(uc.Draft))
			r.Route("/{draftID}", func(r chi.Router) {
				r.Get("/", getDraftHandler(uc.Draft))
				r.Delete("/", discardDraftHandler(uc.Draft))
				r.Patch("/", patchDraftHandler(uc.Draft))
				r.Put("/teams/{team}", addTeamHandler(uc.Draft))
				r.Delete("/teams/{team}", removeTeamHandler(uc.Draft))
				r.Post("/review", transitionHandler(uc.Draft.Review))
				r.Post("/back", transitionHandler(uc.Draft.Back))
				r.Post("/clear", transitionHandler(uc.Draft.Clear))
				r.Post("/confirm", confirmHandler(uc.Draft))
			})
		})

		r.Get("/notification", getNotificationHandler(uc.Notifier()))
		r.Delete("/notification", hideNotificationHandler(uc.Notifier()))
	})

	r.Get("/ws/notification", notificationStreamHandler(uc.Notifier(), &s.upgrader))

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}
