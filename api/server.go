// Package api exposes the simulation over HTTP. It is a thin control
// surface: handlers decode, call one engine operation and encode the
// result. All game rules live in core/game.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/villnoweric/package-delivery-tycoon/core/game"
	"github.com/villnoweric/package-delivery-tycoon/core/journal"
	"github.com/villnoweric/package-delivery-tycoon/infra/logger"
	"github.com/villnoweric/package-delivery-tycoon/infra/persist"
)

// Server bundles the handlers' dependencies.
type Server struct {
	game    *game.Game
	store   persist.Store
	journal journal.Store
	log     logger.Logger
}

// NewServer wires the control surface over the engine.
func NewServer(g *game.Game, store persist.Store, jstore journal.Store) *Server {
	return &Server{
		game:    g,
		store:   store,
		journal: jstore,
		log:     logger.New("api"),
	}
}

// Router builds the HTTP route tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", s.handleState)
		r.Get("/notices", s.handleNotices)
		r.Post("/day/advance", s.handleAdvanceDay)

		r.Post("/depots", s.handleBuyDepot)
		r.Get("/depots/nearest", s.handleNearestDepot)
		r.Post("/hubs", s.handleBuyHub)
		r.Post("/vehicles", s.handleBuyVehicle)
		r.Post("/drivers", s.handleHireDriver)

		r.Post("/loans", s.handleTakeLoan)
		r.Post("/loans/repay", s.handleRepayLoan)

		r.Route("/depots/{depotID}/routes", func(r chi.Router) {
			r.Post("/", s.handleCreateRoute)
			r.Delete("/{routeID}", s.handleDeleteRoute)
			r.Post("/{routeID}/towns", s.handleToggleRouteTown)
		})

		r.Post("/drivers/{driverID}/route", s.handleAssignDriverRoute)
		r.Get("/drivers/{driverID}/plan", s.handlePlanRoutes)
		r.Post("/drivers/{driverID}/dispatch", s.handleDispatch)

		r.Get("/journal", s.handleJournal)
		r.Post("/save", s.handleSave)
		r.Post("/load", s.handleLoad)
	})
	return r
}
