package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/villnoweric/package-delivery-tycoon/core/journal"
	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.game.Snapshot())
}

func (s *Server) handleNotices(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.game.Notices())
}

func (s *Server) handleAdvanceDay(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, s.game.AdvanceDay())
}

type townRequest struct {
	Town string `json:"town"`
}

func (s *Server) handleBuyDepot(w http.ResponseWriter, r *http.Request) {
	var req townRequest
	if !s.decode(w, r, &req) {
		return
	}
	d, err := s.game.BuyDepot(req.Town)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleBuyHub(w http.ResponseWriter, r *http.Request) {
	var req townRequest
	if !s.decode(w, r, &req) {
		return
	}
	h, err := s.game.BuyHub(req.Town)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, h)
}

func (s *Server) handleBuyVehicle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Type string `json:"type"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	v, err := s.game.BuyVehicle(model.VehicleKind(req.Type))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, v)
}

func (s *Server) handleHireDriver(w http.ResponseWriter, r *http.Request) {
	d, err := s.game.HireDriver()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, d)
}

func (s *Server) handleTakeLoan(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Amount float64 `json:"amount"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if req.Amount <= 0 {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "amount must be positive"})
		return
	}
	if err := s.game.TakeLoan(req.Amount); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, s.game.Snapshot())
}

func (s *Server) handleRepayLoan(w http.ResponseWriter, r *http.Request) {
	repaid, err := s.game.RepayLoan()
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]float64{"repaid": repaid})
}

func (s *Server) handleCreateRoute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if req.Name == "" {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "route name is required"})
		return
	}
	route, err := s.game.CreateRoute(chi.URLParam(r, "depotID"), req.Name)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, route)
}

func (s *Server) handleDeleteRoute(w http.ResponseWriter, r *http.Request) {
	if err := s.game.DeleteRoute(chi.URLParam(r, "depotID"), chi.URLParam(r, "routeID")); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleToggleRouteTown(w http.ResponseWriter, r *http.Request) {
	var req townRequest
	if !s.decode(w, r, &req) {
		return
	}
	route, err := s.game.ToggleRouteTown(chi.URLParam(r, "depotID"), chi.URLParam(r, "routeID"), req.Town)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, route)
}

func (s *Server) handleAssignDriverRoute(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RouteID string `json:"routeId"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if err := s.game.AssignDriverRoute(chi.URLParam(r, "driverID"), req.RouteID); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handlePlanRoutes(w http.ResponseWriter, r *http.Request) {
	options, err := s.game.PlanRoutes(chi.URLParam(r, "driverID"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, options)
}

func (s *Server) handleDispatch(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Towns []string `json:"towns"`
	}
	if !s.decode(w, r, &req) {
		return
	}
	if len(req.Towns) == 0 {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "at least one town is required"})
		return
	}
	route, err := s.game.ExecuteRoute(chi.URLParam(r, "driverID"), req.Towns)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, route)
}

func (s *Server) handleNearestDepot(w http.ResponseWriter, r *http.Request) {
	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil {
		s.writeJSON(w, http.StatusBadRequest, errorBody{Error: "lat and lon are required"})
		return
	}
	d, ok := s.game.NearestDepot(model.Coord{Lat: lat, Lon: lon})
	if !ok {
		s.writeJSON(w, http.StatusNotFound, errorBody{Error: "no depots"})
		return
	}
	s.writeJSON(w, http.StatusOK, d)
}

func (s *Server) handleJournal(w http.ResponseWriter, r *http.Request) {
	q := journal.Query{
		Kind:     journal.Kind(r.URL.Query().Get("kind")),
		DriverID: r.URL.Query().Get("driver_id"),
	}
	if v := r.URL.Query().Get("from"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.FromDay = n
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			q.ToDay = n
		}
	}
	records, err := s.journal.Query(r.Context(), q)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleSave(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Save(r.Context(), s.game.Snapshot()); err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}

func (s *Server) handleLoad(w http.ResponseWriter, r *http.Request) {
	st, err := s.store.Load(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.game.Restore(st)
	s.writeJSON(w, http.StatusOK, s.game.Snapshot())
}
