package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/villnoweric/package-delivery-tycoon/core/events"
	"github.com/villnoweric/package-delivery-tycoon/core/geo"
	"github.com/villnoweric/package-delivery-tycoon/core/journal"
	"github.com/villnoweric/package-delivery-tycoon/core/model"
	"github.com/villnoweric/package-delivery-tycoon/core/planner"
)

// ExecuteRoute dispatches the driver on a manually chosen town list. Pending
// packages are loaded FIFO in town order up to the vehicle capacity; loading
// zero packages aborts the dispatch.
func (g *Game) ExecuteRoute(driverID string, towns []string) (model.ActiveRoute, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	d := g.driverByID(driverID)
	if d == nil {
		return model.ActiveRoute{}, fmt.Errorf("%w: driver %s", ErrEntityNotFound, driverID)
	}
	if d.AssignedVehicle == "" {
		return model.ActiveRoute{}, fmt.Errorf("%w: driver %s has no vehicle", ErrEntityNotFound, driverID)
	}
	v := g.vehicleByID(d.AssignedVehicle)
	if v == nil {
		return model.ActiveRoute{}, fmt.Errorf("%w: vehicle %s", ErrEntityNotFound, d.AssignedVehicle)
	}

	pool := g.pendingIndexByTown()
	load := collectLoad(pool, towns, v.Type().Capacity)
	if len(load) == 0 {
		return model.ActiveRoute{}, fmt.Errorf("%w: towns %v", ErrNoCargo, towns)
	}

	est := planner.EstimateRoute(towns, g.pendingByTown(), g.state.ServiceTowns, v.Type().Capacity)
	route := model.ActiveRoute{
		ID:             "ROUTE-" + uuid.NewString(),
		DriverID:       d.ID,
		VehicleID:      v.ID,
		Towns:          append([]string(nil), towns...),
		Status:         model.RouteActive,
		Day:            g.state.Day,
		EstimatedMiles: est.Miles,
		EstimatedHours: est.Hours,
		EstimatedStops: est.Stops,
	}
	g.loadPackages(&route, load, v)
	g.state.Routes = append(g.state.Routes, route)

	g.notify(model.NoticeSuccess, fmt.Sprintf("%s dispatched with %d packages", d.Name, len(load)))
	g.recordDispatch(route, false)
	routesDispatched.WithLabelValues("manual").Inc()
	g.log.Infof("route %s dispatched: driver=%s towns=%v packages=%d", route.ID, d.ID, towns, len(load))
	return route, nil
}

// autoDispatch sweeps all dispatch-ready drivers at end of day. Each driver
// runs their configured route; claimed packages leave the shared pool so a
// later driver cannot load them. Caller holds the mutex.
func (g *Game) autoDispatch() int {
	pool := g.pendingIndexByTown()

	busy := make(map[string]bool)
	for _, r := range g.state.Routes {
		if r.Status == model.RouteActive && r.Day == g.state.Day {
			busy[r.DriverID] = true
		}
	}

	count := 0
	for i := range g.state.Drivers {
		d := &g.state.Drivers[i]
		if !d.DispatchReady() || busy[d.ID] {
			continue
		}
		cr, _ := g.configuredRouteByID(d.AssignedRoute)
		if cr == nil || len(cr.Towns) == 0 {
			continue
		}
		v := g.vehicleByID(d.AssignedVehicle)
		if v == nil {
			continue
		}

		load := collectLoad(pool, cr.Towns, v.Type().Capacity)
		if len(load) == 0 {
			continue
		}
		route := model.ActiveRoute{
			ID:                "ROUTE-" + uuid.NewString(),
			DriverID:          d.ID,
			VehicleID:         v.ID,
			ConfiguredRouteID: cr.ID,
			Towns:             append([]string(nil), cr.Towns...),
			Status:            model.RouteActive,
			Day:               g.state.Day,
		}
		g.loadPackages(&route, load, v)
		g.state.Routes = append(g.state.Routes, route)
		consumeLoad(pool, cr.Towns, len(load))
		busy[d.ID] = true
		count++

		g.recordDispatch(route, true)
		routesDispatched.WithLabelValues("auto").Inc()
		g.log.Debugf("auto dispatch: route %s driver=%s packages=%d", route.ID, d.ID, len(load))
	}
	return count
}

// collectLoad concatenates each town's pending queue in town order and
// truncates to capacity.
func collectLoad(pool map[string][]int, towns []string, capacity int) []int {
	var load []int
	for _, t := range towns {
		load = append(load, pool[t]...)
	}
	if len(load) > capacity {
		load = load[:capacity]
	}
	return load
}

// consumeLoad removes the first n entries of the concatenated town queues
// from the pool, mirroring the prefix truncation done by collectLoad.
func consumeLoad(pool map[string][]int, towns []string, n int) {
	for _, t := range towns {
		if n == 0 {
			return
		}
		q := pool[t]
		take := n
		if take > len(q) {
			take = len(q)
		}
		pool[t] = q[take:]
		n -= take
	}
}

// loadPackages marks the selected packages in-transit on the route and
// accrues fuel cost per package over the real origin-destination distance.
func (g *Game) loadPackages(route *model.ActiveRoute, load []int, v *model.Vehicle) {
	perMile := v.Type().FuelCostPerMile
	for _, idx := range load {
		p := &g.state.Packages[idx]
		p.Status = model.PackageInTransit
		p.AssignedRoute = route.ID
		p.PickupDay = g.state.Day
		route.Packages = append(route.Packages, p.ID)
		miles := geo.DistanceMiles(p.Origin.Coord(), p.Destination.Coord())
		g.state.Finances.Expenses.Fuel += miles * perMile
	}
}

func (g *Game) recordDispatch(route model.ActiveRoute, auto bool) {
	if g.bus != nil {
		g.bus.Publish(events.RouteDispatchedEvent{
			RouteID:  route.ID,
			DriverID: route.DriverID,
			Towns:    route.Towns,
			Packages: len(route.Packages),
			Auto:     auto,
			Day:      route.Day,
		})
	}
	rec := journal.Record{
		Timestamp: time.Now().UTC(),
		Day:       route.Day,
		Kind:      journal.KindDispatch,
		Route: &journal.RouteEntry{
			RouteID:        route.ID,
			DriverID:       route.DriverID,
			VehicleID:      route.VehicleID,
			Towns:          route.Towns,
			Packages:       route.Packages,
			Auto:           auto,
			EstimatedMiles: route.EstimatedMiles,
			EstimatedHours: route.EstimatedHours,
		},
	}
	if err := g.journal.Append(context.Background(), rec); err != nil {
		g.log.Warnf("journal append failed: %v", err)
	}
}
