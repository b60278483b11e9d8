package game

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/villnoweric/package-delivery-tycoon/core/geo"
	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

// Lookup helpers return pointers into the state slices. They are only valid
// for the duration of the operation that obtained them; callers hold the
// mutex.

func (g *Game) townByName(name string) (model.Town, bool) {
	for _, t := range g.state.ServiceTowns {
		if t.Name == name {
			return t, true
		}
	}
	return model.Town{}, false
}

func (g *Game) depotByID(id string) *model.Depot {
	for i := range g.state.Depots {
		if g.state.Depots[i].ID == id {
			return &g.state.Depots[i]
		}
	}
	return nil
}

func (g *Game) vehicleByID(id string) *model.Vehicle {
	for i := range g.state.Vehicles {
		if g.state.Vehicles[i].ID == id {
			return &g.state.Vehicles[i]
		}
	}
	return nil
}

func (g *Game) driverByID(id string) *model.Driver {
	for i := range g.state.Drivers {
		if g.state.Drivers[i].ID == id {
			return &g.state.Drivers[i]
		}
	}
	return nil
}

// configuredRouteByID searches every depot for the route.
func (g *Game) configuredRouteByID(id string) (*model.ConfiguredRoute, *model.Depot) {
	for i := range g.state.Depots {
		d := &g.state.Depots[i]
		for j := range d.ConfiguredRoutes {
			if d.ConfiguredRoutes[j].ID == id {
				return &d.ConfiguredRoutes[j], d
			}
		}
	}
	return nil, nil
}

// pendingByTown groups pending packages by origin town, preserving creation
// order within each town.
func (g *Game) pendingByTown() map[string][]model.Package {
	out := make(map[string][]model.Package)
	for _, p := range g.state.Packages {
		if p.Status == model.PackagePending {
			out[p.Origin.Name] = append(out[p.Origin.Name], p)
		}
	}
	return out
}

// pendingIndexByTown is the mutable variant used by dispatch: indices into
// state.Packages so loading can update packages in place and remove claimed
// entries from the pool.
func (g *Game) pendingIndexByTown() map[string][]int {
	out := make(map[string][]int)
	for i, p := range g.state.Packages {
		if p.Status == model.PackagePending {
			out[p.Origin.Name] = append(out[p.Origin.Name], i)
		}
	}
	return out
}

// CreateRoute adds an empty named route to the depot.
func (g *Game) CreateRoute(depotID, name string) (model.ConfiguredRoute, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	d := g.depotByID(depotID)
	if d == nil {
		return model.ConfiguredRoute{}, fmt.Errorf("%w: depot %s", ErrEntityNotFound, depotID)
	}
	r := model.ConfiguredRoute{
		ID:      "RTE-" + uuid.NewString(),
		Name:    name,
		DepotID: d.ID,
	}
	d.ConfiguredRoutes = append(d.ConfiguredRoutes, r)
	g.log.Debugf("route %s created at depot %s", r.ID, d.ID)
	return r, nil
}

// DeleteRoute removes the route from its depot and unassigns every driver
// referencing it, so no dangling assignment survives.
func (g *Game) DeleteRoute(depotID, routeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	d := g.depotByID(depotID)
	if d == nil {
		return fmt.Errorf("%w: depot %s", ErrEntityNotFound, depotID)
	}
	idx := -1
	for i, r := range d.ConfiguredRoutes {
		if r.ID == routeID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: route %s", ErrEntityNotFound, routeID)
	}
	d.ConfiguredRoutes = append(d.ConfiguredRoutes[:idx], d.ConfiguredRoutes[idx+1:]...)
	for i := range g.state.Drivers {
		if g.state.Drivers[i].AssignedRoute == routeID {
			g.state.Drivers[i].AssignedRoute = ""
		}
	}
	g.log.Debugf("route %s deleted from depot %s", routeID, depotID)
	return nil
}

// ToggleRouteTown adds the town to the route if absent, removes it if
// present. The town must belong to the service area.
func (g *Game) ToggleRouteTown(depotID, routeID, townName string) (model.ConfiguredRoute, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.townByName(townName); !ok {
		return model.ConfiguredRoute{}, fmt.Errorf("%w: town %q", ErrEntityNotFound, townName)
	}
	d := g.depotByID(depotID)
	if d == nil {
		return model.ConfiguredRoute{}, fmt.Errorf("%w: depot %s", ErrEntityNotFound, depotID)
	}
	for i := range d.ConfiguredRoutes {
		r := &d.ConfiguredRoutes[i]
		if r.ID != routeID {
			continue
		}
		if r.HasTown(townName) {
			towns := r.Towns[:0]
			for _, t := range r.Towns {
				if t != townName {
					towns = append(towns, t)
				}
			}
			r.Towns = towns
		} else {
			r.Towns = append(r.Towns, townName)
		}
		return *r, nil
	}
	return model.ConfiguredRoute{}, fmt.Errorf("%w: route %s", ErrEntityNotFound, routeID)
}

// AssignDriverRoute toggles the driver's configured-route assignment:
// assigning the route the driver already holds clears it.
func (g *Game) AssignDriverRoute(driverID, routeID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	d := g.driverByID(driverID)
	if d == nil {
		return fmt.Errorf("%w: driver %s", ErrEntityNotFound, driverID)
	}
	if d.AssignedRoute == routeID {
		d.AssignedRoute = ""
		return nil
	}
	if r, _ := g.configuredRouteByID(routeID); r == nil {
		return fmt.Errorf("%w: route %s", ErrEntityNotFound, routeID)
	}
	d.AssignedRoute = routeID
	return nil
}

// NearestDepot returns the depot closest to the coordinate by great-circle
// distance, or false when none exist.
func (g *Game) NearestDepot(c model.Coord) (model.Depot, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	var (
		best  model.Depot
		dist  = math.MaxFloat64
		found bool
	)
	for _, d := range g.state.Depots {
		if dd := geo.DistanceMiles(c, d.Location.Coord()); dd < dist {
			dist = dd
			best = d
			found = true
		}
	}
	return best, found
}
