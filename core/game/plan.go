package game

import (
	"fmt"

	"github.com/villnoweric/package-delivery-tycoon/core/planner"
)

// PlanRoutes enumerates ranked route options for the driver using the
// current pending demand. Planning never mutates state.
func (g *Game) PlanRoutes(driverID string) ([]planner.Option, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	d := g.driverByID(driverID)
	if d == nil {
		return nil, fmt.Errorf("%w: driver %s", ErrEntityNotFound, driverID)
	}
	if d.AssignedVehicle == "" {
		return nil, fmt.Errorf("%w: driver %s has no vehicle", ErrPreconditionUnmet, driverID)
	}
	v := g.vehicleByID(d.AssignedVehicle)
	if v == nil {
		return nil, fmt.Errorf("%w: vehicle %s", ErrEntityNotFound, d.AssignedVehicle)
	}
	return planner.PlanRoutes(*d, *v, g.state.ServiceTowns, g.pendingByTown()), nil
}
