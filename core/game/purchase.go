package game

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

// BuyDepot opens a depot in a service town. Funds are checked before any
// mutation; a failed purchase leaves the state untouched.
func (g *Game) BuyDepot(townName string) (model.Depot, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	town, ok := g.townByName(townName)
	if !ok {
		return model.Depot{}, fmt.Errorf("%w: town %q", ErrEntityNotFound, townName)
	}
	if g.state.Cash < model.DepotCost {
		return model.Depot{}, fmt.Errorf("%w: depot costs %d", ErrInsufficientFunds, model.DepotCost)
	}
	d := model.Depot{
		ID:       "DEP-" + uuid.NewString(),
		Location: town,
		Capacity: model.DepotCapacity,
	}
	g.state.Cash -= model.DepotCost
	g.state.Depots = append(g.state.Depots, d)
	g.notify(model.NoticeSuccess, fmt.Sprintf("Opened a depot in %s", town.Name))
	g.log.Infof("depot %s opened in %s", d.ID, town.Name)
	return d, nil
}

// BuyHub opens a hub. Hubs stay locked until the unlock day has been
// reached.
func (g *Game) BuyHub(townName string) (model.Hub, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if !g.state.HubsUnlocked {
		return model.Hub{}, fmt.Errorf("%w: hubs unlock on day %d", ErrPreconditionUnmet, model.HubUnlockDay)
	}
	town, ok := g.townByName(townName)
	if !ok {
		return model.Hub{}, fmt.Errorf("%w: town %q", ErrEntityNotFound, townName)
	}
	if g.state.Cash < model.HubCost {
		return model.Hub{}, fmt.Errorf("%w: hub costs %d", ErrInsufficientFunds, model.HubCost)
	}
	h := model.Hub{
		ID:       "HUB-" + uuid.NewString(),
		Location: town,
		Capacity: model.HubCapacity,
	}
	g.state.Cash -= model.HubCost
	g.state.Hubs = append(g.state.Hubs, h)
	g.notify(model.NoticeSuccess, fmt.Sprintf("Opened a regional hub in %s", town.Name))
	g.log.Infof("hub %s opened in %s", h.ID, town.Name)
	return h, nil
}

// BuyVehicle purchases a catalog vehicle and stations it at the first
// depot. At least one depot must exist.
func (g *Game) BuyVehicle(kind model.VehicleKind) (model.Vehicle, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	vt, ok := model.VehicleTypes[kind]
	if !ok {
		return model.Vehicle{}, fmt.Errorf("%w: vehicle kind %q", ErrEntityNotFound, kind)
	}
	if len(g.state.Depots) == 0 {
		return model.Vehicle{}, fmt.Errorf("%w: buy a depot before buying vehicles", ErrPreconditionUnmet)
	}
	if g.state.Cash < vt.Cost {
		return model.Vehicle{}, fmt.Errorf("%w: %s costs %.0f", ErrInsufficientFunds, vt.Name, vt.Cost)
	}
	v := model.Vehicle{
		ID:        "VEH-" + uuid.NewString(),
		Kind:      kind,
		Name:      fmt.Sprintf("%s #%d", vt.Name, len(g.state.Vehicles)+1),
		DepotID:   g.state.Depots[0].ID,
		Status:    "idle",
		Condition: 100,
	}
	g.state.Cash -= vt.Cost
	g.state.Vehicles = append(g.state.Vehicles, v)
	g.notify(model.NoticeSuccess, fmt.Sprintf("Purchased %s", v.Name))
	g.log.Infof("vehicle %s (%s) purchased", v.ID, kind)
	return v, nil
}

// HireDriver hires a new driver and pairs them with the first unassigned
// vehicle, if any. Hiring is free upfront; the daily wage starts at the
// next settlement.
func (g *Game) HireDriver() (model.Driver, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	d := model.Driver{
		ID:          "DRV-" + uuid.NewString(),
		Name:        fmt.Sprintf("Driver %d", len(g.state.Drivers)+1),
		Reliability: 80 + g.rand.Intn(20),
		Status:      "available",
	}
	if len(g.state.Depots) > 0 {
		d.DepotID = g.state.Depots[0].ID
	}
	for i := range g.state.Vehicles {
		v := &g.state.Vehicles[i]
		if v.DriverID == "" {
			v.DriverID = d.ID
			v.Status = "assigned"
			d.AssignedVehicle = v.ID
			break
		}
	}
	g.state.Drivers = append(g.state.Drivers, d)
	g.notify(model.NoticeSuccess, fmt.Sprintf("Hired %s", d.Name))
	g.log.Infof("driver %s hired (reliability %d)", d.ID, d.Reliability)
	return d, nil
}
