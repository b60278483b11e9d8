package game

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

func TestExecuteRouteLoadsPendingPackages(t *testing.T) {
	g := newTestGame(t)
	area := g.state.ServiceTowns
	driverID, _ := addDriverWithVehicle(g, model.VehicleVan)
	g.state.Packages = []model.Package{
		pendingPackage("p1", area[0], area[1], 1),
		pendingPackage("p2", area[0], area[2], 1),
	}

	route, err := g.ExecuteRoute(driverID, []string{area[0].Name})
	require.NoError(t, err)

	assert.Equal(t, model.RouteActive, route.Status)
	assert.Equal(t, []string{"p1", "p2"}, route.Packages)
	assert.Equal(t, 1, route.Day)
	assert.Positive(t, route.EstimatedHours)
	assert.Positive(t, route.EstimatedStops)
	for _, p := range g.state.Packages {
		assert.Equal(t, model.PackageInTransit, p.Status)
		assert.Equal(t, route.ID, p.AssignedRoute)
		assert.Equal(t, 1, p.PickupDay)
	}
	assert.Positive(t, g.state.Finances.Expenses.Fuel)
	require.Len(t, g.state.Routes, 1)
}

func TestExecuteRouteFuelMatchesDistanceTimesRate(t *testing.T) {
	g := newTestGame(t)
	area := g.state.ServiceTowns
	driverID, _ := addDriverWithVehicle(g, model.VehicleVan)

	// destinations due north of the origin, so the great-circle distance
	// is exactly the requested mileage
	origin := model.Town{Name: area[0].Name, Lat: 44, Lon: -94}
	northOf := func(miles float64) model.Town {
		return model.Town{Name: "Northfield", Lat: 44 + miles/3959*180/math.Pi, Lon: -94}
	}
	g.state.Packages = []model.Package{
		pendingPackage("p1", origin, northOf(10), 1),
		pendingPackage("p2", origin, northOf(20), 1),
		pendingPackage("p3", origin, northOf(30), 1),
	}

	_, err := g.ExecuteRoute(driverID, []string{origin.Name})
	require.NoError(t, err)

	// van burns 0.15 per mile over 10+20+30 miles
	assert.InDelta(t, 9.0, g.state.Finances.Expenses.Fuel, 0.001)
}

func TestExecuteRouteCapacityTruncation(t *testing.T) {
	g := newTestGame(t)
	area := g.state.ServiceTowns
	driverID, _ := addDriverWithVehicle(g, model.VehicleVan)
	for i := 0; i < 25; i++ {
		g.state.Packages = append(g.state.Packages,
			pendingPackage(fmt.Sprintf("p%02d", i), area[0], area[1], 1))
	}

	route, err := g.ExecuteRoute(driverID, []string{area[0].Name})
	require.NoError(t, err)

	assert.Len(t, route.Packages, model.VehicleTypes[model.VehicleVan].Capacity)
	var pending int
	for _, p := range g.state.Packages {
		if p.Status == model.PackagePending {
			pending++
		}
	}
	assert.Equal(t, 5, pending)
}

func TestExecuteRouteNoCargo(t *testing.T) {
	g := newTestGame(t)
	driverID, _ := addDriverWithVehicle(g, model.VehicleVan)

	_, err := g.ExecuteRoute(driverID, []string{g.state.ServiceTowns[0].Name})
	assert.ErrorIs(t, err, ErrNoCargo)
	assert.Empty(t, g.state.Routes)
}

func TestExecuteRouteUnknownDriver(t *testing.T) {
	g := newTestGame(t)
	_, err := g.ExecuteRoute("DRV-missing", []string{"Glencoe"})
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestExecuteRouteDriverWithoutVehicle(t *testing.T) {
	g := newTestGame(t)
	g.state.Drivers = append(g.state.Drivers, model.Driver{ID: "DRV-1", Name: "Driver 1"})

	// the missing vehicle is an absent entity, not a rule conflict
	_, err := g.ExecuteRoute("DRV-1", []string{"Glencoe"})
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.Empty(t, g.state.Routes)
}

func setupConfiguredRoute(g *Game, driverID string, towns []string) string {
	depot := model.Depot{ID: "DEP-1", Location: g.state.ServiceTowns[0], Capacity: model.DepotCapacity}
	route := model.ConfiguredRoute{ID: "RTE-1", Name: "Morning Run", Towns: towns, DepotID: depot.ID}
	depot.ConfiguredRoutes = []model.ConfiguredRoute{route}
	g.state.Depots = append(g.state.Depots, depot)
	if d := g.driverByID(driverID); d != nil {
		d.AssignedRoute = route.ID
		d.DepotID = depot.ID
	}
	return route.ID
}

func TestAutoDispatchRunsConfiguredRoutes(t *testing.T) {
	g := newTestGame(t)
	area := g.state.ServiceTowns
	driverID, _ := addDriverWithVehicle(g, model.VehicleVan)
	routeID := setupConfiguredRoute(g, driverID, []string{area[0].Name})
	g.state.Packages = []model.Package{pendingPackage("p1", area[0], area[1], 1)}

	count := g.autoDispatch()

	assert.Equal(t, 1, count)
	require.Len(t, g.state.Routes, 1)
	assert.Equal(t, routeID, g.state.Routes[0].ConfiguredRouteID)
	assert.Equal(t, model.PackageInTransit, g.state.Packages[0].Status)
}

func TestAutoDispatchPoolIsDisjoint(t *testing.T) {
	g := newTestGame(t)
	area := g.state.ServiceTowns
	d1, _ := addDriverWithVehicle(g, model.VehicleVan)
	d2, _ := addDriverWithVehicle(g, model.VehicleVan)
	setupConfiguredRoute(g, d1, []string{area[0].Name})
	if d := g.driverByID(d2); d != nil {
		d.AssignedRoute = "RTE-1"
	}
	g.state.Packages = []model.Package{pendingPackage("p1", area[0], area[1], 1)}

	count := g.autoDispatch()

	// one package, so only the first driver goes out
	assert.Equal(t, 1, count)
	assert.Len(t, g.state.Routes, 1)
}

func TestAutoDispatchSkipsBusyDrivers(t *testing.T) {
	g := newTestGame(t)
	area := g.state.ServiceTowns
	driverID, vehicleID := addDriverWithVehicle(g, model.VehicleVan)
	setupConfiguredRoute(g, driverID, []string{area[0].Name})
	g.state.Routes = append(g.state.Routes, model.ActiveRoute{
		ID: "ROUTE-old", DriverID: driverID, VehicleID: vehicleID,
		Status: model.RouteActive, Day: g.state.Day,
	})
	g.state.Packages = []model.Package{pendingPackage("p1", area[0], area[1], 1)}

	count := g.autoDispatch()

	assert.Equal(t, 0, count)
	assert.Equal(t, model.PackagePending, g.state.Packages[0].Status)
}

func TestAutoDispatchSkipsUnreadyDrivers(t *testing.T) {
	g := newTestGame(t)
	area := g.state.ServiceTowns
	g.state.Drivers = append(g.state.Drivers, model.Driver{ID: "DRV-1", Name: "Driver 1"})
	g.state.Packages = []model.Package{pendingPackage("p1", area[0], area[1], 1)}

	assert.Equal(t, 0, g.autoDispatch())
}

func TestPlanRoutesRequiresVehicle(t *testing.T) {
	g := newTestGame(t)
	g.state.Drivers = append(g.state.Drivers, model.Driver{ID: "DRV-1"})

	_, err := g.PlanRoutes("DRV-1")
	assert.ErrorIs(t, err, ErrPreconditionUnmet)
}

func TestPlanRoutesReturnsRankedOptions(t *testing.T) {
	g := newTestGame(t)
	area := g.state.ServiceTowns
	driverID, _ := addDriverWithVehicle(g, model.VehicleVan)
	g.state.Packages = []model.Package{
		pendingPackage("p1", area[0], area[1], 1),
		pendingPackage("p2", area[1], area[2], 1),
	}

	options, err := g.PlanRoutes(driverID)
	require.NoError(t, err)
	require.NotEmpty(t, options)
	for i := 1; i < len(options); i++ {
		assert.GreaterOrEqual(t, options[i-1].Efficiency(), options[i].Efficiency())
	}
}
