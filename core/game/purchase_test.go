package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

func TestBuyDepot(t *testing.T) {
	g := newTestGame(t)

	d, err := g.BuyDepot("Glencoe")
	require.NoError(t, err)

	assert.Equal(t, "Glencoe", d.Location.Name)
	assert.Equal(t, model.DepotCapacity, d.Capacity)
	assert.InDelta(t, 250000-model.DepotCost, g.state.Cash, 0.001)
	require.Len(t, g.state.Depots, 1)
}

func TestBuyDepotUnknownTown(t *testing.T) {
	g := newTestGame(t)

	_, err := g.BuyDepot("Nowhere")
	assert.ErrorIs(t, err, ErrEntityNotFound)
	assert.InDelta(t, 250000, g.state.Cash, 0.001)
}

func TestBuyDepotInsufficientFunds(t *testing.T) {
	g := newTestGame(t)
	g.state.Cash = 100

	_, err := g.BuyDepot("Glencoe")
	assert.ErrorIs(t, err, ErrInsufficientFunds)
	assert.InDelta(t, 100, g.state.Cash, 0.001)
	assert.Empty(t, g.state.Depots)
}

func TestBuyVehicleRequiresDepot(t *testing.T) {
	g := newTestGame(t)

	_, err := g.BuyVehicle(model.VehicleVan)
	assert.ErrorIs(t, err, ErrPreconditionUnmet)
}

func TestBuyVehicleUnknownKind(t *testing.T) {
	g := newTestGame(t)

	_, err := g.BuyVehicle("bicycle")
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestBuyVehicleStationsAtFirstDepot(t *testing.T) {
	g := newTestGame(t)
	depot, err := g.BuyDepot("Glencoe")
	require.NoError(t, err)

	v, err := g.BuyVehicle(model.VehicleSemi)
	require.NoError(t, err)

	assert.Equal(t, depot.ID, v.DepotID)
	assert.Equal(t, model.VehicleSemi, v.Kind)
	assert.InDelta(t, 250000-model.DepotCost-model.VehicleTypes[model.VehicleSemi].Cost, g.state.Cash, 0.001)
}

func TestHireDriverPairsWithFreeVehicle(t *testing.T) {
	g := newTestGame(t)
	_, err := g.BuyDepot("Glencoe")
	require.NoError(t, err)
	v, err := g.BuyVehicle(model.VehicleVan)
	require.NoError(t, err)

	d, err := g.HireDriver()
	require.NoError(t, err)

	assert.Equal(t, v.ID, d.AssignedVehicle)
	assert.GreaterOrEqual(t, d.Reliability, 80)
	assert.Less(t, d.Reliability, 100)
	assert.Equal(t, d.ID, g.state.Vehicles[0].DriverID)
}

func TestHireDriverWithoutVehicleStaysUnassigned(t *testing.T) {
	g := newTestGame(t)

	d, err := g.HireDriver()
	require.NoError(t, err)
	assert.Empty(t, d.AssignedVehicle)
}

func TestBuyHubLockedBeforeUnlockDay(t *testing.T) {
	g := newTestGame(t)

	_, err := g.BuyHub("Glencoe")
	assert.ErrorIs(t, err, ErrPreconditionUnmet)
}

func TestBuyHubAfterUnlock(t *testing.T) {
	g := newTestGame(t)
	g.state.HubsUnlocked = true

	h, err := g.BuyHub("Glencoe")
	require.NoError(t, err)

	assert.Equal(t, model.HubCapacity, h.Capacity)
	assert.InDelta(t, 250000-model.HubCost, g.state.Cash, 0.001)
	require.Len(t, g.state.Hubs, 1)
}
