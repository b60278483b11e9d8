package game

import (
	"fmt"
	"testing"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

// fakeRand yields a deterministic spread of integers and scripted floats so
// delivery rolls can be forced.
type fakeRand struct {
	n      int
	floats []float64
	fi     int
}

func (f *fakeRand) Intn(max int) int {
	f.n++
	return f.n % max
}

func (f *fakeRand) Float64() float64 {
	if f.fi < len(f.floats) {
		v := f.floats[f.fi]
		f.fi++
		return v
	}
	return 0.5
}

func testArea() []model.Town {
	return []model.Town{
		{Name: "Glencoe", Lat: 44.7691, Lon: -94.1519},
		{Name: "Hutchinson", Lat: 44.8878, Lon: -94.3697},
		{Name: "Arlington", Lat: 44.6083, Lon: -94.0803},
	}
}

func newTestGame(t *testing.T, floats ...float64) *Game {
	t.Helper()
	g := New(testArea(), Options{Rand: &fakeRand{floats: floats}})
	g.state.Packages = nil
	g.state.Notices = nil
	return g
}

func pendingPackage(id string, origin, dest model.Town, day int) model.Package {
	return model.Package{
		ID:          id,
		Origin:      origin,
		Destination: dest,
		Weight:      10,
		Status:      model.PackagePending,
		CreatedDay:  day,
	}
}

func addDriverWithVehicle(g *Game, kind model.VehicleKind) (driverID, vehicleID string) {
	n := len(g.state.Drivers) + 1
	v := model.Vehicle{ID: fmt.Sprintf("VEH-%d", n), Kind: kind, Status: "assigned"}
	d := model.Driver{ID: fmt.Sprintf("DRV-%d", n), Name: fmt.Sprintf("Driver %d", n), Reliability: 90, AssignedVehicle: v.ID}
	v.DriverID = d.ID
	g.state.Vehicles = append(g.state.Vehicles, v)
	g.state.Drivers = append(g.state.Drivers, d)
	return d.ID, v.ID
}
