package planner

import (
	"github.com/villnoweric/package-delivery-tycoon/core/geo"
	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

// Per-package mileage heuristics. A single-town route is all local legs; a
// multi-town circuit adds a shorter local leg per package on top of the
// inter-town mileage.
const (
	localMilesPerPickup   = 5
	circuitMilesPerPickup = 3
	estimateFuelPerMile   = 0.20
)

// Estimate is the deterministic cost/revenue projection for a candidate
// pickup route. Same inputs always produce the same estimate.
type Estimate struct {
	Pickups    int     `json:"pickups"`
	Deliveries int     `json:"deliveries"`
	Miles      float64 `json:"miles"`
	Hours      float64 `json:"hours"`
	Stops      int     `json:"stops"`
	Revenue    float64 `json:"revenue"`
	FuelCost   float64 `json:"fuelCost"`
}

// EstimateRoute projects a pickup run over the given towns. Pending
// packages are loaded FIFO in town-list order and truncated to the vehicle
// capacity; mileage treats multi-town lists as a closed circuit in the
// given order.
func EstimateRoute(towns []string, pendingByTown map[string][]model.Package, area []model.Town, capacity int) Estimate {
	var load []model.Package
	for _, town := range towns {
		load = append(load, pendingByTown[town]...)
	}
	if len(load) > capacity {
		load = load[:capacity]
	}
	pickups := len(load)

	destinations := make(map[string]struct{})
	for _, pkg := range load {
		destinations[pkg.Destination.Name] = struct{}{}
	}
	deliveries := len(destinations)

	var miles float64
	if len(towns) == 1 {
		miles = float64(pickups * localMilesPerPickup)
	} else {
		byName := make(map[string]model.Town, len(area))
		for _, t := range area {
			byName[t.Name] = t
		}
		for i := range towns {
			from, okFrom := byName[towns[i]]
			to, okTo := byName[towns[(i+1)%len(towns)]]
			if okFrom && okTo {
				miles += geo.DistanceMiles(from.Coord(), to.Coord())
			}
		}
		miles += float64(pickups * circuitMilesPerPickup)
	}

	stops := pickups + deliveries
	hours := float64(stops)/model.StopsPerHour + miles/model.AvgSpeedMPH

	return Estimate{
		Pickups:    pickups,
		Deliveries: deliveries,
		Miles:      miles,
		Hours:      hours,
		Stops:      stops,
		Revenue:    float64(pickups * model.BaseDeliveryRate),
		FuelCost:   miles * estimateFuelPerMile,
	}
}
