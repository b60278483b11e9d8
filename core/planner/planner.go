// Package planner enumerates feasible multi-town pickup routes for a
// driver/vehicle pair and ranks them by efficiency. It is pure: no state is
// mutated and identical inputs yield an identical ranking.
package planner

import (
	"sort"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

// maxRouteStops bounds enumeration; this is not a VRP solver.
const maxRouteStops = 3

// Option is one ranked route candidate. The regulatory flags are display
// hints recomputed from the raw hours: a single-town option can carry
// DOTViolation yet still appear in the list, because the hour ceiling only
// filters multi-town combinations.
type Option struct {
	Towns []string `json:"towns"`
	Estimate
	Overtime     bool `json:"overtime"`
	NearDOTLimit bool `json:"nearDotLimit"`
	DOTViolation bool `json:"dotViolation"`
}

// Efficiency is the ranking key: pickups per on-duty hour.
func (o Option) Efficiency() float64 {
	if o.Hours == 0 {
		return 0
	}
	return float64(o.Pickups) / o.Hours
}

// PlanRoutes builds every 1-, 2- and 3-town combination of candidate towns
// with pending demand, estimates each, drops multi-town combinations over
// the DOT hour ceiling and returns the rest sorted by efficiency,
// descending. Candidate towns are restricted to the driver's service-town
// allow-list when it is non-empty.
func PlanRoutes(driver model.Driver, vehicle model.Vehicle, area []model.Town, pendingByTown map[string][]model.Package) []Option {
	candidates := candidateTowns(driver, area, pendingByTown)
	capacity := vehicle.Type().Capacity

	var options []Option
	for k := 1; k <= maxRouteStops && k <= len(candidates); k++ {
		for _, idx := range combin.Combinations(len(candidates), k) {
			towns := make([]string, k)
			for i, j := range idx {
				towns[i] = candidates[j]
			}
			est := EstimateRoute(towns, pendingByTown, area, capacity)
			if k > 1 && est.Hours > model.MaxHoursDOT {
				continue
			}
			options = append(options, Option{
				Towns:        towns,
				Estimate:     est,
				Overtime:     est.Hours > model.OvertimeThreshold,
				NearDOTLimit: est.Hours > model.MaxHoursDOT*0.9,
				DOTViolation: est.Hours > model.MaxHoursDOT,
			})
		}
	}

	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Efficiency() > options[j].Efficiency()
	})
	return options
}

// candidateTowns keeps area order so enumeration is reproducible.
func candidateTowns(driver model.Driver, area []model.Town, pendingByTown map[string][]model.Package) []string {
	allowed := map[string]bool{}
	for _, name := range driver.ServiceTowns {
		allowed[name] = true
	}
	var names []string
	for _, t := range area {
		if len(allowed) > 0 && !allowed[t.Name] {
			continue
		}
		if len(pendingByTown[t.Name]) == 0 {
			continue
		}
		names = append(names, t.Name)
	}
	return names
}
