// Package demand produces new shipment demand between service towns.
package demand

import (
	"github.com/google/uuid"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
	"github.com/villnoweric/package-delivery-tycoon/internal/rng"
)

const (
	minWeight = 1
	maxWeight = 50

	// Daily demand bounds for the settlement sweep.
	MinDailyPackages = 3
	MaxDailyPackages = 7
)

// Generate creates count new pending packages with origin and destination
// drawn independently and uniformly from the service towns, re-drawing the
// destination until it differs from the origin. The towns slice must hold
// at least two entries; fewer yields no packages.
func Generate(r rng.Source, count, currentDay int, towns []model.Town) []model.Package {
	if len(towns) < 2 {
		return nil
	}
	pkgs := make([]model.Package, 0, count)
	for i := 0; i < count; i++ {
		origin := towns[r.Intn(len(towns))]
		dest := towns[r.Intn(len(towns))]
		for dest.Name == origin.Name {
			dest = towns[r.Intn(len(towns))]
		}
		pkgs = append(pkgs, model.Package{
			ID:          "PKG-" + uuid.NewString(),
			Origin:      origin,
			Destination: dest,
			Weight:      minWeight + r.Intn(maxWeight),
			Status:      model.PackagePending,
			CreatedDay:  currentDay,
		})
	}
	return pkgs
}

// DailyCount draws the number of packages to generate on a day advance,
// uniform in [MinDailyPackages, MaxDailyPackages].
func DailyCount(r rng.Source) int {
	return MinDailyPackages + r.Intn(MaxDailyPackages-MinDailyPackages+1)
}
