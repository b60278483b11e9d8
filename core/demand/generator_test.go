package demand

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
	"github.com/villnoweric/package-delivery-tycoon/internal/rng"
)

func towns() []model.Town {
	return []model.Town{
		{Name: "A", Lat: 44.0, Lon: -94.0},
		{Name: "B", Lat: 44.1, Lon: -94.1},
		{Name: "C", Lat: 44.2, Lon: -94.2},
	}
}

func TestGenerate(t *testing.T) {
	r := rng.New(1)
	pkgs := Generate(r, 10, 3, towns())
	require.Len(t, pkgs, 10)

	seen := map[string]bool{}
	for _, p := range pkgs {
		assert.Equal(t, model.PackagePending, p.Status)
		assert.Equal(t, 3, p.CreatedDay)
		assert.NotEqual(t, p.Origin.Name, p.Destination.Name)
		assert.GreaterOrEqual(t, p.Weight, 1)
		assert.LessOrEqual(t, p.Weight, 50)
		assert.False(t, seen[p.ID], "duplicate package id")
		seen[p.ID] = true
	}
}

func TestGenerateNeedsTwoTowns(t *testing.T) {
	r := rng.New(1)
	assert.Nil(t, Generate(r, 5, 1, towns()[:1]))
	assert.Nil(t, Generate(r, 5, 1, nil))
}

func TestDailyCountRange(t *testing.T) {
	r := rng.New(7)
	for i := 0; i < 100; i++ {
		n := DailyCount(r)
		assert.GreaterOrEqual(t, n, MinDailyPackages)
		assert.LessOrEqual(t, n, MaxDailyPackages)
	}
}
