package geo

import (
	"encoding/json"
	"fmt"
	"math"
	"os"

	"github.com/villnoweric/package-delivery-tycoon/core/model"
)

// LoadTowns reads the town reference data from a JSON file: an array of
// {name, lat, lon} records.
func LoadTowns(path string) ([]model.Town, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read towns: %w", err)
	}
	var towns []model.Town
	if err := json.Unmarshal(data, &towns); err != nil {
		return nil, fmt.Errorf("parse towns: %w", err)
	}
	return towns, nil
}

// SelectServiceArea picks the fixed working subset of towns for a
// playthrough: the starting town plus the nearest unused towns by
// great-circle distance, ascending, until size towns are selected. If the
// starting town is unknown the fallback town anchors the area instead.
// The selection is deterministic for identical inputs.
func SelectServiceArea(all []model.Town, start, fallback string, size int) ([]model.Town, error) {
	anchor, ok := findTown(all, start)
	if !ok {
		anchor, ok = findTown(all, fallback)
		if !ok {
			return nil, fmt.Errorf("starting town %q not found and no fallback", start)
		}
	}

	selected := []model.Town{anchor}
	used := map[string]bool{anchor.Name: true}
	for len(selected) < size {
		next, ok := nearestUnused(all, anchor.Coord(), used)
		if !ok {
			return nil, fmt.Errorf("only %d towns available, need %d", len(selected), size)
		}
		selected = append(selected, next)
		used[next.Name] = true
	}
	return selected, nil
}

func findTown(all []model.Town, name string) (model.Town, bool) {
	for _, t := range all {
		if t.Name == name {
			return t, true
		}
	}
	return model.Town{}, false
}

func nearestUnused(all []model.Town, from model.Coord, used map[string]bool) (model.Town, bool) {
	var (
		best     model.Town
		bestDist = math.MaxFloat64
		found    bool
	)
	for _, t := range all {
		if used[t.Name] {
			continue
		}
		d := DistanceKM(from, t.Coord())
		if d < bestDist {
			bestDist = d
			best = t
			found = true
		}
	}
	return best, found
}
