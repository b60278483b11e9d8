package config

import "fmt"

// GameConfig selects the playthrough parameters: where the service area is
// anchored and how the random source is seeded.
type GameConfig struct {
	// TownsFile is the JSON reference file of available towns.
	TownsFile string `json:"towns_file"`
	// StartingTown anchors the service area selection.
	StartingTown string `json:"starting_town"`
	// FallbackTown is used when StartingTown is not in the towns file.
	FallbackTown string `json:"fallback_town"`
	// Seed initializes the random source; 0 picks a time-based seed.
	Seed int64 `json:"seed"`
	// AutoAdvanceSeconds advances the day automatically on this wall clock
	// interval; 0 disables it.
	AutoAdvanceSeconds int `json:"auto_advance_seconds"`
}

// SetDefaults applies sane defaults.
func (c *GameConfig) SetDefaults() {
	if c.TownsFile == "" {
		c.TownsFile = "towns.json"
	}
	if c.StartingTown == "" {
		c.StartingTown = "Glencoe"
	}
	if c.FallbackTown == "" {
		c.FallbackTown = c.StartingTown
	}
}

// Validate checks mandatory fields.
func (c GameConfig) Validate() error {
	if c.TownsFile == "" {
		return fmt.Errorf("towns_file is required")
	}
	if c.StartingTown == "" {
		return fmt.Errorf("starting_town is required")
	}
	return nil
}
