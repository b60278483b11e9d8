package model

// ConfiguredRoute is a reusable, named list of pickup towns owned by a
// depot. Town membership has set semantics; a route with no towns is inert.
type ConfiguredRoute struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Towns   []string `json:"towns"`
	DepotID string   `json:"depotId"`
}

// HasTown reports whether the route serves the named town.
func (r ConfiguredRoute) HasTown(name string) bool {
	for _, t := range r.Towns {
		if t == name {
			return true
		}
	}
	return false
}

// Depot is a purchased facility. It owns its configured routes.
type Depot struct {
	ID               string            `json:"id"`
	Location         Town              `json:"location"`
	Capacity         int               `json:"capacity"`
	CurrentLoad      int               `json:"currentLoad"`
	ConfiguredRoutes []ConfiguredRoute `json:"configuredRoutes"`
}

// Hub is a larger facility unlocked later in the game.
type Hub struct {
	ID          string `json:"id"`
	Location    Town   `json:"location"`
	Capacity    int    `json:"capacity"`
	CurrentLoad int    `json:"currentLoad"`
}
