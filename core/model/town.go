package model

// Coord is a geographic point in decimal degrees.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Town is immutable reference data. Packages and depots embed a snapshot of
// the town they refer to so the save blob is self-contained.
type Town struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Coord returns the town's location.
func (t Town) Coord() Coord { return Coord{Lat: t.Lat, Lon: t.Lon} }
