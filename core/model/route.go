package model

// RouteStatus is the lifecycle state of an active route instance.
type RouteStatus string

const (
	RouteActive    RouteStatus = "active"
	RouteCompleted RouteStatus = "completed"
)

// ActiveRoute is a one-day dispatch instance: a driver, a vehicle and the
// concrete set of packages picked up. It is never mutated after creation
// except for the status flip to completed once the day has passed.
type ActiveRoute struct {
	ID        string `json:"id"`
	DriverID  string `json:"driverId"`
	VehicleID string `json:"vehicleId"`
	// ConfiguredRouteID is empty for manually planned routes.
	ConfiguredRouteID string      `json:"configuredRouteId,omitempty"`
	Towns             []string    `json:"towns"`
	Packages          []string    `json:"packages"`
	Status            RouteStatus `json:"status"`
	Day               int         `json:"day"`
	EstimatedMiles    float64     `json:"estimatedMiles,omitempty"`
	EstimatedHours    float64     `json:"estimatedHours,omitempty"`
	EstimatedStops    int         `json:"estimatedStops,omitempty"`
}
