package model

// VehicleKind selects an entry from the fixed vehicle catalog.
type VehicleKind string

const (
	VehicleVan  VehicleKind = "van"
	VehicleSemi VehicleKind = "semi"
)

// VehicleType describes a catalog entry. The catalog is fixed for the whole
// game; instances only reference it by kind.
type VehicleType struct {
	Name            string
	Cost            float64
	Capacity        int
	SpeedMPH        float64
	FuelCostPerMile float64
}

// VehicleTypes is the fixed catalog of purchasable vehicles.
var VehicleTypes = map[VehicleKind]VehicleType{
	VehicleVan:  {Name: "Package Car", Cost: 15000, Capacity: 20, SpeedMPH: 50, FuelCostPerMile: 0.15},
	VehicleSemi: {Name: "Semi Truck", Cost: 80000, Capacity: 200, SpeedMPH: 60, FuelCostPerMile: 0.50},
}

// Vehicle is an owned vehicle stationed at a depot.
type Vehicle struct {
	ID        string      `json:"id"`
	Kind      VehicleKind `json:"type"`
	Name      string      `json:"name"`
	DepotID   string      `json:"depotId,omitempty"`
	DriverID  string      `json:"driver,omitempty"`
	Status    string      `json:"status"`
	Mileage   float64     `json:"mileage"`
	Condition int         `json:"condition"`
}

// Type resolves the vehicle's catalog entry.
func (v Vehicle) Type() VehicleType { return VehicleTypes[v.Kind] }

// Driver operates a vehicle on pickup routes. A driver is dispatch-ready
// only when both AssignedVehicle and AssignedRoute are set.
type Driver struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Experience  int    `json:"experience"`
	Reliability int    `json:"reliability"`
	// AssignedVehicle and AssignedRoute are weak id references; empty means
	// unassigned.
	AssignedVehicle string `json:"assignedVehicle,omitempty"`
	AssignedRoute   string `json:"assignedRoute,omitempty"`
	DepotID         string `json:"depotId,omitempty"`
	Status          string `json:"status"`
	// ServiceTowns restricts route planning to these towns when non-empty.
	ServiceTowns []string `json:"serviceTowns,omitempty"`
}

// DispatchReady reports whether the driver qualifies for the automatic
// end-of-day dispatch sweep.
func (d Driver) DispatchReady() bool {
	return d.AssignedVehicle != "" && d.AssignedRoute != ""
}
