package model

// PackageStatus is the lifecycle state of a shipment.
// Transitions are strictly pending -> in-transit -> delivered.
type PackageStatus string

const (
	PackagePending   PackageStatus = "pending"
	PackageInTransit PackageStatus = "in-transit"
	PackageDelivered PackageStatus = "delivered"
)

// Rank orders statuses along the lifecycle so callers can assert that a
// package never moves backwards.
func (s PackageStatus) Rank() int {
	switch s {
	case PackagePending:
		return 0
	case PackageInTransit:
		return 1
	case PackageDelivered:
		return 2
	}
	return -1
}

// Package is a single shipment between two service towns. Day fields use 0
// for "not yet"; simulation days start at 1.
type Package struct {
	ID          string        `json:"id"`
	Origin      Town          `json:"origin"`
	Destination Town          `json:"destination"`
	Weight      int           `json:"weight"`
	Status      PackageStatus `json:"status"`
	CreatedDay  int           `json:"createdDay"`
	PickupDay   int           `json:"pickupDay,omitempty"`
	DeliveryDay int           `json:"deliveryDay,omitempty"`
	// AssignedRoute references the active route carrying the package, by id.
	AssignedRoute string `json:"assignedRoute,omitempty"`
}
