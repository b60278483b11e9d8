// Package journal persists a per-day audit trail of the simulation: one
// settlement record per day advance and one route record per dispatch.
package journal

import (
	"context"
	"time"
)

// Kind discriminates journal records.
type Kind string

const (
	KindSettlement Kind = "settlement"
	KindDispatch   Kind = "dispatch"
)

// RouteEntry captures one active route at creation time.
type RouteEntry struct {
	RouteID        string   `json:"route_id"`
	DriverID       string   `json:"driver_id"`
	VehicleID      string   `json:"vehicle_id"`
	Towns          []string `json:"towns"`
	Packages       []string `json:"packages"`
	Auto           bool     `json:"auto"`
	EstimatedMiles float64  `json:"estimated_miles,omitempty"`
	EstimatedHours float64  `json:"estimated_hours,omitempty"`
}

// SettlementEntry captures the outcome of one day advance.
type SettlementEntry struct {
	Delivered      int     `json:"delivered"`
	OnTime         int     `json:"on_time"`
	Late           int     `json:"late"`
	Generated      int     `json:"generated"`
	AutoDispatched int     `json:"auto_dispatched"`
	Cash           float64 `json:"cash"`
	Loan           float64 `json:"loan"`
	ExpensesTotal  float64 `json:"expenses_total"`
	Reputation     int     `json:"reputation"`
}

// Record is one journal line. Exactly one of Route and Settlement is set,
// according to Kind.
type Record struct {
	Timestamp  time.Time        `json:"timestamp"`
	Day        int              `json:"day"`
	Kind       Kind             `json:"kind"`
	Route      *RouteEntry      `json:"route,omitempty"`
	Settlement *SettlementEntry `json:"settlement,omitempty"`
}

// Query defines filters for retrieving records. Zero values match all.
type Query struct {
	FromDay  int
	ToDay    int
	Kind     Kind
	DriverID string
}

func (q Query) matches(r Record) bool {
	if q.FromDay != 0 && r.Day < q.FromDay {
		return false
	}
	if q.ToDay != 0 && r.Day > q.ToDay {
		return false
	}
	if q.Kind != "" && r.Kind != q.Kind {
		return false
	}
	if q.DriverID != "" && (r.Route == nil || r.Route.DriverID != q.DriverID) {
		return false
	}
	return true
}

// Store persists Records and supports querying.
type Store interface {
	Append(ctx context.Context, rec Record) error
	Query(ctx context.Context, q Query) ([]Record, error)
	Close() error
}

// NopStore discards records; used when journaling is disabled.
type NopStore struct{}

func (NopStore) Append(context.Context, Record) error           { return nil }
func (NopStore) Query(context.Context, Query) ([]Record, error) { return nil, nil }
func (NopStore) Close() error                                   { return nil }
