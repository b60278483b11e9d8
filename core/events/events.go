// Package events defines the domain events published on the internal bus.
// Subscribers (notification adapters, the HTTP API) receive them fan-out;
// delivery is best effort and never blocks the simulation.
package events

import "github.com/villnoweric/package-delivery-tycoon/core/model"

// NoticeEvent carries a player-facing status message.
type NoticeEvent struct {
	Notice model.Notice
}

// DayAdvancedEvent is published after every settlement cycle.
type DayAdvancedEvent struct {
	Day            int
	Delivered      int
	Generated      int
	AutoDispatched int
	Cash           float64
	Loan           float64
	Reputation     int
}

// RouteDispatchedEvent is published for every active route created, whether
// manually planned or swept up by auto dispatch.
type RouteDispatchedEvent struct {
	RouteID  string
	DriverID string
	Towns    []string
	Packages int
	Auto     bool
	Day      int
}
