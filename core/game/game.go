// Package game implements the parcel-delivery simulation engine: entity
// registry, purchases, route configuration, dispatch and the daily
// settlement state transition. The whole game state is one explicit
// aggregate; every operation is a synchronous transition on it.
package game

import (
	"sync"

	"github.com/villnoweric/package-delivery-tycoon/core/demand"
	"github.com/villnoweric/package-delivery-tycoon/core/events"
	"github.com/villnoweric/package-delivery-tycoon/core/journal"
	"github.com/villnoweric/package-delivery-tycoon/core/logger"
	"github.com/villnoweric/package-delivery-tycoon/core/metrics"
	"github.com/villnoweric/package-delivery-tycoon/core/model"
	"github.com/villnoweric/package-delivery-tycoon/internal/eventbus"
	"github.com/villnoweric/package-delivery-tycoon/internal/rng"
)

// Game owns the simulation state and applies all transitions to it. A
// single mutex serializes operations; the simulation itself is turn-based
// and never suspends mid-transition.
type Game struct {
	mu    sync.Mutex
	state *model.GameState

	rand    rng.Source
	log     logger.Logger
	bus     eventbus.EventBus
	sink    metrics.Sink
	journal journal.Store
}

// Options carries the engine collaborators. Nil fields get no-op defaults.
type Options struct {
	Rand    rng.Source
	Logger  logger.Logger
	Bus     eventbus.EventBus
	Sink    metrics.Sink
	Journal journal.Store
}

// New creates a game over the given service area, seeds the initial demand
// and returns the engine ready for day one.
func New(serviceTowns []model.Town, opts Options) *Game {
	g := &Game{
		state:   model.NewGameState(serviceTowns),
		rand:    opts.Rand,
		log:     opts.Logger,
		bus:     opts.Bus,
		sink:    opts.Sink,
		journal: opts.Journal,
	}
	if g.rand == nil {
		g.rand = rng.New(0)
	}
	if g.log == nil {
		g.log = nopLogger{}
	}
	if g.sink == nil {
		g.sink = metrics.NopSink{}
	}
	if g.journal == nil {
		g.journal = journal.NopStore{}
	}

	seed := demand.Generate(g.rand, model.InitialPackageCount, g.state.Day, g.state.ServiceTowns)
	g.state.Packages = append(g.state.Packages, seed...)
	packagesGenerated.Add(float64(len(seed)))
	return g
}

// Snapshot returns a copy of the current state for rendering or
// persistence. Nested slices are copied so callers cannot mutate the live
// state through it.
func (g *Game) Snapshot() model.GameState {
	g.mu.Lock()
	defer g.mu.Unlock()
	return copyState(*g.state)
}

// Restore replaces the in-memory state with a loaded snapshot. The blob is
// the single source of truth: no merging is performed.
func (g *Game) Restore(st model.GameState) {
	g.mu.Lock()
	defer g.mu.Unlock()
	restored := copyState(st)
	g.state = &restored
	g.log.Infof("state restored at day %d", restored.Day)
}

// Notices returns the retained recent notices, newest last.
func (g *Game) Notices() []model.Notice {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]model.Notice, len(g.state.Notices))
	copy(out, g.state.Notices)
	return out
}

const maxNotices = 20

// notify records a player-facing message and publishes it on the bus.
// Callers hold the mutex.
func (g *Game) notify(level model.NoticeLevel, msg string) {
	n := model.Notice{Level: level, Message: msg, Day: g.state.Day}
	g.state.Notices = append(g.state.Notices, n)
	if len(g.state.Notices) > maxNotices {
		g.state.Notices = g.state.Notices[len(g.state.Notices)-maxNotices:]
	}
	if g.bus != nil {
		g.bus.Publish(events.NoticeEvent{Notice: n})
	}
}

func copyState(st model.GameState) model.GameState {
	st.ServiceTowns = append([]model.Town(nil), st.ServiceTowns...)
	st.Hubs = append([]model.Hub(nil), st.Hubs...)
	st.Vehicles = append([]model.Vehicle(nil), st.Vehicles...)
	st.Packages = append([]model.Package(nil), st.Packages...)
	st.Notices = append([]model.Notice(nil), st.Notices...)

	depots := make([]model.Depot, len(st.Depots))
	for i, d := range st.Depots {
		d.ConfiguredRoutes = append([]model.ConfiguredRoute(nil), d.ConfiguredRoutes...)
		for j, r := range d.ConfiguredRoutes {
			d.ConfiguredRoutes[j].Towns = append([]string(nil), r.Towns...)
		}
		depots[i] = d
	}
	st.Depots = depots

	drivers := make([]model.Driver, len(st.Drivers))
	for i, d := range st.Drivers {
		d.ServiceTowns = append([]string(nil), d.ServiceTowns...)
		drivers[i] = d
	}
	st.Drivers = drivers

	routes := make([]model.ActiveRoute, len(st.Routes))
	for i, r := range st.Routes {
		r.Towns = append([]string(nil), r.Towns...)
		r.Packages = append([]string(nil), r.Packages...)
		routes[i] = r
	}
	st.Routes = routes
	return st
}

// nopLogger keeps the engine usable without a configured logger.
type nopLogger struct{}

func (nopLogger) Debugf(string, ...any)         {}
func (nopLogger) Debugw(string, map[string]any) {}
func (nopLogger) Infof(string, ...any)          {}
func (nopLogger) Warnf(string, ...any)          {}
func (nopLogger) Errorf(string, ...any)         {}
