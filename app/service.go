// Package app assembles the engine, its adapters and the HTTP control
// surface from configuration.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/villnoweric/package-delivery-tycoon/api"
	"github.com/villnoweric/package-delivery-tycoon/config"
	"github.com/villnoweric/package-delivery-tycoon/core/clock"
	"github.com/villnoweric/package-delivery-tycoon/core/game"
	"github.com/villnoweric/package-delivery-tycoon/core/geo"
	"github.com/villnoweric/package-delivery-tycoon/core/journal"
	coremetrics "github.com/villnoweric/package-delivery-tycoon/core/metrics"
	"github.com/villnoweric/package-delivery-tycoon/core/model"
	coremon "github.com/villnoweric/package-delivery-tycoon/core/monitoring"
	"github.com/villnoweric/package-delivery-tycoon/infra/logger"
	"github.com/villnoweric/package-delivery-tycoon/infra/metrics"
	"github.com/villnoweric/package-delivery-tycoon/infra/monitoring"
	"github.com/villnoweric/package-delivery-tycoon/infra/mqtt"
	"github.com/villnoweric/package-delivery-tycoon/infra/persist"
	"github.com/villnoweric/package-delivery-tycoon/internal/eventbus"
	"github.com/villnoweric/package-delivery-tycoon/internal/rng"
)

// Service orchestrates the simulation engine and its adapters.
type Service struct {
	Game *game.Game

	cfg      *config.Config
	bus      *eventbus.Bus
	journal  journal.Store
	store    persist.Store
	notifier *mqtt.Notifier
	mqttCli  mqtt.Publisher
	log      logger.Logger
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	towns, err := geo.LoadTowns(cfg.Game.TownsFile)
	if err != nil {
		return nil, err
	}
	area, err := geo.SelectServiceArea(towns, cfg.Game.StartingTown, cfg.Game.FallbackTown, model.ServiceTownCount)
	if err != nil {
		return nil, fmt.Errorf("select service area: %w", err)
	}

	var jstore journal.Store
	switch cfg.Journal.Backend {
	case "sqlite":
		jstore, err = journal.NewSQLiteStore(cfg.Journal.Path)
	default:
		jstore, err = journal.NewJSONLStore(cfg.Journal.Path)
	}
	if err != nil {
		return nil, fmt.Errorf("journal store: %w", err)
	}

	var sinks []coremetrics.Sink
	if cfg.Metrics.InfluxEnabled {
		sinks = append(sinks, metrics.NewInfluxSinkWithFallback(cfg.Metrics.Influx))
	}
	var sink coremetrics.Sink
	if len(sinks) == 1 {
		sink = sinks[0]
	} else if len(sinks) > 1 {
		sink = coremetrics.NewMultiSink(sinks...)
	}

	bus := eventbus.New()
	g := game.New(area, game.Options{
		Rand:    rng.New(cfg.Game.Seed),
		Logger:  logger.New("game"),
		Bus:     bus,
		Sink:    sink,
		Journal: jstore,
	})

	var store persist.Store = persist.NewFileStore(cfg.Persist.LocalPath)
	if cfg.Persist.RemoteURL != "" {
		store = persist.NewFallbackStore(persist.NewRemoteStore(cfg.Persist.RemoteURL), store)
	}

	monitor, err := monitoring.NewSentryMonitor(cfg.Sentry)
	if err != nil {
		return nil, fmt.Errorf("sentry: %w", err)
	}
	coremon.Init(monitor)

	svc := &Service{
		Game:    g,
		cfg:     cfg,
		bus:     bus,
		journal: jstore,
		store:   store,
		log:     logg,
	}

	if cfg.MQTT.Enabled {
		client, err := mqtt.NewPahoClient(cfg.MQTT.Client)
		if err != nil {
			return nil, fmt.Errorf("mqtt client: %w", err)
		}
		svc.mqttCli = client
		svc.notifier = mqtt.NewNotifier(client, cfg.MQTT.Client.TopicPrefix)
	}
	return svc, nil
}

// Run starts the adapters and the HTTP server, blocking until the context
// is cancelled or the server fails.
func (s *Service) Run(ctx context.Context) error {
	if s.notifier != nil {
		go s.notifier.Run(ctx, s.bus)
	}
	if s.cfg.Game.AutoAdvanceSeconds > 0 {
		runner := clock.New(time.Duration(s.cfg.Game.AutoAdvanceSeconds)*time.Second, s.log)
		go runner.Run(ctx, func() { s.Game.AdvanceDay() })
	}
	if s.cfg.Metrics.PromEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.cfg.Metrics.PromAddr); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}

	srv := &http.Server{
		Addr:    s.cfg.API.Addr,
		Handler: api.NewServer(s.Game, s.store, s.journal).Router(),
	}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.log.Errorf("http shutdown: %v", err)
		}
	}()
	s.log.Infof("listening on %s", s.cfg.API.Addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		coremon.CaptureException(err, map[string]string{"component": "http"})
		return err
	}
	return nil
}

// Save snapshots the current state through the configured backend.
func (s *Service) Save(ctx context.Context) error {
	return s.store.Save(ctx, s.Game.Snapshot())
}

// Close releases resources held by the service.
func (s *Service) Close() error {
	if s.mqttCli != nil {
		s.mqttCli.Close()
	}
	s.bus.Close()
	coremon.Flush(2 * time.Second)
	return s.journal.Close()
}
