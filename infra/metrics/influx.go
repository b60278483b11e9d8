package metrics

import (
	"context"
	"net/http"
	"strings"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	coremetrics "github.com/villnoweric/package-delivery-tycoon/core/metrics"
	"github.com/villnoweric/package-delivery-tycoon/infra/logger"
)

// InfluxConfig defines the InfluxDB connection parameters.
type InfluxConfig struct {
	URL    string `json:"url" koanf:"url"`
	Token  string `json:"token" koanf:"token"`
	Org    string `json:"org" koanf:"org"`
	Bucket string `json:"bucket" koanf:"bucket"`
}

// InfluxSink writes per-day settlement summaries to an InfluxDB instance
// using the official client.
type InfluxSink struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	log      logger.Logger
}

// NewInfluxSink creates a new sink configured for the given InfluxDB endpoint.
func NewInfluxSink(cfg InfluxConfig) *InfluxSink {
	base := strings.TrimSuffix(cfg.URL, "/api/v2/write")
	client := influxdb2.NewClientWithOptions(base, cfg.Token,
		influxdb2.DefaultOptions().SetHTTPClient(&http.Client{Timeout: 5 * time.Second}))
	return &InfluxSink{
		client:   client,
		writeAPI: client.WriteAPIBlocking(cfg.Org, cfg.Bucket),
		log:      logger.New("influx-sink"),
	}
}

// NewInfluxSinkWithFallback tries to ping the InfluxDB instance and
// returns a NopSink if the health check fails.
func NewInfluxSinkWithFallback(cfg InfluxConfig) coremetrics.Sink {
	sink := NewInfluxSink(cfg)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	health, err := sink.client.Health(ctx)
	if err != nil || health.Status != "pass" {
		if err != nil {
			sink.log.Errorf("influx health check error: %v", err)
		} else {
			sink.log.Errorf("influx health status: %s", health.Status)
		}
		sink.client.Close()
		return coremetrics.NopSink{}
	}
	return sink
}

// RecordSettlement writes the settlement summary as one measurement point.
func (s *InfluxSink) RecordSettlement(rec coremetrics.SettlementRecord) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	p := write.NewPointWithMeasurement("daily_settlement").
		AddField("day", rec.Day).
		AddField("delivered", rec.Delivered).
		AddField("on_time", rec.OnTime).
		AddField("late", rec.Late).
		AddField("generated", rec.Generated).
		AddField("auto_dispatched", rec.AutoDispatched).
		AddField("cash", rec.Cash).
		AddField("loan", rec.Loan).
		AddField("interest", rec.Interest).
		AddField("expenses_total", rec.ExpensesTotal).
		AddField("reputation", rec.Reputation).
		SetTime(time.Now())
	return s.writeAPI.WritePoint(ctx, p)
}

// Close releases the underlying client.
func (s *InfluxSink) Close() { s.client.Close() }
