package config

import "github.com/villnoweric/package-delivery-tycoon/infra/metrics"

// MetricsConfig enables the Prometheus endpoint and the InfluxDB sink.
type MetricsConfig struct {
	PromEnabled   bool                 `json:"prom_enabled"`
	PromAddr      string               `json:"prom_addr"`
	InfluxEnabled bool                 `json:"influx_enabled"`
	Influx        metrics.InfluxConfig `json:"influx"`
}

// SetDefaults applies sane defaults.
func (c *MetricsConfig) SetDefaults() {
	if c.PromAddr == "" {
		c.PromAddr = ":9090"
	}
}
