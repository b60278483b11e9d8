package config

import (
	"fmt"

	"github.com/villnoweric/package-delivery-tycoon/infra/mqtt"
)

// MQTTConfig enables the optional MQTT event notifier.
type MQTTConfig struct {
	Enabled bool        `json:"enabled"`
	Client  mqtt.Config `json:"client"`
}

// Validate checks mandatory fields when the notifier is enabled.
func (c MQTTConfig) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Client.Broker == "" {
		return fmt.Errorf("mqtt broker is required when enabled")
	}
	if c.Client.ClientID == "" {
		return fmt.Errorf("mqtt client_id is required when enabled")
	}
	return nil
}
