// Package mqtt pushes simulation events to an MQTT broker so external
// dashboards can follow a running game.
package mqtt

import (
	"fmt"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/villnoweric/package-delivery-tycoon/infra/logger"
)

// Config defines the connection parameters for the Paho MQTT client.
type Config struct {
	Broker      string `json:"broker" koanf:"broker"`
	ClientID    string `json:"client_id" koanf:"client_id"`
	Username    string `json:"username" koanf:"username"`
	Password    string `json:"password" koanf:"password"`
	TopicPrefix string `json:"topic_prefix" koanf:"topic_prefix"`
	QoS         byte   `json:"qos" koanf:"qos"`
}

// Publisher sends a payload to a topic.
type Publisher interface {
	Publish(topic string, payload []byte) error
	Close()
}

// PahoClient implements Publisher using Eclipse Paho.
type PahoClient struct {
	cli paho.Client
	qos byte
	log logger.Logger
}

// NewPahoClient connects to the MQTT broker.
func NewPahoClient(cfg Config) (*PahoClient, error) {
	log := logger.New("mqtt_client")
	opts := paho.NewClientOptions().AddBroker(cfg.Broker).SetClientID(cfg.ClientID)
	opts.AutoReconnect = true
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}
	opts.OnConnect = func(paho.Client) {
		log.Infof("MQTT connected to %s", cfg.Broker)
	}
	opts.OnConnectionLost = func(_ paho.Client, err error) {
		log.Errorf("connection lost: %v", err)
	}
	opts.OnReconnecting = func(paho.Client, *paho.ClientOptions) {
		log.Warnf("reconnecting to MQTT broker")
	}
	c := paho.NewClient(opts)
	if token := c.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("mqtt connect: %w", token.Error())
	}
	return &PahoClient{cli: c, qos: cfg.QoS, log: log}, nil
}

// Publish sends the payload and waits for broker confirmation.
func (c *PahoClient) Publish(topic string, payload []byte) error {
	token := c.cli.Publish(topic, c.qos, false, payload)
	if token.WaitTimeout(5*time.Second) && token.Error() != nil {
		return token.Error()
	}
	return nil
}

// Close disconnects from the broker.
func (c *PahoClient) Close() {
	c.cli.Disconnect(250)
}
