package bus

import (
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"dentistimo/config"
)

// Publisher is the outbound side of the bus. Client implements it; tests
// substitute a recording fake.
type Publisher interface {
	Publish(topic string, payload []byte) error
}

// MessageHandler receives one inbound message. Handlers run on the MQTT
// client's callback goroutines, so deliveries for different sessions may be
// processed concurrently and in any order.
type MessageHandler func(topic string, payload []byte)

// Client wraps the MQTT connection used for all inbound and outbound
// traffic.
type Client struct {
	inner mqtt.Client
	qos   byte
}

// NewClient builds an unconnected client from the loaded configuration.
func NewClient() *Client {
	cfg := config.AppConfig
	opts := mqtt.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.MQTTClientID).
		SetAutoReconnect(true).
		SetConnectTimeout(10 * time.Second).
		SetOrderMatters(false)
	return &Client{inner: mqtt.NewClient(opts), qos: byte(cfg.MQTTQoS)}
}

// Connect dials the broker and blocks until the connection is up or failed.
func (c *Client) Connect() error {
	if tok := c.inner.Connect(); tok.Wait() && tok.Error() != nil {
		return fmt.Errorf("failed to connect to MQTT broker: %w", tok.Error())
	}
	return nil
}

// Subscribe registers a handler for every message on the given topic at the
// configured QoS.
func (c *Client) Subscribe(topic string, handler MessageHandler) error {
	tok := c.inner.Subscribe(topic, c.qos, func(_ mqtt.Client, msg mqtt.Message) {
		handler(msg.Topic(), msg.Payload())
	})
	if tok.Wait() && tok.Error() != nil {
		return fmt.Errorf("failed to subscribe to %s: %w", topic, tok.Error())
	}
	return nil
}

// Publish sends payload on topic at the configured QoS and blocks until the
// broker acknowledges it.
func (c *Client) Publish(topic string, payload []byte) error {
	tok := c.inner.Publish(topic, c.qos, false, payload)
	if tok.Wait() && tok.Error() != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, tok.Error())
	}
	return nil
}

// Connected reports whether the underlying connection is currently open.
func (c *Client) Connected() bool {
	return c.inner.IsConnectionOpen()
}

// Close disconnects from the broker, giving in-flight messages a moment to
// drain.
func (c *Client) Close() {
	c.inner.Disconnect(250)
}
