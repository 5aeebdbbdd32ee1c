package services

import (
	"encoding/json"
	"log"
)

// EventPublisher abstracts the message broker so services can emit catalog
// audit events without knowing about RabbitMQ. *rabbitmq.Client satisfies it.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// publishEvent marshals payload and publishes it under routingKey. A nil
// publisher disables event publishing; publish failures are logged and never
// fail the mutation that triggered them.
func publishEvent(publisher EventPublisher, routingKey string, payload interface{}) {
	if publisher == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event payload: %v", routingKey, err)
		return
	}
	if err := publisher.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}
