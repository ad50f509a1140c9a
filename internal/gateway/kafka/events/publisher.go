package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/IBM/sarama"
	"deliverycore/internal/entities"
)

// Publisher шлет события смены статуса заказа в Kafka. Ключ сообщения —
// код заказа: события одного заказа попадают в одну партицию и читаются
// по порядку.
type Publisher struct {
	producer syncProducer
	topic    string
}

func New(producer syncProducer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
	}
}

func (p *Publisher) PublishStatusChanged(_ context.Context, event entities.OrderStatusChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal status changed event: %w", err)
	}

	started := time.Now()
	_, _, err = p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.OrderCode),
		Value: sarama.ByteEncoder(payload),
	})

	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	publishDuration.WithLabelValues(p.topic, outcome).Observe(time.Since(started).Seconds())

	if err != nil {
		return fmt.Errorf("send status changed event for order %s: %w", event.OrderCode, err)
	}
	return nil
}
