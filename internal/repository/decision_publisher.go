package repository

import (
	"context"

	"StockPulse/internal/domain/models"
	"StockPulse/internal/domain/repository"
	xlogger "StockPulse/pkg/logger"
)

// producer is the subset of pkg/kafka.Producer the publisher needs.
type producer interface {
	Publish(ctx context.Context, topic string, key []byte, value interface{}) error
	Close() error
}

// KafkaDecisionPublisher implements repository.DecisionPublisher for Kafka.
// It also satisfies logger.Publisher so the log collector can share the producer.
type KafkaDecisionPublisher struct {
	producer producer
	topic    string
}

var (
	_ repository.DecisionPublisher = (*KafkaDecisionPublisher)(nil)
	_ xlogger.Publisher            = (*KafkaDecisionPublisher)(nil)
)

func NewKafkaDecisionPublisher(p producer, topic string) *KafkaDecisionPublisher {
	return &KafkaDecisionPublisher{producer: p, topic: topic}
}

// PublishDecision writes ev keyed by ticker so one ticker stays on one partition.
func (p *KafkaDecisionPublisher) PublishDecision(ctx context.Context, ev models.DecisionEvent) error {
	return p.producer.Publish(ctx, p.topic, []byte(ev.Ticker), ev)
}

func (p *KafkaDecisionPublisher) PublishMessage(ctx context.Context, topic string, payload interface{}) error {
	return p.producer.Publish(ctx, topic, nil, payload)
}

func (p *KafkaDecisionPublisher) Close() error {
	if p.producer != nil {
		return p.producer.Close()
	}
	return nil
}
