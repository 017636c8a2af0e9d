package repository

import (
	"context"
	"testing"
	"time"

	"StockPulse/internal/domain/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sent struct {
	topic string
	key   []byte
	value interface{}
}

type fakeProducer struct {
	sent   []sent
	closed bool
}

func (f *fakeProducer) Publish(_ context.Context, topic string, key []byte, value interface{}) error {
	f.sent = append(f.sent, sent{topic, key, value})
	return nil
}

func (f *fakeProducer) Close() error {
	f.closed = true
	return nil
}

func TestPublishDecisionKeysByTicker(t *testing.T) {
	fp := &fakeProducer{}
	p := NewKafkaDecisionPublisher(fp, "stockpulse.decisions")

	ev := models.DecisionEvent{
		Ticker:     "INFY.NS",
		Decision:   models.DecisionBuy,
		Confidence: models.ConfidenceHigh,
		Score:      4,
		Timestamp:  time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishDecision(context.Background(), ev))

	require.Len(t, fp.sent, 1)
	assert.Equal(t, "stockpulse.decisions", fp.sent[0].topic)
	assert.Equal(t, []byte("INFY.NS"), fp.sent[0].key)
	assert.Equal(t, ev, fp.sent[0].value)
}

func TestPublishMessageUsesGivenTopic(t *testing.T) {
	fp := &fakeProducer{}
	p := NewKafkaDecisionPublisher(fp, "stockpulse.decisions")

	require.NoError(t, p.PublishMessage(context.Background(), "stockpulse.logs", []string{"a"}))
	assert.Equal(t, "stockpulse.logs", fp.sent[0].topic)
	assert.Nil(t, fp.sent[0].key)

	require.NoError(t, p.Close())
	assert.True(t, fp.closed)
}
