// Package broadcaster drains the event outbox to Kafka. It is the
// only component that talks to the broker on the write side; the
// engine itself never blocks on network I/O.
package broadcaster

import (
	"context"
	"encoding/json"
	"time"

	"github.com/IBM/sarama"
	"github.com/sirupsen/logrus"

	"vex/domain/exchange"
	"vex/infra/outbox"
)

type Broadcaster struct {
	outbox   *outbox.Outbox
	producer sarama.SyncProducer
	topic    string
	interval time.Duration
	log      *logrus.Entry
}

// Envelope is the wire format published to the events topic. Data is
// the JSON event payload exactly as the engine emitted it.
type Envelope struct {
	V    int             `json:"v"`
	Type string          `json:"type"`
	Seq  uint64          `json:"seq"`
	Data json.RawMessage `json:"data"`
}

func New(
	ob *outbox.Outbox,
	brokers []string,
	topic string,
	interval time.Duration,
	log *logrus.Logger,
) (*Broadcaster, error) {

	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 5

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		return nil, err
	}

	return &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    topic,
		interval: interval,
		log:      log.WithField("job", "broadcaster"),
	}, nil
}

// Run drains the outbox every tick until ctx is canceled. Failed sends
// stay pending and are retried next tick.
func (b *Broadcaster) Run(ctx context.Context) {
	b.log.WithField("topic", b.topic).Info("broadcaster started")

	ticker := time.NewTicker(b.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			b.drainOnce()
		}
	}
}

func (b *Broadcaster) drainOnce() {
	err := b.outbox.ScanPending(func(rec *outbox.Record) error {
		env := Envelope{
			V:    1,
			Type: exchange.EventType(rec.EventType).String(),
			Seq:  rec.Seq,
			Data: rec.Payload,
		}
		value, err := json.Marshal(env)
		if err != nil {
			return err
		}

		if err := b.outbox.MarkSent(rec.Seq, rec.EventType, rec.Payload, rec.Retries+1); err != nil {
			return err
		}

		msg := &sarama.ProducerMessage{
			Topic: b.topic,
			Key:   sarama.StringEncoder(env.Type),
			Value: sarama.ByteEncoder(value),
		}
		if _, _, err := b.producer.SendMessage(msg); err != nil {
			b.log.WithError(err).WithField("seq", rec.Seq).Warn("publish failed, will retry")
			return nil // leave SENT, retried next tick
		}

		return b.outbox.MarkAcked(rec.Seq, rec.EventType, rec.Payload)
	})
	if err != nil {
		b.log.WithError(err).Error("outbox scan failed")
	}
}

func (b *Broadcaster) Close() error {
	return b.producer.Close()
}
