// Package feed tails the exchange events topic. It is the consumer
// side of the broadcast pipeline, used by the feed tool and by
// anything that wants to follow settlements off-process.
package feed

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/segmentio/kafka-go"
)

type Reader struct {
	reader *kafka.Reader
}

// Envelope mirrors the broadcaster's wire format.
type Envelope struct {
	V    int             `json:"v"`
	Type string          `json:"type"`
	Seq  uint64          `json:"seq"`
	Data json.RawMessage `json:"data"`
}

func NewReader(brokers []string, topic, group string) *Reader {
	return &Reader{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers: brokers,
			Topic:   topic,
			GroupID: group,
		}),
	}
}

// Next blocks for the next event envelope.
func (r *Reader) Next(ctx context.Context) (*Envelope, error) {
	msg, err := r.reader.ReadMessage(ctx)
	if err != nil {
		return nil, err
	}

	var env Envelope
	if err := json.Unmarshal(msg.Value, &env); err != nil {
		return nil, errors.Wrap(err, "decode event envelope")
	}
	return &env, nil
}

func (r *Reader) Close() error {
	return r.reader.Close()
}
