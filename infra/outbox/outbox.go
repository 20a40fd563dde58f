// Package outbox is the durable event outbox. Every engine event is
// stored here, keyed by operation sequence, before it is broadcast.
// Entries move NEW → SENT → ACKED; ACKED entries are garbage-collected
// once a snapshot covers them. A crash between SENT and ACKED means
// the broadcaster may publish an event twice — consumers must treat
// the stream as at-least-once.
package outbox

import (
	"bytes"
	"encoding/binary"
	"fmt"

	"github.com/cockroachdb/pebble"
	"github.com/pkg/errors"
)

// -------------------- State --------------------

type State uint8

const (
	StateNew State = iota
	StateSent
	StateAcked
)

func (s State) String() string {
	switch s {
	case StateNew:
		return "NEW"
	case StateSent:
		return "SENT"
	case StateAcked:
		return "ACKED"
	default:
		return "UNKNOWN"
	}
}

// -------------------- Record --------------------

type Record struct {
	Seq         uint64
	State       State
	Retries     uint32
	LastAttempt int64
	EventType   uint8
	Payload     []byte
}

// binary encoding: [state:1][retries:4][lastAttempt:8][eventType:1][payload]
func encodeRecord(r *Record) []byte {
	buf := make([]byte, 1+4+8+1+len(r.Payload))
	buf[0] = byte(r.State)
	binary.BigEndian.PutUint32(buf[1:5], r.Retries)
	binary.BigEndian.PutUint64(buf[5:13], uint64(r.LastAttempt))
	buf[13] = r.EventType
	copy(buf[14:], r.Payload)
	return buf
}

func decodeRecord(seq uint64, b []byte) (*Record, error) {
	if len(b) < 14 {
		return nil, errors.Errorf("invalid outbox record length %d", len(b))
	}
	return &Record{
		Seq:         seq,
		State:       State(b[0]),
		Retries:     binary.BigEndian.Uint32(b[1:5]),
		LastAttempt: int64(binary.BigEndian.Uint64(b[5:13])),
		EventType:   b[13],
		Payload:     append([]byte(nil), b[14:]...),
	}, nil
}

// -------------------- Outbox --------------------

type Outbox struct {
	db *pebble.DB

	now func() int64
}

func Open(dir string, now func() int64) (*Outbox, error) {
	db, err := pebble.Open(dir, &pebble.Options{
		DisableWAL: false, // durability is the point
	})
	if err != nil {
		return nil, errors.Wrap(err, "open outbox")
	}
	return &Outbox{db: db, now: now}, nil
}

func (o *Outbox) Close() error {
	return o.db.Close()
}

// -------------------- API --------------------

// Put inserts a new entry in state NEW. Called by the service inside
// the write path, after the WAL append.
func (o *Outbox) Put(seq uint64, eventType uint8, payload []byte) error {
	rec := &Record{
		Seq:       seq,
		State:     StateNew,
		EventType: eventType,
		Payload:   payload,
	}
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// MarkSent records a broadcast attempt.
func (o *Outbox) MarkSent(seq uint64, eventType uint8, payload []byte, retries uint32) error {
	rec := &Record{
		Seq:         seq,
		State:       StateSent,
		Retries:     retries,
		LastAttempt: o.now(),
		EventType:   eventType,
		Payload:     payload,
	}
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// MarkAcked records broker acknowledgement.
func (o *Outbox) MarkAcked(seq uint64, eventType uint8, payload []byte) error {
	rec := &Record{
		Seq:       seq,
		State:     StateAcked,
		EventType: eventType,
		Payload:   payload,
	}
	return o.db.Set(keyFor(seq), encodeRecord(rec), pebble.Sync)
}

// Get returns the record for one sequence.
func (o *Outbox) Get(seq uint64) (*Record, error) {
	val, closer, err := o.db.Get(keyFor(seq))
	if err != nil {
		return nil, err
	}
	defer closer.Close()

	return decodeRecord(seq, val)
}

// ScanPending iterates every record not yet ACKED, in seq order. The
// broadcaster drains these each tick.
func (o *Outbox) ScanPending(fn func(*Record) error) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}
		if rec.State == StateAcked {
			continue
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return iter.Error()
}

// TruncateAckedUpTo deletes ACKED entries with seq <= bound.
func (o *Outbox) TruncateAckedUpTo(bound uint64) error {
	iter, err := o.db.NewIter(&pebble.IterOptions{
		LowerBound: []byte("event/"),
		UpperBound: []byte("event/~"),
	})
	if err != nil {
		return err
	}
	defer iter.Close()

	for iter.First(); iter.Valid(); iter.Next() {
		seq, err := parseKey(iter.Key())
		if err != nil {
			return err
		}
		if seq > bound {
			break
		}
		rec, err := decodeRecord(seq, iter.Value())
		if err != nil {
			return err
		}
		if rec.State != StateAcked {
			continue
		}
		if err := o.db.Delete(keyFor(seq), pebble.Sync); err != nil {
			return err
		}
	}
	return iter.Error()
}

// -------------------- Helpers --------------------

func keyFor(seq uint64) []byte {
	return []byte(fmt.Sprintf("event/%020d", seq))
}

func parseKey(b []byte) (uint64, error) {
	var seq uint64
	_, err := fmt.Sscanf(string(bytes.TrimPrefix(b, []byte("event/"))), "%d", &seq)
	return seq, err
}
