package broadcaster

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vex/domain/exchange"
	"vex/infra/outbox"
)

func newTestBroadcaster(t *testing.T) (*Broadcaster, *outbox.Outbox, *mocks.SyncProducer) {
	t.Helper()

	ob, err := outbox.Open(t.TempDir(), func() int64 { return 1 })
	require.NoError(t, err)
	t.Cleanup(func() { ob.Close() })

	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	producer := mocks.NewSyncProducer(t, nil)

	b := &Broadcaster{
		outbox:   ob,
		producer: producer,
		topic:    "vex.events",
		interval: time.Millisecond,
		log:      log.WithField("job", "broadcaster"),
	}
	return b, ob, producer
}

func TestDrainPublishesAndAcks(t *testing.T) {
	b, ob, producer := newTestBroadcaster(t)

	payload := []byte(`{"token":"T1","user":"alice","amount":100,"balance":100}`)
	require.NoError(t, ob.Put(1, uint8(exchange.EvDeposit), payload))

	producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
		var env Envelope
		if err := json.Unmarshal(value, &env); err != nil {
			return err
		}
		if env.V != 1 || env.Type != "Deposit" || env.Seq != 1 {
			return errors.New("bad envelope header")
		}
		if string(env.Data) != string(payload) {
			return errors.New("payload mangled")
		}
		return nil
	})

	b.drainOnce()

	rec, err := ob.Get(1)
	require.NoError(t, err)
	assert.Equal(t, outbox.StateAcked, rec.State)
}

func TestDrainLeavesFailedSendPending(t *testing.T) {
	b, ob, producer := newTestBroadcaster(t)

	require.NoError(t, ob.Put(1, uint8(exchange.EvOrderFilled), []byte(`{"id":1}`)))

	producer.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)
	b.drainOnce()

	rec, err := ob.Get(1)
	require.NoError(t, err)
	assert.Equal(t, outbox.StateSent, rec.State)
	assert.Equal(t, uint32(1), rec.Retries)

	// Next tick retries and succeeds.
	producer.ExpectSendMessageAndSucceed()
	b.drainOnce()

	rec, err = ob.Get(1)
	require.NoError(t, err)
	assert.Equal(t, outbox.StateAcked, rec.State)
}

func TestDrainPreservesSeqOrder(t *testing.T) {
	b, ob, producer := newTestBroadcaster(t)

	for seq := uint64(1); seq <= 3; seq++ {
		require.NoError(t, ob.Put(seq, uint8(exchange.EvDeposit), []byte(`{}`)))
	}

	var seqs []uint64
	for i := 0; i < 3; i++ {
		producer.ExpectSendMessageWithCheckerFunctionAndSucceed(func(value []byte) error {
			var env Envelope
			if err := json.Unmarshal(value, &env); err != nil {
				return err
			}
			seqs = append(seqs, env.Seq)
			return nil
		})
	}

	b.drainOnce()

	assert.Equal(t, []uint64{1, 2, 3}, seqs)
}
