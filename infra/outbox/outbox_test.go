package outbox

import (
	"testing"
)

func openTestOutbox(t *testing.T) *Outbox {
	t.Helper()
	now := int64(0)
	ob, err := Open(t.TempDir(), func() int64 { now++; return now })
	if err != nil {
		t.Fatalf("open outbox: %v", err)
	}
	t.Cleanup(func() { ob.Close() })
	return ob
}

func TestPutAndGet(t *testing.T) {
	ob := openTestOutbox(t)

	if err := ob.Put(1, 3, []byte(`{"id":1}`)); err != nil {
		t.Fatalf("put: %v", err)
	}

	rec, err := ob.Get(1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if rec.Seq != 1 || rec.State != StateNew || rec.EventType != 3 {
		t.Fatalf("unexpected record %+v", rec)
	}
	if string(rec.Payload) != `{"id":1}` {
		t.Fatalf("payload = %q", rec.Payload)
	}
}

func TestStateTransitions(t *testing.T) {
	ob := openTestOutbox(t)

	if err := ob.Put(1, 1, []byte("a")); err != nil {
		t.Fatal(err)
	}
	if err := ob.MarkSent(1, 1, []byte("a"), 2); err != nil {
		t.Fatal(err)
	}

	rec, err := ob.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if rec.State != StateSent || rec.Retries != 2 || rec.LastAttempt == 0 {
		t.Fatalf("after MarkSent: %+v", rec)
	}

	if err := ob.MarkAcked(1, 1, []byte("a")); err != nil {
		t.Fatal(err)
	}
	rec, err = ob.Get(1)
	if err != nil {
		t.Fatal(err)
	}
	if rec.State != StateAcked {
		t.Fatalf("after MarkAcked: %+v", rec)
	}
}

func TestScanPendingSkipsAcked(t *testing.T) {
	ob := openTestOutbox(t)

	for seq := uint64(1); seq <= 3; seq++ {
		if err := ob.Put(seq, 1, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}
	if err := ob.MarkAcked(2, 1, []byte("x")); err != nil {
		t.Fatal(err)
	}

	var seqs []uint64
	err := ob.ScanPending(func(r *Record) error {
		seqs = append(seqs, r.Seq)
		return nil
	})
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(seqs) != 2 || seqs[0] != 1 || seqs[1] != 3 {
		t.Fatalf("pending seqs = %v, want [1 3]", seqs)
	}
}

func TestScanPendingSeqOrder(t *testing.T) {
	ob := openTestOutbox(t)

	// Keys are zero-padded, so lexicographic iteration is numeric even
	// across digit-count boundaries.
	for _, seq := range []uint64{100, 2, 11} {
		if err := ob.Put(seq, 1, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}

	var seqs []uint64
	if err := ob.ScanPending(func(r *Record) error {
		seqs = append(seqs, r.Seq)
		return nil
	}); err != nil {
		t.Fatal(err)
	}
	want := []uint64{2, 11, 100}
	for i := range want {
		if seqs[i] != want[i] {
			t.Fatalf("seqs = %v, want %v", seqs, want)
		}
	}
}

func TestTruncateAckedUpTo(t *testing.T) {
	ob := openTestOutbox(t)

	for seq := uint64(1); seq <= 4; seq++ {
		if err := ob.Put(seq, 1, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}
	// 1 and 3 acked, 2 still pending, 4 acked but past the bound.
	for _, seq := range []uint64{1, 3, 4} {
		if err := ob.MarkAcked(seq, 1, []byte("x")); err != nil {
			t.Fatal(err)
		}
	}

	if err := ob.TruncateAckedUpTo(3); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	if _, err := ob.Get(1); err == nil {
		t.Fatal("seq 1 should be deleted")
	}
	if _, err := ob.Get(3); err == nil {
		t.Fatal("seq 3 should be deleted")
	}
	if _, err := ob.Get(2); err != nil {
		t.Fatalf("seq 2 (pending) must survive: %v", err)
	}
	if _, err := ob.Get(4); err != nil {
		t.Fatalf("seq 4 (past bound) must survive: %v", err)
	}
}

func TestRecordEncodingRoundTrip(t *testing.T) {
	in := &Record{
		Seq:         42,
		State:       StateSent,
		Retries:     7,
		LastAttempt: 1234567,
		EventType:   5,
		Payload:     []byte("hello"),
	}

	out, err := decodeRecord(42, encodeRecord(in))
	if err != nil {
		t.Fatal(err)
	}
	if out.State != in.State || out.Retries != in.Retries ||
		out.LastAttempt != in.LastAttempt || out.EventType != in.EventType ||
		string(out.Payload) != string(in.Payload) {
		t.Fatalf("round trip mismatch: %+v vs %+v", out, in)
	}
}

func TestDecodeRejectsShortRecord(t *testing.T) {
	if _, err := decodeRecord(1, []byte{1, 2, 3}); err == nil {
		t.Fatal("expected error for short record")
	}
}
