package sequence

import "testing"

func TestSequencer(t *testing.T) {
	s := New(0)

	if got := s.Next(); got != 1 {
		t.Fatalf("Next = %d, want 1", got)
	}
	if got := s.Next(); got != 2 {
		t.Fatalf("Next = %d, want 2", got)
	}
	if got := s.Current(); got != 2 {
		t.Fatalf("Current = %d, want 2", got)
	}

	s.Reset(10)
	if got := s.Next(); got != 11 {
		t.Fatalf("Next after Reset = %d, want 11", got)
	}
}

func TestNewStartsAfterRecoveredSeq(t *testing.T) {
	s := New(7)
	if got := s.Next(); got != 8 {
		t.Fatalf("Next = %d, want 8", got)
	}
}
