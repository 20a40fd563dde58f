package wal

import "time"

type RecordType uint8

// One record type per committed mutation. Records are written after
// the domain transition succeeds; replay re-applies internal effects
// only and never re-executes external transfers.
const (
	RecordDeposit RecordType = iota + 1
	RecordWithdraw
	RecordMake
	RecordCancel
	RecordFill
)

type Record struct {
	Type RecordType
	Seq  uint64
	Time int64
	Data []byte
}

func NewRecord(t RecordType, seq uint64, data []byte) *Record {
	return &Record{
		Type: t,
		Seq:  seq,
		Time: time.Now().Unix(),
		Data: data,
	}
}
