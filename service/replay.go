package service

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"vex/domain/exchange"
	"vex/infra/sequence"
	"vex/infra/wal"
)

/*
ReplayFromWAL rebuilds engine state from the entry WAL.

- MUST run before accepting traffic.
- Records with seq <= from are skipped (already covered by snapshot).
- External transfers are NOT re-executed: the WAL only holds committed
  operations, so deposits and withdrawals re-apply their internal
  ledger effects directly.
*/

func ReplayFromWAL(
	walDir string,
	from uint64,
	eng *exchange.Engine,
	seqGen *sequence.Sequencer,
) (uint64, error) {
	lastSeq, err := wal.Replay(walDir, func(rec *wal.Record) error {
		if rec.Seq <= from {
			return nil
		}
		return applyRecord(eng, rec)
	})
	if err != nil {
		return lastSeq, err
	}

	if lastSeq < from {
		lastSeq = from
	}

	// Resume sequencing AFTER replay.
	seqGen.Reset(lastSeq)
	return lastSeq, nil
}

func applyRecord(eng *exchange.Engine, rec *wal.Record) error {
	parts := strings.Split(string(rec.Data), "|")

	switch rec.Type {
	case wal.RecordDeposit:
		token, owner, amount, err := parseTransfer(parts)
		if err != nil {
			return err
		}
		eng.ApplyDeposit(token, owner, amount)
		return nil

	case wal.RecordWithdraw:
		token, owner, amount, err := parseTransfer(parts)
		if err != nil {
			return err
		}
		return errors.Wrapf(eng.ApplyWithdraw(token, owner, amount),
			"replay withdraw seq %d", rec.Seq)

	case wal.RecordMake:
		if len(parts) != 5 {
			return errors.Errorf("invalid make payload: %q", rec.Data)
		}
		amountGet, err := strconv.ParseUint(parts[2], 10, 64)
		if err != nil {
			return err
		}
		amountGive, err := strconv.ParseUint(parts[4], 10, 64)
		if err != nil {
			return err
		}
		return errors.Wrapf(eng.ApplyMake(
			exchange.Account(parts[0]),
			exchange.Token(parts[1]), amountGet,
			exchange.Token(parts[3]), amountGive,
			rec.Time,
		), "replay make seq %d", rec.Seq)

	case wal.RecordCancel:
		id, caller, err := parseOrderOp(parts)
		if err != nil {
			return err
		}
		_, err = eng.CancelOrder(id, caller)
		return errors.Wrapf(err, "replay cancel seq %d", rec.Seq)

	case wal.RecordFill:
		id, filler, err := parseOrderOp(parts)
		if err != nil {
			return err
		}
		_, err = eng.FillOrder(id, filler)
		return errors.Wrapf(err, "replay fill seq %d", rec.Seq)

	default:
		return errors.Errorf("unknown WAL record type %d", rec.Type)
	}
}

// payload: token|owner|amount
func parseTransfer(parts []string) (exchange.Token, exchange.Account, uint64, error) {
	if len(parts) != 3 {
		return "", "", 0, errors.Errorf("invalid transfer payload: %q", strings.Join(parts, "|"))
	}
	amount, err := strconv.ParseUint(parts[2], 10, 64)
	if err != nil {
		return "", "", 0, err
	}
	return exchange.Token(parts[0]), exchange.Account(parts[1]), amount, nil
}

// payload: id|account
func parseOrderOp(parts []string) (uint64, exchange.Account, error) {
	if len(parts) != 2 {
		return 0, "", errors.Errorf("invalid order payload: %q", strings.Join(parts, "|"))
	}
	id, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, "", err
	}
	return id, exchange.Account(parts[1]), nil
}
