package main

import (
	"context"
	"flag"
	"net"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"

	pb "vex/api/exchangepb"
	"vex/api/grpcserver"
	"vex/config"
	"vex/domain/exchange"
	"vex/domain/token"
	"vex/infra/outbox"
	"vex/infra/sequence"
	"vex/infra/wal"
	"vex/jobs/broadcaster"
	"vex/service"
	"vex/snapshot"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.WithError(err).Fatal("config load failed")
	}

	// ---------------- Token ledgers ----------------

	registry := exchange.NewRegistry()
	for _, t := range cfg.Tokens {
		l := token.New(t.Name, t.Symbol, t.Supply, t.Treasury)
		registry.Register(exchange.Token(t.ID), token.Bind(l, cfg.ExchangeAccount))
		log.WithFields(logrus.Fields{
			"token": t.ID, "symbol": t.Symbol, "supply": t.Supply,
		}).Info("token ledger registered")
	}

	// ---------------- Engine ----------------

	eng := exchange.NewEngine(
		registry,
		exchange.Account(cfg.FeeAccount),
		cfg.FeePercent,
	)

	// ---------------- Recovery ----------------

	snapSeq, err := snapshot.Load(
		filepath.Join(cfg.SnapshotDir, "snapshot.bin"), eng,
	)
	if err != nil {
		log.WithError(err).Fatal("snapshot load failed")
	}

	seqGen := sequence.New(0)

	lastSeq, err := service.ReplayFromWAL(cfg.WALDir, snapSeq, eng, seqGen)
	if err != nil {
		log.WithError(err).Fatal("WAL replay failed")
	}
	log.WithFields(logrus.Fields{
		"snapshot_seq": snapSeq, "last_seq": lastSeq,
	}).Info("state recovered")

	// ---------------- Persistence ----------------

	entryWAL, err := wal.Open(wal.Config{
		Dir:         cfg.WALDir,
		SegmentSize: cfg.WALSegmentSize,
	})
	if err != nil {
		log.WithError(err).Fatal("WAL init failed")
	}
	defer entryWAL.Close()

	ob, err := outbox.Open(cfg.OutboxDir, func() int64 { return time.Now().Unix() })
	if err != nil {
		log.WithError(err).Fatal("outbox init failed")
	}
	defer ob.Close()

	// ---------------- Service ----------------

	svc := service.NewExchangeService(eng, seqGen, entryWAL, ob, log)

	// ---------------- Background jobs ----------------

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.StartSnapshotJob(ctx, cfg.SnapshotDir, cfg.SnapshotEvery)

	bc, err := broadcaster.New(ob, cfg.Kafka.Brokers, cfg.Kafka.Topic, cfg.Kafka.Every, log)
	if err != nil {
		// The engine runs fine without a broker: events stay in the
		// outbox and are delivered once a broadcaster connects.
		log.WithError(err).Warn("broadcaster unavailable, events will queue in outbox")
	} else {
		go bc.Run(ctx)
		defer bc.Close()
	}

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		log.WithError(err).Fatal("listen failed")
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterExchangeServer(grpcSrv, grpcserver.NewServer(svc))

	log.WithFields(logrus.Fields{
		"addr":        cfg.ListenAddr,
		"fee_account": cfg.FeeAccount,
		"fee_percent": cfg.FeePercent,
	}).Info("vex engine running")

	if err := grpcSrv.Serve(lis); err != nil {
		log.WithError(err).Fatal("gRPC server exited")
	}
}
