// Package config loads the server configuration: a yaml file plus an
// optional .env next to it for values that should not live in the
// repo (broker addresses in shared environments).
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

type Config struct {
	ListenAddr string `yaml:"listen_addr"`

	FeeAccount string `yaml:"fee_account"`
	FeePercent uint64 `yaml:"fee_percent"`

	WALDir         string `yaml:"wal_dir"`
	WALSegmentSize int64  `yaml:"wal_segment_size"`
	OutboxDir      string `yaml:"outbox_dir"`

	SnapshotDir      string `yaml:"snapshot_dir"`
	SnapshotInterval string `yaml:"snapshot_interval"`
	SnapshotEvery    time.Duration

	Kafka KafkaConfig `yaml:"kafka"`

	// ExchangeAccount is the exchange's own identity on the external
	// token ledgers (the account deposits are pulled into).
	ExchangeAccount string `yaml:"exchange_account"`

	// Tokens configures in-process dev ledgers. Production deployments
	// register real external ledger adapters instead.
	Tokens []TokenConfig `yaml:"tokens"`
}

type TokenConfig struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Symbol   string `yaml:"symbol"`
	Supply   uint64 `yaml:"supply"`
	Treasury string `yaml:"treasury"`
}

type KafkaConfig struct {
	Brokers  []string `yaml:"brokers"`
	Topic    string   `yaml:"topic"`
	Interval string   `yaml:"interval"`
	Every    time.Duration
}

func Load(filename string) (*Config, error) {
	// Optional .env alongside the config file.
	_ = godotenv.Load(filepath.Join(filepath.Dir(filename), ".env"))

	file, err := os.Open(filename)
	if err != nil {
		return nil, errors.Wrap(err, "open config file")
	}
	defer file.Close()

	cfg := defaults()
	if err := yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, errors.Wrap(err, "decode config file")
	}

	if v := os.Getenv("VEX_KAFKA_BROKERS"); v != "" {
		cfg.Kafka.Brokers = []string{v}
	}

	cfg.SnapshotEvery, err = time.ParseDuration(cfg.SnapshotInterval)
	if err != nil {
		return nil, errors.Wrap(err, "parse snapshot_interval")
	}
	cfg.Kafka.Every, err = time.ParseDuration(cfg.Kafka.Interval)
	if err != nil {
		return nil, errors.Wrap(err, "parse kafka interval")
	}

	if cfg.FeeAccount == "" {
		return nil, errors.New("fee_account is required")
	}

	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ListenAddr:       ":50051",
		WALDir:           "./data/wal",
		WALSegmentSize:   2 * 1024 * 1024,
		OutboxDir:        "./data/outbox",
		SnapshotDir:      "./data/snapshots",
		SnapshotInterval: "30s",
		ExchangeAccount:  "exchange",
		Kafka: KafkaConfig{
			Brokers:  []string{"localhost:9092"},
			Topic:    "vex.events",
			Interval: "250ms",
		},
	}
}
