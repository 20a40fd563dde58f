// feed tails the exchange events topic and prints every envelope.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"strings"

	"github.com/sirupsen/logrus"

	"vex/infra/feed"
)

func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma-separated kafka brokers")
	topic := flag.String("topic", "vex.events", "events topic")
	group := flag.String("group", "vex-feed", "consumer group")
	flag.Parse()

	log := logrus.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	r := feed.NewReader(strings.Split(*brokers, ","), *topic, *group)
	defer r.Close()

	for {
		env, err := r.Next(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.WithError(err).Fatal("read failed")
		}
		log.WithFields(logrus.Fields{
			"seq":  env.Seq,
			"type": env.Type,
			"data": string(env.Data),
		}).Info("event")
	}
}
