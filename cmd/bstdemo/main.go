// Command bstdemo builds a tree from random values, unbalances it with a
// batch of inserts and rebalances it again, printing the tree and its
// traversals at every step.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	if err := newRootCmd(&log).ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("bstdemo failed")
		os.Exit(1)
	}
}
