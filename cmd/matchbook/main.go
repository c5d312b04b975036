// Command matchbook drives the order book core via three subcommands:
// bench (the reference implementation's single-threaded workload/benchmark
// harness), fuzz (many independently owned books run concurrently), and
// serve (a long-running bench workload with a Prometheus /metrics endpoint).
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	root := &cobra.Command{
		Use:   "matchbook",
		Short: "Single-instrument limit order matching engine demo/benchmark harness",
	}

	root.AddCommand(newBenchCmd(log))
	root.AddCommand(newFuzzCmd(log))
	root.AddCommand(newServeCmd(log))

	if err := root.Execute(); err != nil {
		log.Error().Err(err).Msg("matchbook exited with error")
		os.Exit(1)
	}
}
