package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/saiputravu/matchbook/internal/engine"
	"github.com/saiputravu/matchbook/internal/sink"
)

const correctnessCheckEvery = 100_000

func newBenchCmd(log zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "bench [num_ops] [cancel_prob_pct] [max_price] [max_qty] [seed]",
		Short: "Run a single-threaded randomized workload against one order book",
		Args:  cobra.MaximumNArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseWorkloadArgs(args)
			if err != nil {
				return err
			}
			p.clamp()

			fmt.Println("=== Matching Engine Bench ===")
			fmt.Printf("num_ops          = %d\n", p.numOps)
			fmt.Printf("cancel_prob_pct  = %d%%\n", p.cancelProbPct)
			fmt.Printf("max_price        = %d\n", p.maxPrice)
			fmt.Printf("max_qty          = %d\n", p.maxQty)
			fmt.Printf("seed             = %d\n", p.seed)

			stats := &sink.Stats{}
			eng := engine.New(stats, int(p.numOps))

			log.Info().Uint64("num_ops", p.numOps).Int64("seed", p.seed).Msg("starting bench workload")

			start := time.Now()
			if err := runWorkload(eng, p, correctnessCheckEvery); err != nil {
				return err
			}
			elapsed := time.Since(start)

			snap := stats.Snapshot()
			fmt.Println("\n=== Results ===")
			fmt.Printf("Elapsed time:     %s\n", elapsed)
			fmt.Printf("Operations:       %d\n", p.numOps)
			fmt.Printf("Ops/sec:          %.0f\n", float64(p.numOps)/elapsed.Seconds())
			fmt.Printf("Orders accepted:  %d\n", snap.Accepted)
			fmt.Printf("Orders rejected:  %d\n", snap.Rejected)
			fmt.Printf("Trades:           %d\n", snap.Trades)
			fmt.Printf("Total traded qty: %d\n", snap.TradedQty)
			fmt.Printf("Cancels OK:       %d\n", snap.CancelsOK)
			fmt.Printf("Cancels FAIL:     %d\n", snap.CancelsFail)

			if bb, ok := eng.BestBid(); ok {
				fmt.Printf("Final best bid:   %d\n", bb)
			} else {
				fmt.Println("Final best bid:   NONE")
			}
			if ba, ok := eng.BestAsk(); ok {
				fmt.Printf("Final best ask:   %d\n", ba)
			} else {
				fmt.Println("Final best ask:   NONE")
			}
			return nil
		},
	}
}

// parseWorkloadArgs parses the reference implementation's positional CLI
// arguments, falling back to its defaults (1,000,000 / 10 / 1000 / 100 /
// random) for anything unset.
func parseWorkloadArgs(args []string) (workloadParams, error) {
	p := workloadParams{
		numOps:        1_000_000,
		cancelProbPct: 10,
		maxPrice:      1000,
		maxQty:        100,
		seed:          time.Now().UnixNano(),
	}

	get := func(i int) (string, bool) {
		if i < len(args) {
			return args[i], true
		}
		return "", false
	}

	if s, ok := get(0); ok {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return p, fmt.Errorf("invalid num_ops %q: %w", s, err)
		}
		p.numOps = v
	}
	if s, ok := get(1); ok {
		v, err := strconv.Atoi(s)
		if err != nil {
			return p, fmt.Errorf("invalid cancel_prob_pct %q: %w", s, err)
		}
		p.cancelProbPct = v
	}
	if s, ok := get(2); ok {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p, fmt.Errorf("invalid max_price %q: %w", s, err)
		}
		p.maxPrice = v
	}
	if s, ok := get(3); ok {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p, fmt.Errorf("invalid max_qty %q: %w", s, err)
		}
		p.maxQty = v
	}
	if s, ok := get(4); ok {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return p, fmt.Errorf("invalid seed %q: %w", s, err)
		}
		p.seed = v
	}

	return p, nil
}
