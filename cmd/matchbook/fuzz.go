package main

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	tomb "gopkg.in/tomb.v2"

	"github.com/saiputravu/matchbook/internal/engine"
	"github.com/saiputravu/matchbook/internal/sink"
	"github.com/saiputravu/matchbook/internal/workerpool"
)

func newFuzzCmd(log zerolog.Logger) *cobra.Command {
	var workers int

	cmd := &cobra.Command{
		Use:   "fuzz [num_ops] [cancel_prob_pct] [max_price] [max_qty] [seed]",
		Short: "Run many independently owned order books concurrently, checking invariants on each",
		Args:  cobra.MaximumNArgs(5),
		RunE: func(cmd *cobra.Command, args []string) error {
			base, err := parseWorkloadArgs(args)
			if err != nil {
				return err
			}
			base.clamp()

			runID := uuid.New()
			runLog := log.With().Str("run_id", runID.String()).Logger()

			reg := prometheus.NewRegistry()
			metrics := sink.NewMetrics(reg)

			results := make([]*sink.Stats, workers)
			var mu sync.Mutex
			var firstFailure error

			pool := workerpool.New(workers, runLog, func(jobIndex int) error {
				p := base
				p.seed = base.seed + int64(jobIndex)

				stats := &sink.Stats{}
				workerSink := sink.Multi{stats, metrics}
				eng := engine.New(workerSink, int(p.numOps))

				err := runWorkload(eng, p, correctnessCheckEvery)

				mu.Lock()
				results[jobIndex] = stats
				if err != nil && firstFailure == nil {
					firstFailure = fmt.Errorf("worker %d: %w", jobIndex, err)
				}
				mu.Unlock()
				return nil
			})

			runLog.Info().
				Int("workers", workers).
				Uint64("num_ops_per_worker", base.numOps).
				Msg("starting fuzz run")

			start := time.Now()
			t := &tomb.Tomb{}
			t.Go(func() error {
				return pool.Run(t, workers)
			})
			if err := t.Wait(); err != nil {
				return err
			}
			elapsed := time.Since(start)

			var total sink.Stats
			for _, s := range results {
				if s == nil {
					continue
				}
				snap := s.Snapshot()
				total.Trades += snap.Trades
				total.TradedQty += snap.TradedQty
				total.Accepted += snap.Accepted
				total.Rejected += snap.Rejected
				total.CancelsOK += snap.CancelsOK
				total.CancelsFail += snap.CancelsFail
			}

			fmt.Println("=== Matching Engine Fuzz ===")
			fmt.Printf("run_id:           %s\n", runID)
			fmt.Printf("workers:          %d\n", workers)
			fmt.Printf("elapsed:          %s\n", elapsed)
			fmt.Printf("total trades:     %d\n", total.Trades)
			fmt.Printf("total traded qty: %d\n", total.TradedQty)
			fmt.Printf("total accepted:   %d\n", total.Accepted)
			fmt.Printf("total rejected:   %d\n", total.Rejected)
			fmt.Printf("cancels OK/FAIL:  %d/%d\n", total.CancelsOK, total.CancelsFail)

			if firstFailure != nil {
				runLog.Error().Err(firstFailure).Msg("fuzz run found an invariant violation")
				return firstFailure
			}
			fmt.Println("all workers finished with no invariant violations")
			return nil
		},
	}

	cmd.Flags().IntVar(&workers, "workers", runtime.NumCPU(), "number of independently owned books to run concurrently")

	return cmd
}
