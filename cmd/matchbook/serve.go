package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	tomb "gopkg.in/tomb.v2"

	"github.com/saiputravu/matchbook/internal/engine"
	"github.com/saiputravu/matchbook/internal/sink"
)

func newServeCmd(log zerolog.Logger) *cobra.Command {
	var addr string
	var opsPerBatch uint64

	cmd := &cobra.Command{
		Use:   "serve [cancel_prob_pct] [max_price] [max_qty] [seed]",
		Short: "Run the bench workload forever against one book, exposing Prometheus metrics over HTTP",
		Args:  cobra.MaximumNArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := parseWorkloadArgs(prependArg(args, "0"))
			if err != nil {
				return err
			}
			p.numOps = opsPerBatch
			p.clamp()

			reg := prometheus.NewRegistry()
			metrics := sink.NewMetrics(reg)
			eng := engine.New(metrics, int(opsPerBatch))

			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
			srv := &http.Server{Addr: addr, Handler: mux}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			t, ctx := tomb.WithContext(ctx)

			t.Go(func() error {
				log.Info().Str("addr", addr).Msg("metrics server listening")
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					return fmt.Errorf("metrics server: %w", err)
				}
				return nil
			})

			t.Go(func() error {
				<-t.Dying()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				return srv.Shutdown(shutdownCtx)
			})

			t.Go(func() error {
				batch := p
				for i := 0; ; i++ {
					select {
					case <-ctx.Done():
						return nil
					default:
					}
					batch.seed = p.seed + int64(i)
					if err := runWorkload(eng, batch, opsPerBatch/5); err != nil {
						log.Error().Err(err).Msg("invariant violation during serve workload")
						return err
					}
				}
			})

			<-ctx.Done()
			log.Info().Msg("shutdown signal received")
			t.Kill(nil)
			return t.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":9090", "address to serve /metrics on")
	cmd.Flags().Uint64Var(&opsPerBatch, "batch-ops", 50_000, "workload operations to run per batch before re-checking for shutdown")

	return cmd
}

// prependArg shifts positional args right by one slot so a shared parser can
// be reused for a command whose first positional argument (num_ops) is fixed
// rather than user-supplied.
func prependArg(args []string, first string) []string {
	out := make([]string, 0, len(args)+1)
	out = append(out, first)
	out = append(out, args...)
	return out
}
