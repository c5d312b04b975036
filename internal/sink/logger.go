package sink

import (
	"github.com/rs/zerolog"

	"github.com/saiputravu/matchbook/internal/domain"
)

// Logger emits one structured log line per book event. It mirrors the
// logging style of the teacher's net server: a bound zerolog.Logger, field
// accessors, no fmt.Sprintf in the hot path.
type Logger struct {
	log zerolog.Logger
}

func NewLogger(log zerolog.Logger) *Logger {
	return &Logger{log: log.With().Str("component", "book").Logger()}
}

func (l *Logger) OnTrade(t domain.Trade) {
	l.log.Info().
		Uint64("resting_id", t.RestingId).
		Uint64("taking_id", t.TakingId).
		Int64("price", t.Price).
		Int64("qty", t.Qty).
		Msg("trade")
}

func (l *Logger) OnOrderAccepted(ack domain.OrderAck) {
	l.log.Info().Uint64("order_id", ack.Id).Msg("order accepted")
}

func (l *Logger) OnOrderRejected(ack domain.OrderAck) {
	l.log.Warn().Uint64("order_id", ack.Id).Str("reason", ack.Reason).Msg("order rejected")
}

func (l *Logger) OnOrderCancelled(id domain.OrderId, success bool) {
	ev := l.log.Info()
	if !success {
		ev = l.log.Warn()
	}
	ev.Uint64("order_id", id).Bool("success", success).Msg("order cancelled")
}
