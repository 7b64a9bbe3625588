package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"notion-inbox/internal/pkg/config"
)

// BotMetrics contains the bot runtime metrics.
//
// Configuration metrics (from embedded ConfigMetrics):
//   - bot_config_load_timestamp
//   - bot_config_validation_errors_total{field}
//   - bot_config_fallbacks_total{field}
//   - bot_config_fallback_active
//
// Listener metrics:
//   - bot_updates_received_total
//   - bot_updates_skipped_total{reason}
//   - bot_handlers_in_flight
type BotMetrics struct {
	*config.ConfigMetrics

	UpdatesReceivedTotal prometheus.Counter
	UpdatesSkippedTotal  *prometheus.CounterVec
	HandlersInFlight     prometheus.Gauge
}

// NewBotMetrics creates the bot metrics on reg.
// Pass prometheus.DefaultRegisterer in production.
func NewBotMetrics(reg prometheus.Registerer) *BotMetrics {
	factory := promauto.With(reg)

	return &BotMetrics{
		ConfigMetrics: config.NewConfigMetrics(reg, "bot"),

		UpdatesReceivedTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "bot_updates_received_total",
			Help: "Total number of updates received from Telegram",
		}),

		UpdatesSkippedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "bot_updates_skipped_total",
			Help: "Total number of updates not handled, by reason",
		}, []string{"reason"}),

		HandlersInFlight: factory.NewGauge(prometheus.GaugeOpts{
			Name: "bot_handlers_in_flight",
			Help: "Number of messages currently being handled",
		}),
	}
}

// RecordUpdateReceived counts one update from getUpdates.
func (m *BotMetrics) RecordUpdateReceived() {
	m.UpdatesReceivedTotal.Inc()
}

// RecordUpdateSkipped counts one filtered update.
func (m *BotMetrics) RecordUpdateSkipped(reason string) {
	m.UpdatesSkippedTotal.WithLabelValues(reason).Inc()
}

func (m *BotMetrics) HandlerStarted()  { m.HandlersInFlight.Inc() }
func (m *BotMetrics) HandlerFinished() { m.HandlersInFlight.Dec() }
