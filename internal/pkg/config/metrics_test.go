package config

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigMetrics_Registration(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := NewConfigMetrics(reg, "test_component")

	metrics.RecordLoadTimestamp()
	metrics.Observe("max_concurrent", true)
	metrics.SetFallbackActive(true)

	families, err := reg.Gather()
	require.NoError(t, err)

	types := make(map[string]dto.MetricType)
	for _, f := range families {
		types[f.GetName()] = f.GetType()
	}
	assert.Equal(t, map[string]dto.MetricType{
		"test_component_config_load_timestamp":          dto.MetricType_GAUGE,
		"test_component_config_validation_errors_total": dto.MetricType_COUNTER,
		"test_component_config_fallbacks_total":         dto.MetricType_COUNTER,
		"test_component_config_fallback_active":         dto.MetricType_GAUGE,
	}, types)
	assert.Equal(t, "test_component", metrics.componentName)
}

func TestConfigMetrics_Observe(t *testing.T) {
	metrics := NewConfigMetrics(prometheus.NewRegistry(), "observe")

	metrics.Observe("poll_timeout", false)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("poll_timeout")))

	metrics.Observe("poll_timeout", true)
	metrics.Observe("poll_timeout", true)
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.FallbacksTotal.WithLabelValues("poll_timeout")))
	assert.Equal(t, float64(2), testutil.ToFloat64(metrics.ValidationErrorsTotal.WithLabelValues("poll_timeout")))
}

func TestConfigMetrics_SetFallbackActive(t *testing.T) {
	metrics := NewConfigMetrics(prometheus.NewRegistry(), "toggle")

	metrics.SetFallbackActive(true)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.FallbackActive))

	metrics.SetFallbackActive(false)
	assert.Equal(t, float64(0), testutil.ToFloat64(metrics.FallbackActive))
}

func TestConfigMetrics_DuplicateRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewConfigMetrics(reg, "dup")

	assert.Panics(t, func() { NewConfigMetrics(reg, "dup") })
}
