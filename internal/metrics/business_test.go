package metrics

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertBizMetricLine checks that the Prometheus output contains a business metric
// matching the given name, partial label pattern, and value. Uses regex to handle
// extra OTel scope labels injected by the Prometheus exporter.
func assertBizMetricLine(t *testing.T, output, name, labels, value string) {
	t.Helper()
	pattern := name + `\{[^}]*` + labels + `[^}]*\} ` + value
	assert.Regexp(t, pattern, output)
}

func scrape(t *testing.T, provider *Provider) string {
	t.Helper()
	w := httptest.NewRecorder()
	provider.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	return w.Body.String()
}

func TestNewBusinessMetrics(t *testing.T) {
	t.Run("Success_CreateBusinessMetrics", func(t *testing.T) {
		provider, err := NewProvider("toyrsa")
		require.NoError(t, err)

		businessMetrics, err := NewBusinessMetrics(provider.MeterProvider(), "toyrsa")

		require.NoError(t, err)
		assert.NotNil(t, businessMetrics)
	})
}

func TestNewNoOpBusinessMetrics(t *testing.T) {
	noOpMetrics := NewNoOpBusinessMetrics()
	assert.IsType(t, &NoOpBusinessMetrics{}, noOpMetrics)

	t.Run("NoOp_RecordOperationDoesNotPanic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			noOpMetrics.RecordOperation(context.Background(), "rsa", "key_generate", "success")
		})
	})

	t.Run("NoOp_RecordDurationDoesNotPanic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			noOpMetrics.RecordDuration(context.Background(), "rsa", "encrypt", time.Millisecond, "error")
		})
	})
}

func TestBusinessMetrics_Integration(t *testing.T) {
	provider, err := NewProvider("integration_test")
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, provider.Shutdown(context.Background()))
	}()

	bm, err := NewBusinessMetrics(provider.MeterProvider(), "integration_test")
	require.NoError(t, err)

	ctx := context.Background()

	bm.RecordOperation(ctx, "rsa", "key_generate", "success")
	bm.RecordOperation(ctx, "rsa", "key_generate", "success")
	bm.RecordOperation(ctx, "rsa", "key_generate", "error")
	bm.RecordOperation(ctx, "rsa", "encrypt", "success")
	bm.RecordOperation(ctx, "rsa", "decrypt", "success")

	bm.RecordDuration(ctx, "rsa", "key_generate", 50*time.Millisecond, "success")
	bm.RecordDuration(ctx, "rsa", "key_generate", 2*time.Second, "success")
	bm.RecordDuration(ctx, "rsa", "key_generate", 100*time.Millisecond, "error")
	bm.RecordDuration(ctx, "rsa", "encrypt", 200*time.Microsecond, "success")

	output := scrape(t, provider)

	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="rsa".*operation="key_generate".*status="success"`,
		`2`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="rsa".*operation="key_generate".*status="error"`,
		`1`,
	)
	assertBizMetricLine(
		t,
		output,
		`integration_test_operations_total`,
		`domain="rsa".*operation="decrypt".*status="success"`,
		`1`,
	)

	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_count`,
		`domain="rsa".*operation="key_generate".*status="success"`,
		`2`,
	)
	// 200µs lands in the 0.0005 bucket
	assertBizMetricLine(
		t,
		output,
		`integration_test_operation_duration_seconds_bucket`,
		`domain="rsa".*operation="encrypt".*status="success".*le="0.0005"`,
		`1`,
	)
}
