package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCountersAndHandler(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.IncSubmission(ResultOK)
	m.IncSubmission(ResultOK)
	m.IncSubmission(ResultInvalid)
	m.IncDownload(ResultNotFound)
	m.ObserveRender(time.Now())

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Submissions.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Submissions.WithLabelValues(ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Downloads.WithLabelValues(ResultNotFound)))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/metrics", Handler(reg))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `epass_submissions_total{result="ok"} 2`)
	assert.Contains(t, rec.Body.String(), "epass_render_duration_seconds_count 1")
}
