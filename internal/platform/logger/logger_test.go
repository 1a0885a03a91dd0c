package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() { gin.SetMode(gin.TestMode) }

func TestRequestIDAndLogger(t *testing.T) {
	var buf bytes.Buffer
	l := setup(&buf, "release", "info")

	r := gin.New()
	r.Use(RequestID(), RequestLogger(l))
	r.GET("/boom", func(c *gin.Context) { c.String(http.StatusInternalServerError, "x") })

	t.Run("mints id and logs error level", func(t *testing.T) {
		buf.Reset()
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

		id := rec.Header().Get(HeaderRequestID)
		require.NotEmpty(t, id)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "error", line["level"])
		assert.Equal(t, "/boom", line["path"])
		assert.Equal(t, id, line["request_id"])
		assert.EqualValues(t, 500, line["status"])
	})

	t.Run("keeps inbound id", func(t *testing.T) {
		buf.Reset()
		req := httptest.NewRequest(http.MethodGet, "/boom", nil)
		req.Header.Set(HeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
	})
}

func TestSetupFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	l := setup(&buf, "release", "nonsense")
	l.Debug().Msg("hidden")
	l.Info().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}
