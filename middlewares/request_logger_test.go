package middlewares

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Yapcheekian/shortcode/logger"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		desc     string
		status   int
		expLevel string
	}{
		{desc: "redirect", status: http.StatusFound, expLevel: "info"},
		{desc: "not found", status: http.StatusNotFound, expLevel: "info"},
		{desc: "server error", status: http.StatusInternalServerError, expLevel: "error"},
	}

	for _, tc := range tests {
		t.Run(tc.desc, func(t *testing.T) {
			var buf bytes.Buffer
			logger.InitWriter(&buf, "info")

			r := gin.New()
			r.Use(RequestLogger())
			r.GET("/:shortUrl", func(c *gin.Context) {
				c.Status(tc.status)
			})

			req := httptest.NewRequest(http.MethodGet, "/abc123", nil)
			r.ServeHTTP(httptest.NewRecorder(), req)

			var entry map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
			assert.Equal(t, tc.expLevel, entry["level"])
			assert.Equal(t, "GET", entry["method"])
			assert.Equal(t, "/abc123", entry["path"])
			assert.Equal(t, float64(tc.status), entry["status"])
			assert.Equal(t, "request processed", entry["message"])
		})
	}
}
