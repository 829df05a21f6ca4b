package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRequestRecorder is a mock implementation of the RequestRecorder interface
type MockRequestRecorder struct {
	mock.Mock
}

func (m *MockRequestRecorder) RecordRequest(route, method string, status int, elapsed time.Duration) {
	m.Called(route, method, status, elapsed)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		incoming string
	}{
		{name: "generated when missing"},
		{name: "incoming id kept", incoming: "abc-123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(RequestID())

			var seen string
			r.GET("/ping", func(c *gin.Context) {
				seen = GetRequestID(c)
				c.Status(http.StatusNoContent)
			})

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.incoming != "" {
				req.Header.Set(HeaderRequestID, tt.incoming)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			header := w.Header().Get(HeaderRequestID)
			require.NotEmpty(t, header)
			assert.Equal(t, header, seen)
			if tt.incoming != "" {
				assert.Equal(t, tt.incoming, header)
			} else {
				assert.Len(t, header, 36)
			}
		})
	}
}

func TestLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	original := log.Logger
	log.Logger = zerolog.New(&buf)
	t.Cleanup(func() { log.Logger = original })

	r := gin.New()
	r.Use(RequestID(), Logger())
	r.GET("/api/sports", func(c *gin.Context) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	})

	req := httptest.NewRequest(http.MethodGet, "/api/sports?x=1", nil)
	req.Header.Set(HeaderRequestID, "req-1")
	r.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "/api/sports?x=1", entry["path"])
	assert.Equal(t, float64(http.StatusInternalServerError), entry["status"])
}

func TestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := new(MockRequestRecorder)
	rec.On("RecordRequest", "/api/stadium/random", http.MethodGet, http.StatusNotFound, mock.AnythingOfType("time.Duration")).Return()

	r := gin.New()
	r.Use(Metrics(rec))
	r.GET("/api/stadium/random", func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "No stadiums available"})
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/stadium/random?league=MLB", nil))

	rec.AssertExpectations(t)
}
