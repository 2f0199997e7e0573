package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-bundle-composer/internal/logger"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

// newTestLogger creates a logger that writes to the provided buffer.
func newTestLogger(buf *bytes.Buffer) zerolog.Logger {
	return zerolog.New(buf).With().Timestamp().Logger()
}

// makeRequest creates a test request with a logger in context.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	return injectLogger(httptest.NewRequest(method, path, nil), newTestLogger(buf))
}

// ---- Table test ----

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		handlerStatus    int
		handlerResponse  string
		etag             string
		checkLogContains []string
	}{
		{
			name:            "GET 200 with etag",
			method:          http.MethodGet,
			path:            "/api/config/production",
			handlerStatus:   http.StatusOK,
			handlerResponse: "{}",
			etag:            `"abc"`,
			checkLogContains: []string{
				`"level":"info"`,
				`"method":"GET"`,
				`"uri":"/api/config/production"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
				`"etag":"\"abc\""`,
			},
		},
		{
			name:          "304 not modified",
			method:        http.MethodGet,
			path:          "/api/config/development",
			handlerStatus: http.StatusNotModified,
			etag:          `"abc"`,
			checkLogContains: []string{
				`"level":"info"`,
				`"status":304`,
				`"size":0`,
			},
		},
		{
			name:            "400 is a warning",
			method:          http.MethodGet,
			path:            "/api/config/staging",
			handlerStatus:   http.StatusBadRequest,
			handlerResponse: "unknown environment profile",
			checkLogContains: []string{
				`"level":"warn"`,
				`"status":400`,
			},
		},
		{
			name:            "503 is an error",
			method:          http.MethodGet,
			path:            "/api/config/production",
			handlerStatus:   http.StatusServiceUnavailable,
			handlerResponse: "base configuration is unavailable",
			checkLogContains: []string{
				`"level":"error"`,
				`"status":503`,
			},
		},
		{
			name:            "query parameters preserved in uri",
			method:          http.MethodGet,
			path:            "/api/version/?verbose=1",
			handlerStatus:   http.StatusOK,
			handlerResponse: "1.0.0",
			checkLogContains: []string{
				`"uri":"/api/version/?verbose=1"`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if tt.etag != "" {
					w.Header().Set("ETag", tt.etag)
				}
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			rr := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rr, makeRequest(tt.method, tt.path, &logBuf))

			assert.Equal(t, tt.handlerStatus, rr.Code)

			logOutput := logBuf.String()
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected, "log should contain: %s", expected)
			}
			if tt.etag == "" {
				assert.NotContains(t, logOutput, `"etag"`)
			}
		})
	}
}

func TestWithLogging_ResponseSize(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", 1024)))
	})

	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Contains(t, logBuf.String(), `"size":1024`)
	assert.Contains(t, logBuf.String(), `"status":200`, "implicit WriteHeader is logged as 200")
}

func TestWithLogging_NothingWrittenLogs200(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/test", &logBuf))

	assert.Contains(t, logBuf.String(), `"status":200`)
}

func TestWithLogging_DurationAccuracy(t *testing.T) {
	delay := 50 * time.Millisecond
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(delay)
		w.WriteHeader(http.StatusOK)
	})

	start := time.Now()
	withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/slow", &logBuf))

	assert.GreaterOrEqual(t, time.Since(start), delay)
	assert.Contains(t, logBuf.String(), `"duration":`)
}

func TestWithLogging_PanicNotSuppressed(t *testing.T) {
	var logBuf bytes.Buffer

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("test panic")
	})

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), makeRequest(http.MethodGet, "/panic", &logBuf))
	}, "withLogging should not recover panics")
}

func TestWithLogging_NopLogger(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/nop", nil)
	req = req.WithContext(logger.Nop().Logger.WithContext(req.Context()))

	rr := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		withLogging(next).ServeHTTP(rr, req)
	})
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, levelForStatus(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, levelForStatus(http.StatusNotModified))
	assert.Equal(t, zerolog.WarnLevel, levelForStatus(http.StatusNotFound))
	assert.Equal(t, zerolog.ErrorLevel, levelForStatus(http.StatusBadGateway))
}
