package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/securenotes/secure-notes-service/pkg/app"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	return r
}

func TestCorrelation_EchoesIncomingID(t *testing.T) {
	r := newTestEngine(Correlation())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(CorrelationIDHeader, "abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc", w.Header().Get(CorrelationIDHeader))
}

func TestCorrelation_GeneratesUUIDWhenMissing(t *testing.T) {
	r := newTestEngine(Correlation())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	got := w.Header().Get(CorrelationIDHeader)
	_, err := uuid.Parse(got)
	assert.NoError(t, err, "generated correlation id must be a valid uuid: %s", got)
}

func TestCorrelation_InjectsRequestContext(t *testing.T) {
	r := gin.New()
	r.Use(Correlation())

	var fromCtx, fromGin string
	r.GET("/ping", func(c *gin.Context) {
		fromCtx = GetCorrelationID(c.Request.Context())
		fromGin = c.GetString(app.CorrelationIDKey)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(CorrelationIDHeader, "trace-me")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "trace-me", fromCtx)
	assert.Equal(t, "trace-me", fromGin)
}

func TestLatency_HeaderFormat(t *testing.T) {
	r := newTestEngine(Latency())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	got := w.Header().Get(ProcessTimeHeader)
	// 形如 "0.0042s"
	assert.Regexp(t, regexp.MustCompile(`^\d+\.\d{4}s$`), got)
}

func TestAPIAuthToken(t *testing.T) {
	const token = "test-secret"

	tests := []struct {
		name       string
		setHeader  bool
		header     string
		wantStatus int
	}{
		{name: "valid token", setHeader: true, header: token, wantStatus: http.StatusOK},
		{name: "missing header", setHeader: false, wantStatus: http.StatusForbidden},
		{name: "empty header", setHeader: true, header: "", wantStatus: http.StatusForbidden},
		{name: "wrong token", setHeader: true, header: "nope", wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestEngine(Correlation(), APIAuthTokenWithConfig(token))

			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			if tt.setHeader {
				req.Header.Set(APIKeyHeader, tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)

			if tt.wantStatus == http.StatusForbidden {
				var body app.ErrRes
				assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				// 三种失败形态的响应体一致
				assert.Equal(t, "Unauthorized: Invalid API Key", body.Message)
				assert.NotEmpty(t, body.CorrelationID)
			}
		})
	}
}

func TestRecovery_PanicBecomes500(t *testing.T) {
	r := gin.New()
	r.Use(Correlation(), RecoveryWithLogger(zap.NewNop()))
	r.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var body app.ErrRes
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.NotZero(t, body.Code)
}

func TestAccessLog_DoesNotAlterResponse(t *testing.T) {
	r := newTestEngine(Correlation(), AccessLogWithLogger(zap.NewNop()), Latency())

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
