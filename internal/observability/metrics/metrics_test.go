package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_UsesRouteTemplate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/api/users/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	before := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/users/:id", "200"))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/users/42", nil))
	after := testutil.ToFloat64(httpRequestsTotal.WithLabelValues("GET", "/api/users/:id", "200"))

	assert.Equal(t, before+1, after)
}

func TestHandler_ExposesCounters(t *testing.T) {
	ObserveSingletonDefault("dashboard_kpi")
	ObserveMessageAppended()

	w := httptest.NewRecorder()
	Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := w.Body.String()
	assert.True(t, strings.Contains(body, `classapp_singleton_defaults_created_total{record="dashboard_kpi"}`))
	assert.True(t, strings.Contains(body, "classapp_messages_appended_total"))
}
