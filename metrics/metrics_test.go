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

func TestRecordTransition(t *testing.T) {
	before := testutil.ToFloat64(requestTransitions.WithLabelValues("SEAT_CONFIRMED", "COMPLETED"))
	RecordTransition("SEAT_CONFIRMED", "COMPLETED")
	after := testutil.ToFloat64(requestTransitions.WithLabelValues("SEAT_CONFIRMED", "COMPLETED"))
	assert.Equal(t, before+1, after)
}

func TestRecordMileageIgnoresNonPositive(t *testing.T) {
	before := testutil.ToFloat64(mileageCredited.WithLabelValues("helper"))
	RecordMileage("helper", 0)
	RecordMileage("helper", 20)
	after := testutil.ToFloat64(mileageCredited.WithLabelValues("helper"))
	assert.Equal(t, before+20, after)
}

func TestInstrumentAndHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Instrument())
	router.GET("/ping/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })
	router.GET("/metrics", Handler())

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/ping/:id", "204"))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/ping/42", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/ping/:id", "204"))
	assert.Equal(t, before+1, after)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "companion_http_requests_total"))
}
