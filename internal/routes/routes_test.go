package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"owbridge/internal/clock"
	"owbridge/internal/controller"
	"owbridge/internal/repository"
	"owbridge/internal/service"
)

// newTestRouter wires a router whose hardware-backed service reads the
// given sysfs paths. The stand-in service is always available behind
// TEST_MODE=1.
func newTestRouter(listPath, slaveTemplate string) http.Handler {
	clk := clock.NewSystemClock()
	live := service.NewReportService(clk, repository.NewOneWireRepository(listPath, slaveTemplate))
	test := service.NewReportService(clk, repository.NewStaticRepository())
	return NewRouter(controller.NewReportController(live, test))
}

func newBrokenRouter() http.Handler {
	return newTestRouter("/nonexistent/w1_master_slaves", "/nonexistent/%s/w1_slave")
}

func TestDetailsTestMode(t *testing.T) {
	t.Setenv(controller.TestModeVar, "1")

	rec := httptest.NewRecorder()
	newBrokenRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/details.xml", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.True(t, strings.HasPrefix(body, "<a updated='"), "body: %q", body)
	assert.True(t, strings.HasSuffix(body, "</a>\n"), "body: %q", body)
	assert.Contains(t, body, "<owd>\n<Name>DS18B20</Name>\n<ROMId>id1</ROMId>\n<Temperature>0.0</Temperature>\n<TemperatureF>32.0</TemperatureF>\n</owd>\n")
	assert.Contains(t, body, "<ROMId>id2</ROMId>\n<Temperature>100.0</Temperature>\n<TemperatureF>212.0</TemperatureF>")
	assert.Contains(t, body, "<ROMId>id3</ROMId>\n<Temperature>-40.0</Temperature>\n<TemperatureF>-40.0</TemperatureF>")
}

func TestDetailsHardwareFailureIs500(t *testing.T) {
	t.Setenv(controller.TestModeVar, "")

	rec := httptest.NewRecorder()
	newBrokenRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/details.xml", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "Error: "), "body: %q", rec.Body.String())
	assert.NotContains(t, rec.Body.String(), "<owd>")
}

// A failure on the second sensor aborts the whole report: no fragment
// from the first, successfully read, sensor leaks into the response.
func TestDetailsSecondSensorFailureAbortsReport(t *testing.T) {
	t.Setenv(controller.TestModeVar, "")

	dir := t.TempDir()
	listPath := filepath.Join(dir, "w1_master_slaves")
	require.NoError(t, os.WriteFile(listPath, []byte("28-good\n28-bad\n"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "28-good"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "28-good", "w1_slave"),
		[]byte("50 05 4b 46 7f ff 0c 10 1c : crc=1c YES\n50 05 4b 46 7f ff 0c 10 1c t=21500\n"), 0o644))
	// 28-bad has no w1_slave file at all.

	rec := httptest.NewRecorder()
	router := newTestRouter(listPath, filepath.Join(dir, "%s", "w1_slave"))
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/details.xml", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "<owd>")
	assert.NotContains(t, rec.Body.String(), "28-good")
}

func TestUnknownRoutesAndMethodsAre404(t *testing.T) {
	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/"},
		{http.MethodGet, "/details"},
		{http.MethodGet, "/details.xml/extra"},
		{http.MethodGet, "/health"},
		{http.MethodPost, "/details.xml"},
		{http.MethodDelete, "/details.xml"},
	}
	router := newBrokenRouter()
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Empty(t, rec.Body.String())
		})
	}
}
