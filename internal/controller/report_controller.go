package controller

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"owbridge/internal/service"
)

// TestModeVar selects the static sensor repository when set to "1".
// Any other value, including unset, selects the hardware-backed one.
const TestModeVar = "TEST_MODE"

// ReportController handles HTTP requests for the sensor report.
type ReportController struct {
	live *service.ReportService
	test *service.ReportService
}

// NewReportController creates a controller over the hardware-backed
// report service and its deterministic stand-in.
func NewReportController(live, test *service.ReportService) *ReportController {
	return &ReportController{
		live: live,
		test: test,
	}
}

// HandleDetails serves GET /details.xml. The mode flag is read once
// per request, here at the boundary, and decides which sensor
// repository backs the report.
func (c *ReportController) HandleDetails(w http.ResponseWriter, r *http.Request) {
	svc := c.live
	if os.Getenv(TestModeVar) == "1" {
		svc = c.test
	}

	// The content type is fixed for this route, error responses included.
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")

	body, err := svc.Generate()
	if err != nil {
		log.Printf("report generation failed: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprintf(w, "Error: %v", err)
		return
	}

	log.Printf("%s", body)
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, body)
}
