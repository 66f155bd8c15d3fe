package service

import (
	"fmt"
	"strings"

	"owbridge/internal/clock"
	"owbridge/internal/models"
	"owbridge/internal/repository"
)

// sensorFamily is the device family label emitted for every reading.
const sensorFamily = "DS18B20"

// ReportService turns the current sensor state into an XML report.
type ReportService struct {
	clock clock.Clock
	repo  repository.SensorRepository
}

// NewReportService creates a ReportService over the given clock and
// sensor repository.
func NewReportService(clk clock.Clock, repo repository.SensorRepository) *ReportService {
	return &ReportService{
		clock: clk,
		repo:  repo,
	}
}

// Generate stamps the report, then reads every enumerated sensor in
// enumeration order. Reads are sequential; any failure aborts the
// whole report, a partial document is never returned.
func (s *ReportService) Generate() (string, error) {
	updated := s.clock.Now()

	ids, err := s.repo.ListIDs()
	if err != nil {
		return "", fmt.Errorf("enumerating sensors: %w", err)
	}

	readings := make([]models.Reading, 0, len(ids))
	for _, id := range ids {
		celsius, err := s.repo.ReadCelsius(id)
		if err != nil {
			return "", fmt.Errorf("reading sensor %s: %w", id, err)
		}
		readings = append(readings, models.Reading{ID: id, Celsius: celsius})
	}

	return render(updated, readings), nil
}

// render emits the owserver-style XML consumed by the monitoring
// client. Ids come from the kernel interface and are emitted
// unescaped. The root element is present even with zero readings.
func render(updated string, readings []models.Reading) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<a updated='%s'>\n", updated)
	for _, r := range readings {
		b.WriteString("<owd>\n")
		fmt.Fprintf(&b, "<Name>%s</Name>\n", sensorFamily)
		fmt.Fprintf(&b, "<ROMId>%s</ROMId>\n", r.ID)
		fmt.Fprintf(&b, "<Temperature>%.1f</Temperature>\n", r.Celsius)
		fmt.Fprintf(&b, "<TemperatureF>%.1f</TemperatureF>\n", r.Fahrenheit())
		b.WriteString("</owd>\n")
	}
	b.WriteString("</a>\n")
	return b.String()
}
