package repository

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"owbridge/internal/models"
)

// OneWireRepository reads DS18B20-class sensors through the files the
// w1 kernel driver exposes under sysfs.
type OneWireRepository struct {
	listPath      string
	slaveTemplate string
}

// NewOneWireRepository creates a repository over the given sysfs paths.
// slaveTemplate must contain one %s placeholder for the sensor id.
func NewOneWireRepository(listPath, slaveTemplate string) *OneWireRepository {
	return &OneWireRepository{
		listPath:      listPath,
		slaveTemplate: slaveTemplate,
	}
}

// ListIDs returns the ids from the bus master's device list, one per
// non-empty line, in file order. No dedup, no sorting.
func (r *OneWireRepository) ListIDs() ([]string, error) {
	file, err := os.Open(r.listPath)
	if err != nil {
		return nil, models.NewAccessError("opening device list "+r.listPath, err)
	}
	defer file.Close()

	var ids []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, models.NewAccessError("reading device list "+r.listPath, err)
	}
	return ids, nil
}

// ReadCelsius reads one sensor's w1_slave file. The driver writes two
// lines: a CRC/status line, which is skipped unvalidated, and a data
// line ending in "t=<milli-celsius>".
func (r *OneWireRepository) ReadCelsius(id string) (float32, error) {
	path := fmt.Sprintf(r.slaveTemplate, id)
	file, err := os.Open(path)
	if err != nil {
		return 0, models.NewAccessError("opening sensor file "+path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		return 0, models.NewParseError("sensor file "+path+" is missing the crc line", scanner.Err())
	}
	if !scanner.Scan() {
		return 0, models.NewParseError("sensor file "+path+" is missing the data line", scanner.Err())
	}
	data := scanner.Text()

	sep := strings.LastIndex(data, "=")
	if sep < 0 {
		return 0, models.NewParseError("sensor file "+path+" data line has no '='", nil)
	}
	milli, err := strconv.Atoi(strings.TrimSpace(data[sep+1:]))
	if err != nil {
		return 0, models.NewParseError("sensor file "+path+" has a malformed temperature token", err)
	}

	return float32(milli) / 1000.0, nil
}
