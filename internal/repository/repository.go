// Package repository provides access to the attached one-wire
// temperature sensors.
package repository

// SensorRepository enumerates the attached sensors and reads them.
// Implementations are stateless; every call opens, reads and releases
// its own resources.
type SensorRepository interface {
	// ListIDs returns the sensor ids in enumeration order.
	ListIDs() ([]string, error)
	// ReadCelsius reads one sensor's current temperature in Celsius.
	ReadCelsius(id string) (float32, error)
}
