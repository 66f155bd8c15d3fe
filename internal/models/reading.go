package models

// Reading is a single temperature sample from one sensor. Readings are
// computed fresh per report and never persisted.
type Reading struct {
	ID      string
	Celsius float32
}

// Fahrenheit converts the reading for display. The value is derived at
// emission time, never stored.
func (r Reading) Fahrenheit() float32 {
	return r.Celsius*9.0/5.0 + 32.0
}
