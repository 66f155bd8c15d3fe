package repository

import "fmt"

// StaticRepository serves three fixed readings covering the freezing
// point, the boiling point and a negative value. It backs the
// endpoint's test mode and deterministic report tests.
type StaticRepository struct{}

// NewStaticRepository creates a StaticRepository.
func NewStaticRepository() StaticRepository {
	return StaticRepository{}
}

func (StaticRepository) ListIDs() ([]string, error) {
	return []string{"id1", "id2", "id3"}, nil
}

func (StaticRepository) ReadCelsius(id string) (float32, error) {
	switch id {
	case "id1":
		return 0.0, nil
	case "id2":
		return 100.0, nil
	case "id3":
		return -40.0, nil
	}
	// Only ids returned by ListIDs are valid here.
	panic(fmt.Sprintf("static repository queried with unknown id %q", id))
}
