package repository

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"portfolio/internal/domains/tour/model"
	"slices"
)

//go:embed tours.json
var catalog []byte

// Tour reads the catalog compiled into the binary.
type Tour interface {
	GetAll() []model.Tour
	Get(id string) (model.Tour, bool)
}

type repositoryImpl struct {
	tours []model.Tour
}

func New() (Tour, error) {
	return Load(catalog)
}

// Load parses a catalog document. Tour ids must be unique.
func Load(data []byte) (Tour, error) {
	var tours []model.Tour
	if err := json.Unmarshal(data, &tours); err != nil {
		return nil, fmt.Errorf("decoding tour catalog: %w", err)
	}

	seen := make(map[string]struct{}, len(tours))
	for _, tour := range tours {
		if tour.ID == "" {
			return nil, fmt.Errorf("tour %q has no id", tour.Title)
		}

		if _, ok := seen[tour.ID]; ok {
			return nil, fmt.Errorf("duplicate tour id %q", tour.ID)
		}

		seen[tour.ID] = struct{}{}
	}

	return &repositoryImpl{tours: tours}, nil
}

func (r *repositoryImpl) GetAll() []model.Tour {
	return slices.Clone(r.tours)
}

func (r *repositoryImpl) Get(id string) (model.Tour, bool) {
	idx := slices.IndexFunc(r.tours, func(t model.Tour) bool { return t.ID == id })
	if idx < 0 {
		return model.Tour{}, false
	}

	return r.tours[idx], true
}
