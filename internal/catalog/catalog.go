// Package catalog loads the static technology dataset. The default dataset
// is embedded in the binary; a JSON file with the same shape can replace it.
package catalog

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/rpggio/resiliency/internal/domain/technology"
)

//go:embed data/technologies.v1.json
var embeddedTechnologiesJSON []byte

// MaxImpact is the top of the resiliency impact scale.
const MaxImpact = 15

// ErrInvalidRecord indicates a dataset entry that cannot be loaded.
var ErrInvalidRecord = errors.New("invalid catalog record")

// Embedded decodes the bundled dataset.
func Embedded() ([]technology.Record, error) {
	return Decode(embeddedTechnologiesJSON)
}

// Load reads the dataset at path, or the embedded dataset when path is empty.
func Load(path string) ([]technology.Record, error) {
	if strings.TrimSpace(path) == "" {
		return Embedded()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	records, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("catalog %s: %w", path, err)
	}
	return records, nil
}

// Open loads a dataset and builds the read-only record store over it.
func Open(path string) (*technology.Store, error) {
	records, err := Load(path)
	if err != nil {
		return nil, err
	}
	return technology.NewStore(records)
}

// Decode parses and validates a JSON array of records.
func Decode(data []byte) ([]technology.Record, error) {
	var records []technology.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	for i := range records {
		if err := validate(&records[i]); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	return records, nil
}

func validate(rec *technology.Record) error {
	rec.ID = strings.TrimSpace(rec.ID)
	switch {
	case rec.ID == "":
		return fmt.Errorf("%w: missing id", ErrInvalidRecord)
	case strings.TrimSpace(rec.Technology) == "":
		return fmt.Errorf("%w: %s: missing technology", ErrInvalidRecord, rec.ID)
	case strings.TrimSpace(rec.Installation) == "":
		return fmt.Errorf("%w: %s: missing installation", ErrInvalidRecord, rec.ID)
	case math.IsNaN(rec.Cost) || rec.Cost < 0:
		return fmt.Errorf("%w: %s: negative cost", ErrInvalidRecord, rec.ID)
	case rec.ResiliencyImpact < 0 || rec.ResiliencyImpact > MaxImpact:
		return fmt.Errorf("%w: %s: resiliency impact %v outside 0-%d", ErrInvalidRecord, rec.ID, rec.ResiliencyImpact, MaxImpact)
	}
	if s := rec.ExistingResiliencyScore; s != nil && (*s < 0 || *s > 100) {
		return fmt.Errorf("%w: %s: existing score %v outside 0-100", ErrInvalidRecord, rec.ID, *s)
	}
	if rec.TechNeeds == nil {
		rec.TechNeeds = []string{}
	}
	return nil
}
