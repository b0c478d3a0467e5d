package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/hidwork/mousegest/internal/gesture"
)

// rulesDoc is the on-disk shape of the rules file: a gestures list whose
// entries may be any of the three legacy configuration shapes.
type rulesDoc struct {
	Gestures []any `yaml:"gestures"`
}

// LoadRules reads the rules file and normalizes every entry into a
// canonical gesture descriptor. Individual entries never fail to
// normalize; only an unreadable or unparsable file is an error.
func LoadRules(path string, opts ...gesture.Option) ([]*gesture.MouseGesture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("reading rules file %s: %w", path, err)
	}

	var doc rulesDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Path: path, Message: err.Error(), Err: err}
	}

	gestures := make([]*gesture.MouseGesture, 0, len(doc.Gestures))
	for _, raw := range doc.Gestures {
		gestures = append(gestures, gesture.New(raw, opts...))
	}
	return gestures, nil
}

// SaveRules writes gestures back in their persistence representation.
// Non-staggering gestures keep the legacy bare-list shape, so files
// predating staggering round-trip without gaining new structure.
func SaveRules(path string, gestures []*gesture.MouseGesture) error {
	doc := rulesDoc{Gestures: make([]any, 0, len(gestures))}
	for _, g := range gestures {
		doc.Gestures = append(doc.Gestures, g.Data())
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encoding rules: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing rules file %s: %w", path, err)
	}
	return nil
}
