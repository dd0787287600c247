package nitf

import (
	"fmt"
	"strings"
)

// TreGroup is a set of named TRE field values plus any repeated loops of
// nested groups, keyed by loop name
type TreGroup struct {
	Fields map[string]string     `json:"fields" yaml:"fields"`
	Loops  map[string][]TreGroup `json:"loops" yaml:"loops"`
}

// Tre is a decoded tagged record extension
type Tre struct {
	Name     string `json:"name" yaml:"name"`
	TreGroup `yaml:",inline"`
}

// ErrNoSuchTreEntry is returned when a TRE has no entry with the requested name
type ErrNoSuchTreEntry struct {
	Key string
}

func (e ErrNoSuchTreEntry) Error() string {
	return fmt.Sprintf("No TRE entry named %s", e.Key)
}

// FieldValue returns the raw value of a named field
func (g TreGroup) FieldValue(key string) (string, error) {
	value, ok := g.Fields[key]
	if !ok {
		return "", ErrNoSuchTreEntry{Key: key}
	}
	return value, nil
}

// Groups returns the groups of a named loop, in file order
func (g TreGroup) Groups(key string) ([]TreGroup, error) {
	groups, ok := g.Loops[key]
	if !ok {
		return nil, ErrNoSuchTreEntry{Key: key}
	}
	return groups, nil
}

// FindTre returns the first TRE with the given name, matched without regard
// to trailing blanks
func FindTre(tres []Tre, name string) (Tre, bool) {
	for _, tre := range tres {
		if strings.TrimSpace(tre.Name) == name {
			return tre, true
		}
	}
	return Tre{}, false
}
