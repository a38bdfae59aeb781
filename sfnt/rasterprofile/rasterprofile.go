// Package rasterprofile loads named (point size, PPI) presets from a TOML
// file, so a caller driving sfnt's outline transform doesn't have to wire
// those two numbers through application config by hand. Grounded on
// boergens-gotypst's use of github.com/BurntSushi/toml to decode
// user-supplied TOML into a typed structure (eval/fileops.go's
// toml.Decode call).
package rasterprofile

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Profile is one named (point size, PPI) preset.
type Profile struct {
	PointSize float64 `toml:"point_size"`
	PPI       float64 `toml:"ppi"`
}

// Set is a collection of named profiles, as decoded from a TOML document
// of the form:
//
//	[screen]
//	point_size = 12
//	ppi = 96
//
//	[print]
//	point_size = 10
//	ppi = 300
type Set struct {
	Profiles map[string]Profile
}

// Load decodes a TOML document of top-level tables, one per profile name,
// into a Set.
func Load(data string) (*Set, error) {
	var raw map[string]Profile
	if _, err := toml.Decode(data, &raw); err != nil {
		return nil, fmt.Errorf("rasterprofile: decode: %w", err)
	}
	return &Set{Profiles: raw}, nil
}

// Get returns the named profile and whether it was present.
func (s *Set) Get(name string) (Profile, bool) {
	p, ok := s.Profiles[name]
	return p, ok
}
