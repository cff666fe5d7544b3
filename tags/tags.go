// Package tags resolves feature dimensions from free-form OSM tag sets.
package tags

import (
	"strconv"
	"strings"

	"github.com/ashesandaether/worldbuilder/geo"
)

// Set is an OSM tag mapping. Absence of a key is meaningful: every
// lookup reports whether the key was present.
type Set map[string]string

func (s Set) GetString(key string) (string, bool) {
	v, ok := s[key]
	return v, ok
}

// GetNumber parses a tag as a float, tolerating the unit suffixes that
// show up in mapped data ("12m", "30'", "4.5 m").
func (s Set) GetNumber(key string) (float64, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}
	v = strings.ReplaceAll(v, "m", "")
	v = strings.ReplaceAll(v, "'", "")
	v = strings.TrimSpace(v)
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

func (s Set) GetInt(key string) (int, bool) {
	v, ok := s[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return 0, false
	}
	return n, true
}

// Resolver estimates building heights and road widths from tags.
//
// Each resolution walks a fixed precedence chain: an explicit dimension
// tag (meters), then a count tag scaled by a per-unit constant, then a
// type table, then the default. A tag that is present but unparseable
// (or nonpositive) falls through to the next tier, so resolution never
// fails.
type Resolver struct {
	FeetPerLevel  float64
	FeetPerLane   float64
	DefaultHeight float64
	DefaultWidth  float64

	BuildingHeights map[string]float64
	RoadWidths      map[string]float64
}

// Height returns the building height in feet.
func (r *Resolver) Height(t Set) float64 {
	if h, ok := t.GetNumber("height"); ok && h > 0 {
		return h * geo.MetersToFeet
	}

	if levels, ok := t.GetInt("building:levels"); ok && levels > 0 {
		return float64(levels) * r.FeetPerLevel
	}

	kind, ok := t.GetString("building")
	if !ok {
		kind = "yes"
	}
	if h, ok := r.BuildingHeights[kind]; ok {
		return h
	}
	return r.DefaultHeight
}

// Width returns the road width in feet.
func (r *Resolver) Width(t Set) float64 {
	if w, ok := t.GetNumber("width"); ok && w > 0 {
		return w * geo.MetersToFeet
	}

	if lanes, ok := t.GetInt("lanes"); ok && lanes > 0 {
		return float64(lanes) * r.FeetPerLane
	}

	kind, ok := t.GetString("highway")
	if !ok {
		kind = "road"
	}
	if w, ok := r.RoadWidths[kind]; ok {
		return w
	}
	return r.DefaultWidth
}
