// Package model holds the feature shapes exchanged between the
// acquisition stage and the mesh builders.
package model

import (
	"encoding/json"
	"io/ioutil"

	"github.com/ashesandaether/worldbuilder/geo"
	"github.com/ashesandaether/worldbuilder/tags"
)

type Node struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Feature is one vector feature: a building footprint ring or a road
// centerline, with its tag set. Features are immutable inputs to the
// builders.
type Feature struct {
	ID    int64    `json:"id,omitempty"`
	Tags  tags.Set `json:"tags"`
	Nodes []Node   `json:"nodes"`
}

func (f *Feature) Points() []geo.Point {
	points := make([]geo.Point, len(f.Nodes))
	for i, n := range f.Nodes {
		points[i] = geo.Point{Lat: n.Lat, Lon: n.Lon}
	}
	return points
}

func LoadFeatures(path string) ([]Feature, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}

	features := []Feature{}
	err = json.Unmarshal(data, &features)
	if err != nil {
		return nil, err
	}
	return features, nil
}

func SaveFeatures(path string, features []Feature) error {
	data, err := json.MarshalIndent(features, "", "  ")
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, data, 0644)
}
