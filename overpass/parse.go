package overpass

import (
	"github.com/ashesandaether/worldbuilder/model"
)

// Categorized holds the parsed response split into the feature classes
// the pipeline consumes downstream.
type Categorized struct {
	Buildings []model.Feature
	Roads     []model.Feature
	Landuse   []model.Feature
	Natural   []model.Feature
	Water     []model.Feature
	Amenities []model.Feature

	NodeCount int
	WayCount  int
}

// Parse resolves way node references against the node set and
// categorizes ways (and amenity nodes) by their tags. Ways referencing
// nodes missing from the response keep the nodes that did resolve;
// categorization only needs the tag, not a complete ring.
func Parse(resp *Response) *Categorized {
	nodes := make(map[int64]model.Node)
	for _, el := range resp.Elements {
		if el.Type == "node" {
			nodes[el.ID] = model.Node{Lat: el.Lat, Lon: el.Lon}
		}
	}

	out := &Categorized{
		Buildings: []model.Feature{},
		Roads:     []model.Feature{},
		Landuse:   []model.Feature{},
		Natural:   []model.Feature{},
		Water:     []model.Feature{},
		Amenities: []model.Feature{},
		NodeCount: len(nodes),
	}

	// Amenity POIs arrive as bare tagged nodes, not ways.
	for _, el := range resp.Elements {
		if el.Type != "node" {
			continue
		}
		if _, ok := el.Tags["amenity"]; ok {
			out.Amenities = append(out.Amenities, model.Feature{
				ID:    el.ID,
				Tags:  el.Tags,
				Nodes: []model.Node{{Lat: el.Lat, Lon: el.Lon}},
			})
		}
	}

	for _, el := range resp.Elements {
		if el.Type != "way" {
			continue
		}
		out.WayCount++

		feature := model.Feature{
			ID:    el.ID,
			Tags:  el.Tags,
			Nodes: make([]model.Node, 0, len(el.Nodes)),
		}
		for _, id := range el.Nodes {
			if n, ok := nodes[id]; ok {
				feature.Nodes = append(feature.Nodes, n)
			}
		}

		if _, ok := el.Tags["building"]; ok {
			out.Buildings = append(out.Buildings, feature)
		}
		if _, ok := el.Tags["highway"]; ok {
			out.Roads = append(out.Roads, feature)
		}
		if _, ok := el.Tags["landuse"]; ok {
			out.Landuse = append(out.Landuse, feature)
		}
		if _, ok := el.Tags["natural"]; ok {
			out.Natural = append(out.Natural, feature)
		}
		if _, ok := el.Tags["water"]; ok {
			out.Water = append(out.Water, feature)
		} else if _, ok := el.Tags["waterway"]; ok {
			out.Water = append(out.Water, feature)
		}
		if _, ok := el.Tags["amenity"]; ok {
			out.Amenities = append(out.Amenities, feature)
		}
	}

	return out
}
