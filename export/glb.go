// Package export writes merged world geometry as binary glTF.
package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/ashesandaether/worldbuilder/mesh"
)

// WriteGLB merges the meshes into a single position-only primitive and
// writes it to path as a .glb container.
func WriteGLB(path, name string, meshes []*mesh.Mesh) error {
	merged := mesh.Concat(meshes)
	if len(merged.Faces) == 0 {
		return fmt.Errorf("Nothing to export")
	}

	positions := make([][3]float32, len(merged.Vertices))
	for i, v := range merged.Vertices {
		positions[i] = [3]float32{float32(v[0]), float32(v[1]), float32(v[2])}
	}

	indices := make([]uint32, 0, len(merged.Faces)*3)
	for _, f := range merged.Faces {
		indices = append(indices, uint32(f[0]), uint32(f[1]), uint32(f[2]))
	}

	doc := gltf.NewDocument()
	primitive := &gltf.Primitive{
		Indices: gltf.Index(modeler.WriteIndices(doc, indices)),
		Attributes: map[string]int{
			gltf.POSITION: modeler.WritePosition(doc, positions),
		},
	}
	doc.Meshes = append(doc.Meshes, &gltf.Mesh{
		Name:       name,
		Primitives: []*gltf.Primitive{primitive},
	})
	doc.Nodes = append(doc.Nodes, &gltf.Node{
		Name: name,
		Mesh: gltf.Index(len(doc.Meshes) - 1),
	})
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, len(doc.Nodes)-1)

	err := os.MkdirAll(filepath.Dir(path), 0755)
	if err != nil {
		return err
	}

	return gltf.SaveBinary(doc, path)
}
