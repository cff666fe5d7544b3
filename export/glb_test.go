package export

import (
	"io/ioutil"
	"os"
	"path"
	"testing"

	"github.com/cheekybits/is"
	"github.com/qmuntal/gltf"
	"github.com/ungerik/go3d/float64/vec3"

	"github.com/ashesandaether/worldbuilder/mesh"
)

func triangle(offset float64) *mesh.Mesh {
	return &mesh.Mesh{
		Vertices: []vec3.T{
			{offset, 0, 0},
			{offset + 1, 0, 0},
			{offset, 1, 0},
		},
		Faces: []mesh.Tri{{0, 1, 2}},
	}
}

func TestWriteGLB(t *testing.T) {
	is := is.New(t)

	folder, err := ioutil.TempDir("", "export")
	is.NoErr(err)
	defer os.RemoveAll(folder)

	out := path.Join(folder, "assets", "test.glb")
	err = WriteGLB(out, "test", []*mesh.Mesh{triangle(0), triangle(5)})
	is.NoErr(err)

	doc, err := gltf.Open(out)
	is.NoErr(err)
	is.Equal(len(doc.Meshes), 1)
	is.Equal(len(doc.Meshes[0].Primitives), 1)

	// Two triangles, six vertices, no welding.
	prim := doc.Meshes[0].Primitives[0]
	pos := doc.Accessors[prim.Attributes[gltf.POSITION]]
	is.Equal(int(pos.Count), 6)
	idx := doc.Accessors[*prim.Indices]
	is.Equal(int(idx.Count), 6)
}

func TestWriteGLBEmpty(t *testing.T) {
	is := is.New(t)

	err := WriteGLB("/tmp/never-written.glb", "empty", nil)
	is.Err(err)
}
