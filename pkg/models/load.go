package models

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads a mesh from path, picking the loader by file extension
// (.obj, .glb or .gltf, case-insensitive).
func Load(path string) (*Mesh, error) {
	mesh, _, err := LoadWithStats(path)
	return mesh, err
}

// LoadWithStats is Load that also reports what the OBJ parser dropped.
// Stats are zero for glTF input.
func LoadWithStats(path string) (*Mesh, ParseStats, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		return LoadOBJWithStats(path)
	case ".glb", ".gltf":
		mesh, err := LoadGLB(path)
		return mesh, ParseStats{}, err
	default:
		return nil, ParseStats{}, fmt.Errorf("%w: unsupported mesh extension %q", ErrMeshOpen, ext)
	}
}
