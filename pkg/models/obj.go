package models

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/taigrr/rasterlab/pkg/math3d"
)

// maxOBJLine bounds a single OBJ record. Longer lines fail the read with
// bufio.ErrTooLong wrapped in ErrMeshOpen.
const maxOBJLine = 64 << 20

// ParseStats counts the records the OBJ parser dropped. Dropped records are
// not errors; they are reported for logging only.
type ParseStats struct {
	Lines         int // Lines read, including blank ones
	SkippedVerts  int // "v" lines without three finite floats
	DroppedTokens int // face tokens with a missing, non-numeric or non-positive index
	ShortFaces    int // "f" lines left with fewer than 3 indices
}

// LoadOBJ loads a Wavefront OBJ file. Failure to open or read the file is
// returned wrapping ErrMeshOpen; malformed lines inside the file are skipped.
func LoadOBJ(path string) (*Mesh, error) {
	mesh, _, err := LoadOBJWithStats(path)
	return mesh, err
}

// LoadOBJWithStats is LoadOBJ that also reports what the parser dropped.
func LoadOBJWithStats(path string) (*Mesh, ParseStats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, ParseStats{}, fmt.Errorf("%w: %w", ErrMeshOpen, err)
	}
	defer f.Close()

	mesh, stats, err := ParseOBJWithStats(f)
	if err != nil {
		return nil, stats, err
	}
	mesh.Name = filepath.Base(path)
	return mesh, stats, nil
}

// ParseOBJ reads OBJ records from r.
func ParseOBJ(r io.Reader) (*Mesh, error) {
	mesh, _, err := ParseOBJWithStats(r)
	return mesh, err
}

// ParseOBJWithStats reads OBJ records from r and reports what was dropped.
//
// Only "v" and "f" records are used. A "v" line needs exactly three finite
// floats; "nan" and "inf" are skipped like any other malformed value.
// Each face token may be idx, idx/t, idx//n or idx/t/n; only idx is kept and
// converted from 1-based to 0-based. Every other record kind is ignored.
func ParseOBJWithStats(r io.Reader) (*Mesh, ParseStats, error) {
	mesh := NewMesh("")
	var stats ParseStats

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOBJLine)

	for scanner.Scan() {
		stats.Lines++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			v, ok := parseVertex(fields[1:])
			if !ok {
				stats.SkippedVerts++
				continue
			}
			mesh.Vertices = append(mesh.Vertices, v)

		case "f":
			face := Face{V: make([]int, 0, len(fields)-1)}
			for _, tok := range fields[1:] {
				idx, ok := ParseFaceIndex(tok)
				if !ok {
					stats.DroppedTokens++
					continue
				}
				face.V = append(face.V, idx)
			}
			if len(face.V) < 3 {
				stats.ShortFaces++
				continue
			}
			mesh.Faces = append(mesh.Faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, stats, fmt.Errorf("%w: read obj: %w", ErrMeshOpen, err)
	}

	mesh.CalculateBounds()
	return mesh, stats, nil
}

func parseVertex(args []string) (math3d.Vec3, bool) {
	if len(args) != 3 {
		return math3d.Vec3{}, false
	}
	var v math3d.Vec3
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return math3d.Vec3{}, false
		}
		// Set cannot fail for i < 3.
		_ = v.Set(i, f)
	}
	return v, true
}

// ParseFaceIndex returns the 0-based vertex index of an OBJ face token
// ("12", "12/3", "12//7" or "12/3/7" all give 11). ok is false when the
// leading index is empty, non-numeric or not positive.
func ParseFaceIndex(tok string) (int, bool) {
	vStr, _, _ := strings.Cut(tok, "/")
	if vStr == "" {
		return 0, false
	}
	idx, err := strconv.Atoi(vStr)
	if err != nil || idx <= 0 {
		return 0, false
	}
	return idx - 1, true
}
