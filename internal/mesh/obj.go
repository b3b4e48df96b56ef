package mesh

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

var (
	// ErrIndexRange reports a face index outside the arrays defined so far.
	ErrIndexRange = errors.New("index out of range")
	// ErrCharset reports an unknown Options.Charset.
	ErrCharset = errors.New("unsupported charset")
)

// Options controls OBJ parsing.
type Options struct {
	// Charset decodes legacy 8-bit exports (material names are the only
	// text the renderer keeps). Empty means UTF-8.
	Charset string
}

var charsets = map[string]*charmap.Charmap{
	"windows-1252": charmap.Windows1252,
	"windows-1251": charmap.Windows1251,
	"iso-8859-1":   charmap.ISO8859_1,
	"iso-8859-15":  charmap.ISO8859_15,
	"koi8-r":       charmap.KOI8R,
	"cp437":        charmap.CodePage437,
}

func decoder(name string) (*encoding.Decoder, error) {
	if name == "" || strings.EqualFold(name, "utf-8") {
		return nil, nil
	}
	cm, ok := charsets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCharset, name)
	}
	return cm.NewDecoder(), nil
}

// LoadOBJ reads a Wavefront OBJ file.
func LoadOBJ(path string, opts Options) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mesh: open %s: %w", path, err)
	}
	defer f.Close()
	return ParseOBJ(f, path, opts)
}

// ParseOBJ parses OBJ text from r. name is used in error messages.
// Supported statements are v, vt, vn, f and usemtl; polygons with more
// than three corners are fan-triangulated.
func ParseOBJ(r io.Reader, name string, opts Options) (*Model, error) {
	dec, err := decoder(opts.Charset)
	if err != nil {
		return nil, fmt.Errorf("mesh: parse %s: %w", name, err)
	}
	if dec != nil {
		r = dec.Reader(r)
	}

	m := &Model{}
	material := -1
	materialIDs := map[string]int{}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: parse %s:%d: vertex: %w", name, line, err)
			}
			m.Vertices = append(m.Vertices, v)
		case "vn":
			v, err := parseVec3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("mesh: parse %s:%d: normal: %w", name, line, err)
			}
			m.Normals = append(m.Normals, v)
		case "vt":
			v, err := parseFloats(fields[1:], 2)
			if err != nil {
				return nil, fmt.Errorf("mesh: parse %s:%d: uv: %w", name, line, err)
			}
			m.UVs = append(m.UVs, Vec2{v[0], v[1]})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("mesh: parse %s:%d: face needs 3 corners, got %d", name, line, len(fields)-1)
			}
			corners := make([]Corner, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				c, err := m.parseCorner(tok)
				if err != nil {
					return nil, fmt.Errorf("mesh: parse %s:%d: face %q: %w", name, line, tok, err)
				}
				corners = append(corners, c)
			}
			for i := 1; i+1 < len(corners); i++ {
				m.Faces = append(m.Faces, Face{
					Corners:  [3]Corner{corners[0], corners[i], corners[i+1]},
					Material: material,
				})
			}
		case "usemtl":
			mtl := strings.Join(fields[1:], " ")
			id, ok := materialIDs[mtl]
			if !ok {
				id = len(m.Materials)
				materialIDs[mtl] = id
				m.Materials = append(m.Materials, mtl)
			}
			material = id
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("mesh: read %s: %w", name, err)
	}
	return m, nil
}

func parseFloats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, fmt.Errorf("want %d components, got %d", n, len(fields))
	}
	out := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, err
		}
		out[i] = float32(f)
	}
	return out, nil
}

func parseVec3(fields []string) (Vec3, error) {
	f, err := parseFloats(fields, 3)
	if err != nil {
		return Vec3{}, err
	}
	return Vec3{f[0], f[1], f[2]}, nil
}

// parseCorner decodes v, v/vt, v//vn or v/vt/vn. OBJ indices are 1-based;
// negative indices count back from the last element defined so far.
func (m *Model) parseCorner(tok string) (Corner, error) {
	parts := strings.Split(tok, "/")
	if len(parts) > 3 {
		return Corner{}, fmt.Errorf("too many components")
	}
	c := Corner{V: -1, UV: -1, N: -1}

	var err error
	if c.V, err = resolveIndex(parts[0], len(m.Vertices)); err != nil {
		return Corner{}, fmt.Errorf("vertex: %w", err)
	}
	if c.V < 0 {
		return Corner{}, fmt.Errorf("vertex: missing index")
	}
	if len(parts) > 1 {
		if c.UV, err = resolveIndex(parts[1], len(m.UVs)); err != nil {
			return Corner{}, fmt.Errorf("uv: %w", err)
		}
	}
	if len(parts) > 2 {
		if c.N, err = resolveIndex(parts[2], len(m.Normals)); err != nil {
			return Corner{}, fmt.Errorf("normal: %w", err)
		}
	}
	return c, nil
}

// resolveIndex converts a 1-based or negative OBJ index to 0-based.
// An empty string yields -1.
func resolveIndex(s string, count int) (int, error) {
	if s == "" {
		return -1, nil
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	switch {
	case i > 0:
		i--
	case i < 0:
		i += count
	default:
		return 0, fmt.Errorf("%w: 0", ErrIndexRange)
	}
	if i < 0 || i >= count {
		return 0, fmt.Errorf("%w: %s of %d", ErrIndexRange, s, count)
	}
	return i, nil
}
