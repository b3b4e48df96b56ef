package texture

import (
	"softrender/internal/framebuf"
	"softrender/internal/linalg"
	"softrender/internal/raster"
)

// MaterialSet holds one texture per mesh material, falling back to Default
// for materials without their own image.
type MaterialSet struct {
	textures []*Texture
	Default  *Texture
}

// LoadMaterials resolves every material name through idx and loads the hits
// through c. Names with no indexed image use fallback, which may be nil.
func LoadMaterials(c *Cache, idx *Index, names []string, fallback *Texture) (*MaterialSet, error) {
	set := &MaterialSet{textures: make([]*Texture, len(names)), Default: fallback}
	for i, name := range names {
		path, ok := idx.ResolvePath(name)
		if !ok {
			continue
		}
		tex, err := c.Get(path)
		if err != nil {
			return nil, err
		}
		set.textures[i] = tex
	}
	return set, nil
}

// Resolved counts materials that found their own texture.
func (s *MaterialSet) Resolved() int {
	n := 0
	for _, t := range s.textures {
		if t != nil {
			n++
		}
	}
	return n
}

// ForMaterial returns the sampler for material id, or nil when neither the
// material nor the set has a texture.
func (s *MaterialSet) ForMaterial(id int) raster.Sampler {
	if id >= 0 && id < len(s.textures) && s.textures[id] != nil {
		return s.textures[id]
	}
	if s.Default != nil {
		return s.Default
	}
	return nil
}

// Sample implements raster.Sampler with the default texture.
func (s *MaterialSet) Sample(uv linalg.Vec2[float32]) framebuf.Color {
	if s.Default == nil {
		return framebuf.Black
	}
	return s.Default.Sample(uv)
}
