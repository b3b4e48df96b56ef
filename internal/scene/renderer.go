package scene

import (
	"softrender/internal/framebuf"
	"softrender/internal/linalg"
	"softrender/internal/logging"
	"softrender/internal/mesh"
	"softrender/internal/present"
	"softrender/internal/raster"
	"softrender/internal/transform"
)

// Options configures a Renderer.
type Options struct {
	Width, Height int
	// FOV is the vertical field of view in radians.
	FOV float32
	// Near and Far are negative clip distances along -z.
	Near, Far float32
	Light     Light
	// BaseColor fills faces when no sampler is given or a face has no UVs.
	BaseColor framebuf.Color
	Wireframe bool
	WireColor framebuf.Color
}

// DefaultOptions returns an 800×800 view with a 45° field of view.
func DefaultOptions() Options {
	return Options{
		Width:     800,
		Height:    800,
		FOV:       transform.Deg2Rad(45),
		Near:      -0.1,
		Far:       -100,
		Light:     DefaultLight(),
		BaseColor: framebuf.Gray,
		WireColor: framebuf.White,
	}
}

// MaterialSampler picks a sampler per face material. ForMaterial returns
// nil for materials drawn untextured.
type MaterialSampler interface {
	raster.Sampler
	ForMaterial(id int) raster.Sampler
}

// Renderer owns one color and one depth buffer and reuses them for every
// frame. It is not safe for concurrent use.
type Renderer struct {
	Camera Camera

	opts       Options
	color      *framebuf.ColorBuffer
	depth      *framebuf.DepthBuffer
	viewport   Mat4
	projection Mat4
	frame      int
}

// NewRenderer allocates the frame buffers described by opts.
func NewRenderer(opts Options, cam Camera) *Renderer {
	w, h := float32(opts.Width), float32(opts.Height)
	return &Renderer{
		Camera:     cam,
		opts:       opts,
		color:      framebuf.NewColor(opts.Width, opts.Height),
		depth:      framebuf.NewDepth(opts.Width, opts.Height),
		viewport:   transform.Viewport(0, 0, w, h),
		projection: transform.PerspByFOV(opts.FOV, w/h, opts.Near, opts.Far),
	}
}

// Options returns the renderer configuration.
func (r *Renderer) Options() Options { return r.opts }

// Target returns the color buffer frames are drawn into.
func (r *Renderer) Target() *framebuf.ColorBuffer { return r.color }

// Depth returns the depth buffer of the last frame.
func (r *Renderer) Depth() *framebuf.DepthBuffer { return r.depth }

// Present hands the last frame to p.
func (r *Renderer) Present(p present.Presenter) error {
	return p.Present(r.color.Data(), r.opts.Width, r.opts.Height)
}

// RenderFrame clears the buffers and draws every face of m under the given
// model transform. s may be nil; when it is a MaterialSampler each face
// samples the texture of its material. Vertices behind the camera or outside the
// frustum are not clipped; the rasterizer clamps to the buffer.
func (r *Renderer) RenderFrame(m mesh.Provider, s raster.Sampler, model Mat4) raster.Stats {
	r.color.Clear()
	framebuf.ResetDepth(r.depth)

	mvp := transform.MVP(r.viewport, r.projection, r.Camera.View(), model)
	// Normals follow the rotation part of the model; non-uniform scale is
	// not corrected.
	normals := model.Upper3()

	materials, perMaterial := s.(MaterialSampler)

	var st raster.Stats
	for i := 0; i < m.FaceCount(); i++ {
		f := m.Face(i)
		var tri raster.Triangle2D
		var world [3]Vec3
		pts := [3]*raster.Point{&tri.A, &tri.B, &tri.C}
		fs := s
		if perMaterial {
			fs = materials.ForMaterial(f.Material)
		}
		textured := fs != nil
		for k, c := range f.Corners {
			v := m.Vertex(c.V)
			world[k] = model.MulVec(v.Lift()).Project()
			p := mvp.MulVec(v.Lift()).Project()
			*pts[k] = raster.Point{int(p[0]), int(p[1])}
			tri.Depth[k] = p[2]
			if c.UV >= 0 {
				tri.UV[k] = m.UV(c.UV)
			} else {
				textured = false
			}
		}

		if r.opts.Wireframe {
			raster.TriangleOutline(r.color, tri.A, tri.B, tri.C, r.opts.WireColor)
			continue
		}

		var flat Vec3
		haveFlat := false
		for k, c := range f.Corners {
			var n Vec3
			switch {
			case c.N >= 0:
				n = linalg.Normalize(normals.MulVec(m.Normal(c.N)))
			case haveFlat:
				n = flat
			default:
				flat, haveFlat = faceNormal(world[0], world[1], world[2]), true
				n = flat
			}
			tri.Intensity[k] = r.opts.Light.Intensity(n)
		}

		var frag raster.Fragment
		if textured {
			frag = raster.Textured(&tri, fs)
		} else {
			base := r.opts.BaseColor
			frag = raster.Lit(&tri, raster.VertexColors(base, base, base))
		}
		st.Add(raster.DrawTriangle(r.color, r.depth, &tri, frag))
	}

	logging.Logger().Debug("frame rendered",
		"frame", r.frame,
		"faces", m.FaceCount(),
		"tested", st.Tested,
		"written", st.Written,
		"depth_rejected", st.DepthRejected())
	r.frame++
	return st
}

// Fit returns a model transform that centers p on the origin and scales
// its largest extent to 2, so it fills the canonical [-1,1] cube.
func Fit(p mesh.Provider) Mat4 {
	lo, hi := mesh.Bounds(p)
	center := lo.Add(hi).Scale(0.5)
	span := max(hi[0]-lo[0], hi[1]-lo[1], hi[2]-lo[2])
	if span < 0.001 {
		span = 0.001
	}
	s := 2 / span
	return transform.Scale(s, s, s).Mul(transform.Translate(center.Scale(-1)))
}
