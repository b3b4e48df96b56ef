package main

import (
	"softrender/internal/config"
	"softrender/internal/framebuf"
	"softrender/internal/logging"
	"softrender/internal/mesh"
	"softrender/internal/raster"
	"softrender/internal/scene"
	"softrender/internal/texture"
	"softrender/internal/transform"
)

// buildAnimator loads the mesh and texture named by cfg and wires a
// renderer around them.
func buildAnimator(cfg config.Config) (*scene.Animator, error) {
	model, err := mesh.LoadOBJ(cfg.Mesh, mesh.Options{Charset: cfg.Charset})
	if err != nil {
		return nil, err
	}
	log := logging.Logger()
	log.Info("mesh loaded", "path", cfg.Mesh, "vertices", model.VertexCount(), "faces", model.FaceCount())

	sampler, err := loadSampler(cfg, model)
	if err != nil {
		return nil, err
	}

	opts := scene.DefaultOptions()
	opts.Width, opts.Height = cfg.Width, cfg.Height
	opts.FOV = transform.Deg2Rad(cfg.FOV)
	opts.Near, opts.Far = cfg.Near, cfg.Far
	opts.Light.Ambient = cfg.Ambient
	opts.Wireframe = cfg.Wireframe
	opts.BaseColor = framebuf.Gray

	return &scene.Animator{
		Renderer: scene.NewRenderer(opts, scene.DefaultCamera()),
		Mesh:     model,
		Sampler:  sampler,
		Base:     scene.Fit(model),
		Axis:     scene.Vec3{0, 1, 0},
		Step:     transform.Deg2Rad(cfg.Step),
	}, nil
}

// loadSampler returns the texture for cfg.Texture, or a per-material set
// when cfg.TextureDir is given. It returns nil for untextured rendering.
func loadSampler(cfg config.Config, model *mesh.Model) (raster.Sampler, error) {
	filter, err := texture.ParseFilter(cfg.Filter)
	if err != nil {
		return nil, err
	}
	cache := texture.NewCache(filter)
	log := logging.Logger()

	var tex *texture.Texture
	if cfg.Texture != "" {
		tex, err = cache.Get(cfg.Texture)
		if err != nil {
			return nil, err
		}
		b := tex.Image().Bounds()
		log.Info("texture loaded", "path", cfg.Texture, "width", b.Dx(), "height", b.Dy())
	}

	if cfg.TextureDir != "" {
		idx, err := texture.BuildIndex(cfg.TextureDir)
		if err != nil {
			return nil, err
		}
		set, err := texture.LoadMaterials(cache, idx, model.Materials, tex)
		if err != nil {
			return nil, err
		}
		log.Info("material textures", "dir", cfg.TextureDir, "indexed", idx.Len(),
			"materials", len(model.Materials), "resolved", set.Resolved())
		return set, nil
	}

	if tex == nil {
		return nil, nil
	}
	return tex, nil
}
