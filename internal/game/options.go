package game

import (
	"fmt"

	"glyphglow/internal/config"
	"glyphglow/internal/geometry"
	"glyphglow/internal/scene"
	"glyphglow/internal/shading"

	"github.com/go-gl/mathgl/mgl32"
)

// SceneOptions converts the startup config into scene options. Disabled
// helpers get a size of zero.
func SceneOptions(cfg config.Config) scene.Options {
	o := scene.Options{
		Camera: scene.CameraOptions{
			Position: mgl32.Vec3(cfg.Camera.Position),
			FOV:      cfg.Camera.FOV,
			Near:     cfg.Camera.Near,
			Far:      cfg.Camera.Far,
			Width:    cfg.Window.Width,
			Height:   cfg.Window.Height,
		},
		Cube: scene.CubeOptions{
			Size:    cfg.Cube.Size,
			Color:   shading.HexColor(uint32(cfg.Cube.Color)),
			Falloff: cfg.Cube.Falloff,
		},
		Light: scene.LightOptions{
			Color:     shading.HexColor(uint32(cfg.Light.Color)),
			Intensity: cfg.Light.Intensity,
			Range:     cfg.Light.Range,
		},
	}
	if cfg.Helpers.Axes {
		o.Helpers.AxesSize = cfg.Helpers.AxesSize
	}
	if cfg.Helpers.Grid {
		o.Helpers.GridSize = cfg.Helpers.GridSize
		o.Helpers.GridDivisions = cfg.Helpers.GridDivisions
	}
	return o
}

// GlyphSpecs lists the glyphs to build once the font arrives.
func GlyphSpecs(cfg config.Config) ([]scene.GlyphSpec, error) {
	specs := make([]scene.GlyphSpec, 0, len(cfg.Text.Glyphs))
	for i, g := range cfg.Text.Glyphs {
		mode, err := parseSpecular(g.Specular)
		if err != nil {
			return nil, fmt.Errorf("glyph %d: %w", i, err)
		}
		specs = append(specs, scene.GlyphSpec{
			Text:     g.Text,
			Position: mgl32.Vec3(g.Position),
			Color:    shading.HexColor(uint32(g.Color)),
			Specular: mode,
		})
	}
	return specs, nil
}

func textOptions(cfg config.Config) geometry.TextOptions {
	return geometry.TextOptions{
		Size:          cfg.Text.Size,
		Depth:         cfg.Text.Depth,
		CurveSegments: cfg.Text.CurveSegments,
	}
}

func parseSpecular(s string) (shading.SpecularMode, error) {
	switch s {
	case shading.SpecularLight.String():
		return shading.SpecularLight, nil
	case shading.SpecularObject.String():
		return shading.SpecularObject, nil
	}
	return 0, fmt.Errorf("unknown specular mode %q", s)
}
