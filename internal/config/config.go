package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// DefaultFontURL is the typeface description the scene text is extruded from.
const DefaultFontURL = "https://threejs.org/examples/fonts/helvetiker_regular.typeface.json"

// Color is a packed 0xRRGGBB value. In YAML it may be written as an integer,
// "0xRRGGBB" or "#RRGGBB".
type Color uint32

func (c *Color) UnmarshalYAML(b []byte) error {
	s := strings.Trim(strings.TrimSpace(string(b)), `"'`)
	if strings.HasPrefix(s, "#") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 32)
	if err != nil {
		return fmt.Errorf("color %q: %w", s, err)
	}
	if v > 0xFFFFFF {
		return fmt.Errorf("color %q out of range", s)
	}
	*c = Color(v)
	return nil
}

// Vec3 is a position written as a three element YAML sequence.
type Vec3 [3]float32

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

type CameraConfig struct {
	FOV      float32 `yaml:"fov"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
	Position Vec3    `yaml:"position"`
}

type CubeConfig struct {
	Size    float32 `yaml:"size"`
	Color   Color   `yaml:"color"`
	Falloff float32 `yaml:"falloff"`
}

type LightConfig struct {
	Color     Color   `yaml:"color"`
	Intensity float32 `yaml:"intensity"`
	Range     float32 `yaml:"range"`
}

// GlyphConfig places one extruded character. Specular is "light" or "object".
type GlyphConfig struct {
	Text     string `yaml:"text"`
	Position Vec3   `yaml:"position"`
	Color    Color  `yaml:"color"`
	Specular string `yaml:"specular"`
}

type TextConfig struct {
	Size          float32       `yaml:"size"`
	Depth         float32       `yaml:"depth"`
	CurveSegments int           `yaml:"curve_segments"`
	Shininess     float32       `yaml:"shininess"`
	Glyphs        []GlyphConfig `yaml:"glyphs"`
}

// InputConfig maps printable key characters to action names.
type InputConfig struct {
	Step     float32           `yaml:"step"`
	Bindings map[string]string `yaml:"bindings"`
}

type HelpersConfig struct {
	Axes          bool    `yaml:"axes"`
	AxesSize      float32 `yaml:"axes_size"`
	Grid          bool    `yaml:"grid"`
	GridSize      float32 `yaml:"grid_size"`
	GridDivisions int     `yaml:"grid_divisions"`
}

// Config is the complete startup configuration.
type Config struct {
	Window   WindowConfig  `yaml:"window"`
	FontURL  string        `yaml:"font_url"`
	FPSLimit int           `yaml:"fps_limit"`
	Camera   CameraConfig  `yaml:"camera"`
	Cube     CubeConfig    `yaml:"cube"`
	Light    LightConfig   `yaml:"light"`
	Text     TextConfig    `yaml:"text"`
	Input    InputConfig   `yaml:"input"`
	Helpers  HelpersConfig `yaml:"helpers"`
}

// Default returns the built-in scene.
func Default() Config {
	return Config{
		Window: WindowConfig{Width: 900, Height: 600, Title: "glyphglow", VSync: true},
		FontURL: DefaultFontURL,
		Camera: CameraConfig{
			FOV:      75,
			Near:     0.1,
			Far:      1000,
			Position: Vec3{0, 2, 5},
		},
		Cube:  CubeConfig{Size: 1, Color: 0xFFFFFF, Falloff: 0.3},
		Light: LightConfig{Color: 0xFFFFFF, Intensity: 1, Range: 100},
		Text: TextConfig{
			Size:          1,
			Depth:         0.2,
			CurveSegments: 12,
			Shininess:     32,
			Glyphs: []GlyphConfig{
				{Text: "M", Position: Vec3{-2.3, 0, 0}, Color: 0xFFC87C, Specular: "light"},
				{Text: "9", Position: Vec3{1.2, 0, 0}, Color: 0x003783, Specular: "object"},
			},
		},
		Input: InputConfig{
			Step: 0.1,
			Bindings: map[string]string{
				"w": "cube_up",
				"s": "cube_down",
				"a": "camera_left",
				"d": "camera_right",
			},
		},
		Helpers: HelpersConfig{
			Axes:          true,
			AxesSize:      5,
			Grid:          true,
			GridSize:      15,
			GridDivisions: 50,
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.FontURL == "" {
		errs = append(errs, errors.New("font_url is empty"))
	}
	if c.FPSLimit < 0 {
		errs = append(errs, fmt.Errorf("fps_limit %d is negative", c.FPSLimit))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov %v out of range", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera planes near=%v far=%v invalid", c.Camera.Near, c.Camera.Far))
	}
	if c.Cube.Size <= 0 {
		errs = append(errs, fmt.Errorf("cube size %v must be positive", c.Cube.Size))
	}
	if c.Text.Size <= 0 || c.Text.Depth < 0 {
		errs = append(errs, fmt.Errorf("text size=%v depth=%v invalid", c.Text.Size, c.Text.Depth))
	}
	if c.Text.CurveSegments < 1 {
		errs = append(errs, fmt.Errorf("curve_segments %d must be at least 1", c.Text.CurveSegments))
	}
	for i, g := range c.Text.Glyphs {
		if g.Text == "" {
			errs = append(errs, fmt.Errorf("glyph %d has no text", i))
		}
		if g.Specular != "light" && g.Specular != "object" {
			errs = append(errs, fmt.Errorf("glyph %d: specular %q must be light or object", i, g.Specular))
		}
	}
	for k := range c.Input.Bindings {
		if len([]rune(k)) != 1 {
			errs = append(errs, fmt.Errorf("binding key %q must be a single character", k))
		}
	}
	if c.Helpers.Grid && c.Helpers.GridDivisions < 1 {
		errs = append(errs, fmt.Errorf("grid_divisions %d must be at least 1", c.Helpers.GridDivisions))
	}
	return errors.Join(errs...)
}
