package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "glyphglow.yaml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, DefaultFontURL, cfg.FontURL)
	assert.Equal(t, Vec3{0, 2, 5}, cfg.Camera.Position)
	require.Len(t, cfg.Text.Glyphs, 2)
	assert.Equal(t, Color(0xFFC87C), cfg.Text.Glyphs[0].Color)
	assert.Equal(t, Color(0x003783), cfg.Text.Glyphs[1].Color)
	assert.Equal(t, "object", cfg.Text.Glyphs[1].Specular)
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	p := writeConfig(t, `
window:
  width: 1280
  height: 720
fps_limit: 144
cube:
  color: "#FF0000"
light:
  color: 0x00FF00
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, 1280, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.Equal(t, 144, cfg.FPSLimit)
	assert.Equal(t, Color(0xFF0000), cfg.Cube.Color)
	assert.Equal(t, Color(0x00FF00), cfg.Light.Color)
	// untouched sections keep their defaults
	assert.Equal(t, float32(75), cfg.Camera.FOV)
	assert.Equal(t, float32(0.3), cfg.Cube.Falloff)
}

func TestLoadRejectsInvalid(t *testing.T) {
	p := writeConfig(t, `
camera:
  near: 10
  far: 1
text:
  glyphs:
    - text: "Q"
      specular: shiny
`)
	_, err := Load(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "camera planes")
	assert.Contains(t, err.Error(), "specular")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestColorUnmarshal(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalYAML([]byte("#003783")))
	assert.Equal(t, Color(0x003783), c)
	require.NoError(t, c.UnmarshalYAML([]byte("16777215")))
	assert.Equal(t, Color(0xFFFFFF), c)
	assert.Error(t, c.UnmarshalYAML([]byte("0x1000000")))
	assert.Error(t, c.UnmarshalYAML([]byte("teal")))
}

func TestSetFPSLimitClamps(t *testing.T) {
	defer SetFPSLimit(0)
	SetFPSLimit(-5)
	assert.Equal(t, 0, GetFPSLimit())
	SetFPSLimit(5000)
	assert.Equal(t, 1000, GetFPSLimit())
	SetFPSLimit(60)
	assert.Equal(t, 60, GetFPSLimit())
}
