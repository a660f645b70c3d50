package input

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	cubeY, cameraX float32
	moves          int
}

func (r *recorder) MoveCube(dy float32) {
	r.cubeY += dy
	r.moves++
}

func (r *recorder) MoveCamera(dx float32) {
	r.cameraX += dx
	r.moves++
}

func TestDefaultBindings(t *testing.T) {
	rec := &recorder{}
	im := NewInputManager(rec, 0)

	assert.True(t, im.KeyDown('w'))
	assert.InDelta(t, 0.1, rec.cubeY, 1e-6)
	assert.True(t, im.KeyDown('s'))
	assert.InDelta(t, 0, rec.cubeY, 1e-6)
	assert.True(t, im.KeyDown('d'))
	assert.InDelta(t, 0.1, rec.cameraX, 1e-6)
	assert.True(t, im.KeyDown('a'))
	assert.True(t, im.KeyDown('a'))
	assert.InDelta(t, -0.1, rec.cameraX, 1e-6)
	assert.Equal(t, 5, rec.moves)
}

func TestUnknownKeysAreIgnored(t *testing.T) {
	rec := &recorder{}
	im := NewInputManager(rec, DefaultStep)
	for _, k := range "qxzW 1" {
		assert.False(t, im.KeyDown(k))
	}
	assert.Zero(t, rec.moves)
}

func TestHandleKeyEvent(t *testing.T) {
	rec := &recorder{}
	im := NewInputManager(rec, DefaultStep)

	assert.True(t, im.HandleKeyEvent('w', KeyPress))
	assert.True(t, im.HandleKeyEvent('w', KeyRepeat))
	assert.True(t, im.HandleKeyEvent('w', KeyRepeat))
	assert.False(t, im.HandleKeyEvent('w', KeyRelease))
	assert.InDelta(t, 0.3, rec.cubeY, 1e-6)
	assert.Equal(t, 3, rec.moves)
}

func TestKeySequencesSumSteps(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	keys := []rune("wsadqe")

	for range 20 {
		rec := &recorder{cameraX: 0}
		im := NewInputManager(rec, DefaultStep)
		counts := map[rune]int{}
		for range rng.IntN(200) {
			k := keys[rng.IntN(len(keys))]
			counts[k]++
			im.KeyDown(k)
		}
		assert.InDelta(t, 0.1*float64(counts['w']-counts['s']), rec.cubeY, 1e-3)
		assert.InDelta(t, 0.1*float64(counts['d']-counts['a']), rec.cameraX, 1e-3)
	}
}

func TestBindKey(t *testing.T) {
	rec := &recorder{}
	im := NewInputManager(rec, 0.5)

	im.BindKey('k', ActionCubeUp)
	im.BindKey('x', ActionCount)

	assert.False(t, im.KeyDown('x'))
	assert.True(t, im.KeyDown('k'))
	assert.True(t, im.KeyDown('w'))
	assert.Equal(t, float32(1), rec.cubeY)
}

func TestRebind(t *testing.T) {
	rec := &recorder{}
	im := NewInputManager(rec, DefaultStep)

	require.NoError(t, im.Rebind(map[string]string{"i": "cube_up", "j": "camera_left"}))
	_, ok := im.Lookup('w')
	assert.False(t, ok)
	a, ok := im.Lookup('j')
	require.True(t, ok)
	assert.Equal(t, ActionCameraLeft, a)

	t.Run("invalid table keeps the old bindings", func(t *testing.T) {
		assert.Error(t, im.Rebind(map[string]string{"i": "jump"}))
		assert.Error(t, im.Rebind(map[string]string{"up": "cube_up"}))
		_, ok := im.Lookup('i')
		assert.True(t, ok)
	})
}

func TestParseAction(t *testing.T) {
	for a := range ActionCount {
		got, err := ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, got)
	}
	_, err := ParseAction("fly")
	assert.Error(t, err)
	assert.Equal(t, "Action(9)", Action(9).String())
}
