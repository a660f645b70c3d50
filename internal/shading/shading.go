// Package shading holds the two surface models of the scene. The GLSL stages
// run on the GPU; the Go functions here compute the same values on the CPU.
package shading

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	ambientBase   = 59
	ambientOffset = 200
)

// AmbientIntensity scales the object color for the ambient term of every lit material.
const AmbientIntensity = float32(ambientBase+ambientOffset) / 1000

// DefaultFalloff is the glow loss per unit of distance from the cube center.
const DefaultFalloff = 0.3

// SpecularMode picks the highlight color of a lit material.
type SpecularMode int

const (
	// SpecularLight tints highlights with the light color.
	SpecularLight SpecularMode = iota
	// SpecularObject tints highlights with the object's own color, which
	// gives a metallic look.
	SpecularObject
)

func (m SpecularMode) String() string {
	switch m {
	case SpecularLight:
		return "light"
	case SpecularObject:
		return "object"
	}
	return "unknown"
}

// GlowMaterial is the cube surface. It is flagged transparent but always
// writes an alpha of one.
type GlowMaterial struct {
	Color       mgl32.Vec3
	Falloff     float32
	Transparent bool
}

// LitMaterial is a Blinn-Phong surface.
type LitMaterial struct {
	Color            mgl32.Vec3
	Specular         SpecularMode
	Shininess        float32
	AmbientIntensity float32
}

// SpecularColor resolves the highlight color under a light of lightColor.
func (m LitMaterial) SpecularColor(lightColor mgl32.Vec3) mgl32.Vec3 {
	if m.Specular == SpecularObject {
		return m.Color
	}
	return lightColor
}

// Glow returns the cube color at a point given in cube-local coordinates.
// Nothing is clamped; the framebuffer format does that.
func Glow(m GlowMaterial, local mgl32.Vec3) mgl32.Vec4 {
	intensity := 1 - local.Len()*m.Falloff
	c := m.Color.Mul(intensity).Add(m.Color.Mul(0.5))
	return c.Vec4(1)
}

// Light is what a lit surface needs to know about the scene.
type Light struct {
	Position mgl32.Vec3
	Color    mgl32.Vec3
	ViewPos  mgl32.Vec3
}

// BlinnPhong returns the color of m at world position p with surface normal n.
func BlinnPhong(m LitMaterial, l Light, p, n mgl32.Vec3) mgl32.Vec4 {
	n = safeNormalize(n)
	lightDir := safeNormalize(l.Position.Sub(p))
	viewDir := safeNormalize(l.ViewPos.Sub(p))
	halfway := safeNormalize(lightDir.Add(viewDir))

	ambient := m.Color.Mul(m.AmbientIntensity)
	diffuse := m.Color.Mul(max(n.Dot(lightDir), 0))
	spec := float32(math.Pow(float64(max(n.Dot(halfway), 0)), float64(m.Shininess)))
	specular := m.SpecularColor(l.Color).Mul(spec)

	return ambient.Add(diffuse).Add(specular).Vec4(1)
}

// safeNormalize leaves zero vectors alone where GLSL would produce NaN.
func safeNormalize(v mgl32.Vec3) mgl32.Vec3 {
	if v.Len() == 0 {
		return v
	}
	return v.Normalize()
}

// HexColor unpacks 0xRRGGBB.
func HexColor(hex uint32) mgl32.Vec3 {
	return mgl32.Vec3{
		float32(hex>>16&0xFF) / 255,
		float32(hex>>8&0xFF) / 255,
		float32(hex&0xFF) / 255,
	}
}
