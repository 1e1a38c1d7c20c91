package render

import "github.com/lucasb-eyer/go-colorful"

// maxLightDist is the view-space distance (world units, the same unit
// Camera.Project's depth is in) at which sector lightlevel 255 has fully
// decayed to black, the diminish-table analogue spec §4.7 mentions
// alongside sector lightlevel. Vanilla Doom's light diminish is
// distance/scale driven rather than a fixed table; the closest fit here
// without a real LIGHTS table is a single perceptual falloff curve.
const maxLightDist = 2048.0

// toColorful converts our working RGB into go-colorful's 0..1 linear
// representation for perceptual blending.
func toColorful(c RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

func fromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{r, g, b}
}

// Diminish applies spec §4.7's sector lightlevel + distance falloff to a
// base color, blending it toward black in perceptually-uniform Lab space
// (colorful.Color.BlendLab) instead of naive per-channel multiplication —
// the ad-hoc channel math the teacher never had to do because it never
// rendered lit 3D geometry, only flat terminal glyphs.
func Diminish(base RGB, lightLevel int, distWorldUnits float64) RGB {
	if lightLevel < 0 {
		lightLevel = 0
	}
	if lightLevel > 255 {
		lightLevel = 255
	}
	lightFrac := float64(lightLevel) / 255
	distFrac := distWorldUnits / maxLightDist
	if distFrac < 0 {
		distFrac = 0
	}
	if distFrac > 1 {
		distFrac = 1
	}
	// darken toward black as distance grows, scaled by how dark the
	// sector already is: a bright sector tolerates more distance before
	// going unreadable than a dark one.
	t := distFrac * (1.2 - lightFrac)
	if t > 1 {
		t = 1
	}
	lit := toColorful(base).BlendLab(colorful.Color{R: 0, G: 0, B: 0}, t)
	return fromColorful(lit.BlendLab(colorful.Color{R: 0, G: 0, B: 0}, 1-lightFrac*0.15))
}

// Fuzzy implements the SHADOW flag's "fuzzy translucency" sprite mode
// (spec §4.7): blends the sprite color toward the already-drawn
// background at a flicker-like low alpha instead of drawing it solid.
func Fuzzy(background, sprite RGB, phase int) RGB {
	alpha := 0.25 + 0.15*float64(phase%3)
	return fromColorful(toColorful(background).BlendLab(toColorful(sprite), alpha))
}

// FullBright bypasses Diminish entirely (spec §4.7 "full-bright frames
// bypass light diminish"), returning the base color untouched.
func FullBright(base RGB) RGB { return base }
