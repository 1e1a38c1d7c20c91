package render

import "testing"

func TestDiminishDarkensWithDistance(t *testing.T) {
	base := RGB{R: 200, G: 200, B: 200}
	near := Diminish(base, 255, 0)
	far := Diminish(base, 255, 4000)
	nearLum := int(near.R) + int(near.G) + int(near.B)
	farLum := int(far.R) + int(far.G) + int(far.B)
	if farLum > nearLum {
		t.Fatalf("farther pixel (%v) should not be brighter than nearer pixel (%v)", farLum, nearLum)
	}
}

func TestDiminishDarkSectorDarkerThanLitSector(t *testing.T) {
	base := RGB{R: 200, G: 200, B: 200}
	lit := Diminish(base, 255, 500)
	dark := Diminish(base, 50, 500)
	litLum := int(lit.R) + int(lit.G) + int(lit.B)
	darkLum := int(dark.R) + int(dark.G) + int(dark.B)
	if darkLum > litLum {
		t.Fatalf("a dark sector's diminished color (%v) should not be brighter than a lit one's (%v)", darkLum, litLum)
	}
}

func TestFullBrightBypassesDiminish(t *testing.T) {
	base := RGB{R: 100, G: 50, B: 25}
	if got := FullBright(base); got != base {
		t.Fatalf("FullBright should return the base color unchanged, got %v", got)
	}
}

func TestFuzzyBlendsTowardBackground(t *testing.T) {
	bg := RGB{R: 0, G: 0, B: 0}
	sprite := RGB{R: 255, G: 255, B: 255}
	got := Fuzzy(bg, sprite, 0)
	if got == sprite || got == bg {
		t.Fatalf("fuzzy blend should land strictly between background and sprite color, got %v", got)
	}
}
