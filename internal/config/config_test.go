package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/doomcore/info"
)

func TestDefaultMatchesTeacherDerivedValues(t *testing.T) {
	d := Default()
	if d.TicRate != 35 {
		t.Fatalf("TicRate default = %d, want 35", d.TicRate)
	}
	if d.GibThreshold != 1000 {
		t.Fatalf("GibThreshold default = %d, want 1000", d.GibThreshold)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tunables.toml")
	body := "gravity = 2.0\ngib_threshold = 500\n\n[pain_chance]\n3004 = 64\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}

	tun, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if tun.Gravity != 2.0 {
		t.Fatalf("Gravity = %v, want 2.0", tun.Gravity)
	}
	if tun.GibThreshold != 500 {
		t.Fatalf("GibThreshold = %d, want 500", tun.GibThreshold)
	}
	if tun.TicRate != 35 {
		t.Fatalf("TicRate should keep its default when absent from the file, got %d", tun.TicRate)
	}
	if tun.PainChance["3004"] != 64 {
		t.Fatalf("PainChance[3004] = %d, want 64", tun.PainChance["3004"])
	}
}

func TestApplyPushesPainChanceOverride(t *testing.T) {
	var targetIdx = -1
	var original int
	for i := range info.MobjInfos {
		if info.MobjInfos[i].Doomednum == 3004 {
			targetIdx = i
			original = info.MobjInfos[i].PainChance
			break
		}
	}
	if targetIdx < 0 {
		t.Skip("no mobj type with doomednum 3004 in this build's table")
	}
	defer func() { info.MobjInfos[targetIdx].PainChance = original }()

	tun := Default()
	tun.PainChance = map[string]int{"3004": 77}
	tun.Apply()

	if info.MobjInfos[targetIdx].PainChance != 77 {
		t.Fatalf("PainChance after Apply = %d, want 77", info.MobjInfos[targetIdx].PainChance)
	}
}
