package tutor

import "testing"

func TestAdapt(t *testing.T) {
	p := DefaultPolicy()

	tests := []struct {
		name     string
		level    Level
		accuracy float64
		asked    int
		want     Level
	}{
		{"no change below floor even at 100%", LevelBeginner, 1.0, 2, LevelBeginner},
		{"no demotion below floor", LevelAdvanced, 0.0, 2, LevelAdvanced},
		{"promote at threshold", LevelBeginner, 0.8, 3, LevelIntermediate},
		{"promote intermediate", LevelIntermediate, 0.9, 4, LevelAdvanced},
		{"advanced is the ceiling", LevelAdvanced, 1.0, 5, LevelAdvanced},
		{"demote below threshold", LevelIntermediate, 0.3, 3, LevelBeginner},
		{"beginner is the floor", LevelBeginner, 0.0, 5, LevelBeginner},
		{"middle band unchanged", LevelIntermediate, 0.6, 5, LevelIntermediate},
		{"boundary 0.4 is not a demotion", LevelIntermediate, 0.4, 5, LevelIntermediate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.Adapt(tt.level, tt.accuracy, tt.asked); got != tt.want {
				t.Fatalf("Adapt(%s, %v, %d) = %s, want %s", tt.level, tt.accuracy, tt.asked, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("advanced") != LevelAdvanced {
		t.Fatal("expected advanced")
	}
	if ParseLevel("expert") != LevelBeginner {
		t.Fatal("unknown level should default to beginner")
	}
	if ParseLevel("") != LevelBeginner {
		t.Fatal("empty level should default to beginner")
	}
}
