package candidate

import "testing"

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in      string
		want    Difficulty
		wantErr bool
	}{
		{"easy", DifficultyEasy, false},
		{"Medium", DifficultyMedium, false},
		{" HARD ", DifficultyHard, false},
		{"", DifficultyMedium, false},
		{"impossible", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseDifficulty(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDifficulty(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDifficulty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestProfileValidate(t *testing.T) {
	valid := Profile{Name: "Ada", Role: "backend", Difficulty: DifficultyMedium}
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid profile rejected: %v", err)
	}

	missing := Profile{Role: "backend", Difficulty: DifficultyMedium}
	if err := missing.Validate(); err == nil {
		t.Fatal("expected error for missing name")
	}

	badDiff := Profile{Name: "Ada", Role: "backend", Difficulty: "brutal"}
	if err := badDiff.Validate(); err == nil {
		t.Fatal("expected error for unrecognized difficulty")
	}
}
