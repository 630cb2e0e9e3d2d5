package answer

import "testing"

func TestIsCorrect_Reflexive(t *testing.T) {
	inputs := []string{"hello", "HELLO WORLD", "  spaced  out  ", "", "one"}
	for _, s := range inputs {
		if !IsCorrect(s, s, DefaultCorrectThreshold) && Normalize(s) != "" {
			t.Errorf("IsCorrect(%q, %q) = false, want true", s, s)
		}
	}
}

func TestIsCorrect_CaseAndWhitespaceInsensitive(t *testing.T) {
	tests := []struct {
		input  string
		target string
		want   bool
	}{
		{"hello world", "HELLO WORLD", true},
		{"  Hello   World  ", "hello world", true},
		{"helo world", "hello world", true}, // one edit in 11 chars, above 85%
		{"goodbye", "hello world", false},
		{"", "hello", false},
	}

	for _, tt := range tests {
		got := IsCorrect(tt.input, tt.target, DefaultCorrectThreshold)
		if got != tt.want {
			t.Errorf("IsCorrect(%q, %q) = %t, want %t", tt.input, tt.target, got, tt.want)
		}
	}
}

func TestValidateCharacters_LengthAndExactMatch(t *testing.T) {
	target := "hello"

	tests := []struct {
		input   string
		wantLen int
	}{
		{"", 0},
		{"h", 1},
		{"hello", 5},
		{"hello!!", 7},
	}

	for _, tt := range tests {
		got := ValidateCharacters(tt.input, target)
		if len(got) != tt.wantLen {
			t.Errorf("ValidateCharacters(%q) len = %d, want %d", tt.input, len(got), tt.wantLen)
		}
	}

	// Every exact-match index within the target is correct.
	statuses := ValidateCharacters("heLLo", target)
	for i, st := range statuses {
		if st != CharCorrect {
			t.Errorf("index %d = %s, want correct (case-insensitive match)", i, st)
		}
	}
}

func TestValidateCharacters_Classification(t *testing.T) {
	// target "cat": 'x' is adjacent to 'c' on QWERTY, 'q' is not.
	statuses := ValidateCharacters("xqt", "cat")
	if statuses[0] != CharPartial {
		t.Errorf("adjacent-key char = %s, want partial", statuses[0])
	}
	if statuses[1] != CharIncorrect {
		t.Errorf("distant char = %s, want incorrect", statuses[1])
	}
	if statuses[2] != CharCorrect {
		t.Errorf("matching char = %s, want correct", statuses[2])
	}

	// Typed past the end of the target.
	statuses = ValidateCharacters("cats", "cat")
	if statuses[3] != CharUnknown {
		t.Errorf("overflow char = %s, want unknown", statuses[3])
	}
}

func TestValidateWords(t *testing.T) {
	valid := ValidateWords("helo world extra", "hello world")
	if len(valid) != 3 {
		t.Fatalf("expected 3 word results, got %d", len(valid))
	}
	if !valid[0] {
		t.Error("near-miss word 'helo' should be valid against 'hello'")
	}
	if !valid[1] {
		t.Error("exact word 'world' should be valid")
	}
	if valid[2] {
		t.Error("word past end of target should be invalid")
	}
}

func TestTokenize_PreservesWhitespace(t *testing.T) {
	s := "  hello   world "
	var rebuilt string
	for _, tok := range Tokenize(s) {
		rebuilt += tok.Text
	}
	if rebuilt != s {
		t.Errorf("token concatenation = %q, want %q", rebuilt, s)
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		a, b string
		min  float64
		max  float64
	}{
		{"hello", "hello", 100, 100},
		{"hello", "HELLO", 100, 100},
		{"hello", "helo", 75, 95},
		{"abc", "xyz", 0, 10},
		{"", "", 100, 100},
	}

	for _, tt := range tests {
		got := Similarity(tt.a, tt.b)
		if got < tt.min || got > tt.max {
			t.Errorf("Similarity(%q, %q) = %.1f, want in [%.1f, %.1f]", tt.a, tt.b, got, tt.min, tt.max)
		}
	}
}
