package answer

import "unicode"

// DefaultCorrectThreshold is the minimum overall similarity percentage at
// which an input is accepted as the correct answer.
const DefaultCorrectThreshold = 85

// wordMatchThreshold is the per-word similarity percentage above which a
// typed word is marked valid against the target word at the same position.
const wordMatchThreshold = 80

// CharStatus classifies a single typed character against the target.
type CharStatus int

const (
	// CharUnknown means there is no target character to compare against.
	CharUnknown CharStatus = iota
	// CharCorrect means the typed character matches (case-insensitive).
	CharCorrect
	// CharPartial means a near-miss: an adjacent key on a QWERTY layout.
	CharPartial
	// CharIncorrect means the typed character does not match.
	CharIncorrect
)

// String returns the status name for rendering and logs.
func (s CharStatus) String() string {
	switch s {
	case CharCorrect:
		return "correct"
	case CharPartial:
		return "partial"
	case CharIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}

// qwertyNeighbors maps each lowercase key to the keys physically adjacent
// to it on a US QWERTY layout. Used for the near-miss heuristic: a typed
// character one key away from the target is classified partial rather than
// incorrect. The exact classification is a heuristic, not a contract.
var qwertyNeighbors = map[rune]string{
	'q': "wa", 'w': "qase", 'e': "wsdr", 'r': "edft", 't': "rfgy",
	'y': "tghu", 'u': "yhji", 'i': "ujko", 'o': "iklp", 'p': "ol",
	'a': "qwsz", 's': "awedzx", 'd': "serfxc", 'f': "drtgcv", 'g': "ftyhvb",
	'h': "gyujbn", 'j': "huiknm", 'k': "jiolm", 'l': "kop",
	'z': "asx", 'x': "zsdc", 'c': "xdfv", 'v': "cfgb", 'b': "vghn",
	'n': "bhjm", 'm': "njk",
}

// ValidateWords compares each typed word against the target word at the
// same position. A typed word is valid when its similarity to the
// positional target word is at or above the word match threshold. Words
// past the end of the target are invalid.
func ValidateWords(input, target string) []bool {
	inputWords := Words(input)
	targetWords := Words(target)

	valid := make([]bool, len(inputWords))
	for i, w := range inputWords {
		if i >= len(targetWords) {
			continue
		}
		valid[i] = Similarity(w, targetWords[i]) >= wordMatchThreshold
	}
	return valid
}

// ValidateCharacters classifies every typed character against the target
// character at the same index. The result always has exactly one entry per
// input rune; indices beyond the target are CharUnknown.
func ValidateCharacters(input, target string) []CharStatus {
	inputRunes := []rune(input)
	targetRunes := []rune(target)

	statuses := make([]CharStatus, len(inputRunes))
	for i, r := range inputRunes {
		if i >= len(targetRunes) {
			statuses[i] = CharUnknown
			continue
		}
		statuses[i] = classifyChar(r, targetRunes[i])
	}
	return statuses
}

func classifyChar(typed, target rune) CharStatus {
	if typed == target || unicode.ToLower(typed) == unicode.ToLower(target) {
		return CharCorrect
	}
	if neighbors, ok := qwertyNeighbors[unicode.ToLower(target)]; ok {
		t := unicode.ToLower(typed)
		for _, n := range neighbors {
			if t == n {
				return CharPartial
			}
		}
	}
	return CharIncorrect
}

// IsCorrect reports whether input should be accepted as the answer.
// Both strings are normalized (trim, case-fold, collapse whitespace) and
// compared for exact equality or overall similarity at or above threshold.
// This is the single source of truth for "puzzle solved".
func IsCorrect(input, target string, threshold float64) bool {
	ni := Normalize(input)
	nt := Normalize(target)
	if ni == nt {
		return true
	}
	if ni == "" || nt == "" {
		return false
	}
	return Similarity(ni, nt) >= threshold
}
