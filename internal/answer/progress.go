package answer

import "strings"

// Progress blend weights. Word-level matches carry more signal than raw
// character positions, but both must move the score in the same direction.
const (
	wordWeight = 0.6
	charWeight = 0.4
)

// EstimateProgress maps the current input against the target answer into a
// completion score in [0, 1].
//
// The base score blends the fraction of valid words with the fraction of
// correct characters. When the user has typed something real but the base
// score is still near zero, a small floor correction applies: scores below
// 0.10 become min(0.15, base+0.05). The pressure engine gates tactics on
// minimum-progress thresholds near zero, and a genuine attempt must
// register enough to keep those gates open.
//
// Progress is not monotonic over time: backspacing lowers it. Callers must
// not cache it as a high-water mark.
func EstimateProgress(input, target string) float64 {
	if strings.TrimSpace(input) == "" || strings.TrimSpace(target) == "" {
		return 0
	}

	wordFrac := validWordFraction(input, target)
	charFrac := correctCharFraction(input, target)

	score := wordWeight*wordFrac + charWeight*charFrac

	if score < 0.10 {
		score = min(0.15, score+0.05)
	}
	if score > 1 {
		score = 1
	}
	return score
}

func validWordFraction(input, target string) float64 {
	targetWords := Words(target)
	if len(targetWords) == 0 {
		return 0
	}

	valid := 0
	for _, ok := range ValidateWords(input, target) {
		if ok {
			valid++
		}
	}
	return float64(valid) / float64(len(targetWords))
}

func correctCharFraction(input, target string) float64 {
	targetLen := len([]rune(target))
	if targetLen == 0 {
		return 0
	}

	correct := 0
	for _, st := range ValidateCharacters(input, target) {
		if st == CharCorrect {
			correct++
		}
	}
	return float64(correct) / float64(targetLen)
}
