package answer

import "unicode"

// Token is a word or whitespace span within an input string. Whitespace
// spans are preserved so the rendering layer can reproduce the original
// text verbatim around per-word validity marks.
type Token struct {
	Text       string
	Whitespace bool
	// Offset is the rune index of the token start in the source string.
	Offset int
}

// Tokenize splits s into alternating word and whitespace tokens.
// Concatenating all token texts yields s exactly.
func Tokenize(s string) []Token {
	var tokens []Token
	runes := []rune(s)

	i := 0
	for i < len(runes) {
		start := i
		ws := unicode.IsSpace(runes[i])
		for i < len(runes) && unicode.IsSpace(runes[i]) == ws {
			i++
		}
		tokens = append(tokens, Token{
			Text:       string(runes[start:i]),
			Whitespace: ws,
			Offset:     start,
		})
	}

	return tokens
}

// Words returns only the word tokens of s, in order.
func Words(s string) []string {
	var words []string
	for _, t := range Tokenize(s) {
		if !t.Whitespace {
			words = append(words, t.Text)
		}
	}
	return words
}
