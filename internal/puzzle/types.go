package puzzle

// Category groups puzzles for prompt context and display.
type Category string

const (
	CategoryPhrase    Category = "phrase"
	CategoryCompound  Category = "compound_word"
	CategoryIdiom     Category = "idiom"
	CategoryPopCulture Category = "pop_culture"
)

// Puzzle is a single rebus puzzle: a visual/text prompt whose answer is a
// word or phrase the player must type.
type Puzzle struct {
	// ID uniquely identifies the puzzle.
	ID string

	// Prompt is the rebus itself, rendered as text/emoji.
	Prompt string

	// Answer is the target word or phrase.
	Answer string

	// Category classifies the answer.
	Category Category

	// Context is a short description of the puzzle's theme, passed to
	// content generation so hints stay on topic without revealing the
	// answer.
	Context string

	// Difficulty is the tier (1-10) this puzzle was written for.
	Difficulty int

	// Explanation shows how the rebus maps to the answer. Displayed after
	// the puzzle is solved or abandoned.
	Explanation string
}

// GenerateInput carries everything the generator needs to produce a puzzle.
type GenerateInput struct {
	// Difficulty is the requested tier (1-10).
	Difficulty int

	// Category optionally pins the puzzle category. Empty means any.
	Category Category

	// PriorAnswers lists answers already used this session, for dedup.
	PriorAnswers []string
}
