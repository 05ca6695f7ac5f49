package classify

import (
	"strings"
	"unicode"

	"glim/internal/journal/data"
)

// Kind is the content classification of an entry, driving which card
// sub-layout renders.
type Kind int

const (
	// Mixed entries render a text block (title and/or body) above any images.
	Mixed Kind = iota
	// ImageOnly entries have images but no textual title or body; the card
	// skips the text block and tightens its margins.
	ImageOnly
)

// Classify returns ImageOnly iff the entry has at least one image and both
// its title and display text are empty after trimming. Image order never
// affects the result.
func Classify(e data.Entry) Kind {
	if len(e.Images) == 0 {
		return Mixed
	}
	if strings.TrimSpace(e.Title) != "" {
		return Mixed
	}
	if strings.TrimSpace(e.DisplayText()) != "" {
		return Mixed
	}
	return ImageOnly
}

// Script is a coarse script tag used to pick wrap widths for mixed-script
// text.
type Script int

const (
	ScriptLatin Script = iota
	ScriptCJK
)

// cjkRatioThreshold is the fraction of CJK runes above which a string is
// treated as CJK text.
const cjkRatioThreshold = 0.20

// DetectScript classifies text as CJK when more than cjkRatioThreshold of
// its non-space runes are Han, Hiragana, Katakana, or Hangul.
func DetectScript(text string) Script {
	var total, cjk int
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) ||
			unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
			cjk++
		}
	}
	if total == 0 {
		return ScriptLatin
	}
	if float64(cjk)/float64(total) > cjkRatioThreshold {
		return ScriptCJK
	}
	return ScriptLatin
}
