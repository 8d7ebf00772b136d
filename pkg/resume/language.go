package resume

import "strings"

var (
	spanishWords = []string{"contactar", "extracto", "experiencia", "educación"}
	englishWords = []string{"contact", "summary", "experience", "education"}
)

// DetectLanguage classifies resume text by section-header keywords. A language
// matches only when every keyword of its set is present (case-insensitive).
// Spanish is checked first, so mixed-language text matching both sets is ES.
func DetectLanguage(text string) Language {
	lower := strings.ToLower(text)
	if containsAll(lower, spanishWords) {
		return LangES
	}
	if containsAll(lower, englishWords) {
		return LangEN
	}
	return LangUnknown
}

func containsAll(lower string, words []string) bool {
	for _, w := range words {
		if !strings.Contains(lower, w) {
			return false
		}
	}
	return true
}
