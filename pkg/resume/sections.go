package resume

import (
	"regexp"
	"strings"
)

var (
	rePageFooter = regexp.MustCompile(`(?i)Page\s+\d+\s+of\s+\d+`)
	reBlankRuns  = regexp.MustCompile(`\n\s*\n\s*\n`)
)

// CleanText strips "Page N of M" footer artifacts and collapses runs of three
// or more newlines to one. Applied once, before splitting, for both languages.
func CleanText(text string) string {
	text = rePageFooter.ReplaceAllString(text, "")
	return reBlankRuns.ReplaceAllString(text, "\n")
}

// markers are the literal section-header strings searched for in the cleaned
// text, per language. Matching is case-sensitive by first occurrence.
type markers struct {
	summary    string
	experience string
	education  string
	skills     string
	contact    string
}

var markersByLang = map[Language]markers{
	LangEN: {
		summary:    "Summary",
		experience: "Experience",
		education:  "Education",
		skills:     "Skills",
		contact:    "Contact",
	},
	LangES: {
		summary:    "Extracto",
		experience: "Experiencia",
		education:  "Educación",
		skills:     "Aptitudes principales",
		contact:    "Contactar",
	},
}

// SplitSections slices cleaned text into the five sections bounded by
// consecutive marker positions, the last section running to end of text, plus
// the contact sub-slice of the header. A marker that never occurs indexes at
// -1, which substr clamps to 0; a missing start marker therefore slides its
// section to the text start, and a missing end marker collapses or inverts the
// slice instead of failing. Downstream prompt construction tolerates the
// resulting roughly-section-shaped slices.
func SplitSections(clean string, lang Language) Sections {
	m := markersByLang[lang]

	sumIdx := strings.Index(clean, m.summary)
	expIdx := strings.Index(clean, m.experience)
	eduIdx := strings.Index(clean, m.education)
	sklIdx := strings.Index(clean, m.skills)

	header := strings.TrimSpace(substr(clean, 0, sumIdx))
	summary := strings.TrimSpace(substr(clean, sumIdx, expIdx))
	experience := strings.TrimSpace(substr(clean, expIdx, eduIdx))
	education := strings.TrimSpace(substr(clean, eduIdx, sklIdx))
	skills := strings.TrimSpace(substrFrom(clean, sklIdx))
	contact := strings.TrimSpace(substrFrom(header, strings.Index(header, m.contact)))

	return Sections{
		Header:     header,
		Summary:    summary,
		Experience: experience,
		Education:  education,
		Skills:     skills,
		Contact:    contact,
	}
}

// substr returns s[from:to] with lenient bounds: negative indexes clamp to 0,
// indexes past the end clamp to len(s), and from > to swaps the two.
func substr(s string, from, to int) string {
	from = clamp(from, len(s))
	to = clamp(to, len(s))
	if from > to {
		from, to = to, from
	}
	return s[from:to]
}

// substrFrom returns the tail of s starting at from, clamped the same way.
func substrFrom(s string, from int) string {
	return s[clamp(from, len(s)):]
}

func clamp(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}
