package resume

import (
	"context"
	"errors"

	"github.com/danielgpm/linkedin-cv/pkg/llm"
)

// ErrNoLanguage is terminal for a request: neither keyword set fully matched.
// The message text is surfaced to the client verbatim.
var ErrNoLanguage = errors.New("No language detected - cannot format data")

// Extractor turns raw resume text into a validated CV.
type Extractor interface {
	Extract(ctx context.Context, text string) (CV, error)
}

type extractor struct {
	llm llm.ChatModel
}

// NewExtractor creates the default implementation backed by a chat model.
func NewExtractor(model llm.ChatModel) Extractor {
	return &extractor{llm: model}
}

// Extract runs detect → clean → split → prompt → model call → sanitize →
// validate. Any failure aborts the whole request; there is no retry and no
// partial result.
func (s *extractor) Extract(ctx context.Context, text string) (CV, error) {
	lang := DetectLanguage(text)
	if lang == LangUnknown {
		return CV{}, ErrNoLanguage
	}
	sections := SplitSections(CleanText(text), lang)
	system, user := BuildPrompt(sections, lang)
	raw, err := s.llm.Ask(ctx, system, user)
	if err != nil {
		return CV{}, err
	}
	return ParseCV(StripFences(raw))
}
