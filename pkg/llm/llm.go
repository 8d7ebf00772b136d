package llm

import "context"

// ChatModel is a minimal abstraction for chat-based LLMs used by the extraction
// pipeline. It intentionally hides concrete providers to preserve dependency
// direction. One call per request, no conversation state.
type ChatModel interface {
	Ask(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}
