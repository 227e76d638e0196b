package cli

import (
	"context"
	"fmt"

	gopenai "github.com/sashabaranov/go-openai"
)

// unavailableChat stands in for the OpenAI client when no credential is
// configured in offline mode. Retrieval and DCF endpoints keep working;
// generation-backed ones fail fast.
type unavailableChat struct{}

func (unavailableChat) Complete(_ context.Context, _ []gopenai.ChatCompletionMessage, _ float32, _ bool) (string, error) {
	return "", fmt.Errorf("generation not configured: INVEST_OPENAI_API_KEY required")
}
