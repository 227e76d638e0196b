package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

const (
	// maxContextChars bounds the assembled prompt context. Later chunks
	// are dropped past this budget; a lossy but deterministic cutoff,
	// not an error.
	maxContextChars = 120000

	analysisTemperature = 0.2

	retryInstruction = "Your response was not valid JSON. Respond with VALID JSON only, no extra text."
)

// analysisPrompt asks for strict JSON matching the AnalysisResult shape.
const analysisPrompt = `You are an expert investment analyst reviewing a company document. Extract the following in valid JSON:

{
  "company_name": "string|null",
  "sector": "string|null",
  "financial_metrics": {
    "revenue": {"value": number|null, "unit": "string|null", "year": number|null, "page": number|null},
    "revenue_growth": {"value": number|null, "unit": "%", "page": number|null},
    "gross_margin": {"value": number|null, "unit": "%", "page": number|null},
    "operating_margin": {"value": number|null, "unit": "%", "page": number|null},
    "net_margin": {"value": number|null, "unit": "%", "page": number|null},
    "arr": {"value": number|null, "unit": "string|null", "page": number|null},
    "customer_count": {"value": number|null, "page": number|null}
  },
  "key_metrics": [
    {"metric": "string", "value": "string", "importance": "High|Medium|Low", "page": number|null}
  ],
  "red_flags": [
    {"flag": "string", "severity": "High|Medium|Low", "category": "Financial|Legal|Operational|Market|Sharia", "page": number|null}
  ],
  "business_overview": "2-3 sentence summary",
  "competitive_position": "1-2 sentence summary",
  "citations": [{"page": number, "quote": "string"}]
}

Rules:
- Only include metrics explicitly found; otherwise use null.
- Provide page numbers when possible; else null.
- Be conservative in red-flag severity.
- Output strict JSON only, no extra text.`

// ChatClient issues one chat completion and returns the raw content.
type ChatClient interface {
	Complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32, jsonMode bool) (string, error)
}

// GenerationService turns retrieved chunks into a structured analysis via
// a JSON-mode completion with a bounded retry protocol.
type GenerationService struct {
	chat ChatClient
}

// NewGenerationService creates a new GenerationService instance.
func NewGenerationService(chat ChatClient) *GenerationService {
	return &GenerationService{chat: chat}
}

// Analyze sends the retrieved chunks for structured analysis.
//
// Protocol: at most 2 attempts. A parse failure appends a corrective
// instruction plus the malformed response and retries once; a second parse
// failure surfaces ErrInvalidModelOutput. A transport failure likewise
// retries once; a second one surfaces a GENERATION_FAILED error carrying
// the cause. There is no attempt 3.
func (s *GenerationService) Analyze(ctx context.Context, chunks []RetrievedChunk, instructions string) (*domain.AnalysisResult, error) {
	if instructions == "" {
		instructions = analysisPrompt
	}

	docContext := assembleContext(chunks)
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: instructions},
		{Role: openai.ChatMessageRoleUser, Content: "Here is the document context:\n" + docContext},
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		content, err := s.chat.Complete(ctx, messages, analysisTemperature, true)
		if err != nil {
			lastErr = err
			if attempt == 0 {
				messages = append(messages, openai.ChatCompletionMessage{
					Role:    openai.ChatMessageRoleUser,
					Content: retryInstruction,
				})
				continue
			}
			return nil, domain.NewDomainErrorWithCause(domain.ErrCodeGenerationFailed, "analysis generation failed after retry", lastErr)
		}

		var result domain.AnalysisResult
		if err := json.Unmarshal([]byte(content), &result); err != nil {
			lastErr = err
			if attempt == 0 {
				messages = append(messages,
					openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
					openai.ChatCompletionMessage{Role: openai.ChatMessageRoleUser, Content: retryInstruction},
				)
				continue
			}
			return nil, domain.ErrInvalidModelOutput
		}

		return &result, nil
	}

	return nil, domain.NewDomainErrorWithCause(domain.ErrCodeGenerationFailed, "analysis generation failed", lastErr)
}

// assembleContext concatenates chunks in retrieval order, each prefixed
// with its page marker, truncated to the character budget.
func assembleContext(chunks []RetrievedChunk) string {
	parts := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		parts = append(parts, fmt.Sprintf("--- PAGE %d ---\n%s", chunk.Page, chunk.Text))
	}
	assembled := strings.Join(parts, "\n\n")
	if len(assembled) > maxContextChars {
		assembled = assembled[:maxContextChars]
	}
	return assembled
}
