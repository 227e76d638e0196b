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
	memoTemperature        = 0.4
	translationTemperature = 0.7
)

const memoPrompt = `You are writing a professional investment memo for an institutional investor.

Based on the following analysis data:
%s

Write a comprehensive investment memo with these sections:

# EXECUTIVE SUMMARY (<=100 words)
# COMPANY OVERVIEW (~200 words)
# FINANCIAL PERFORMANCE
# INVESTMENT THESIS (3-5 bullets)
# KEY RISKS (5-7 with mitigations)
# VALUATION SUMMARY
# RECOMMENDATION (Pass/Watch/Consider/Strong Buy with position sizing)

Style:
- Professional and concise.
- Use numbers and page citations where available.
- Balanced: pros/cons.
- Markdown only.`

// MemoAnalysisSource provides the cached analysis a memo is written from.
type MemoAnalysisSource interface {
	Get(documentID string) (*domain.AnalysisResult, error)
}

// MemoService templates a cached analysis into an investment memo via a
// single generation call, with an optional second call for translation.
type MemoService struct {
	source MemoAnalysisSource
	chat   ChatClient
}

// NewMemoService creates a new MemoService instance.
func NewMemoService(source MemoAnalysisSource, chat ChatClient) *MemoService {
	return &MemoService{source: source, chat: chat}
}

// Generate writes a memo for an analyzed document. Language "en" returns
// the memo directly; "ar" issues one additional translation completion.
// An absent cached analysis fails before any generation call.
func (s *MemoService) Generate(ctx context.Context, documentID, language string) (string, error) {
	switch language {
	case "en", "ar":
	default:
		return "", domain.ErrInvalidMemoLanguage
	}

	analysis, err := s.source.Get(documentID)
	if err != nil {
		return "", err
	}

	analysisJSON, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize analysis: %w", err)
	}

	memo, err := s.chat.Complete(ctx, []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: "You are a senior investment analyst writing in Markdown."},
		{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(memoPrompt, analysisJSON)},
	}, memoTemperature, false)
	if err != nil {
		return "", domain.NewDomainErrorWithCause(domain.ErrCodeGenerationFailed, "failed to generate memo", err)
	}

	if language == "ar" {
		translated, err := s.chat.Complete(ctx, []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "You are a professional translator specializing in financial documents."},
			{Role: openai.ChatMessageRoleUser, Content: "Translate the following investment memo into professional, formal Arabic. Preserve the Markdown formatting:\n\n" + memo},
		}, translationTemperature, false)
		if err != nil {
			return "", domain.NewDomainErrorWithCause(domain.ErrCodeGenerationFailed, "failed to translate memo", err)
		}
		memo = translated
	}

	return strings.TrimSpace(memo), nil
}
