package service

import (
	"context"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

func memoFixture(t *testing.T) (*MemoService, *AnalysisCache, *MockChatClient) {
	t.Helper()
	cache := NewAnalysisCache()
	chat := new(MockChatClient)
	return NewMemoService(cache, chat), cache, chat
}

func TestMemoService_Generate_English(t *testing.T) {
	svc, cache, chat := memoFixture(t)
	ctx := context.Background()

	cache.Put("doc1", cleanAnalysis())
	chat.On("Complete", ctx, mock.MatchedBy(func(msgs []openai.ChatCompletionMessage) bool {
		return len(msgs) == 2 && strings.Contains(msgs[1].Content, "Innovate Inc.")
	}), float32(memoTemperature), false).Return("# EXECUTIVE SUMMARY\n\nSolid business.\n", nil).Once()

	memo, err := svc.Generate(ctx, "doc1", "en")

	require.NoError(t, err)
	assert.Equal(t, "# EXECUTIVE SUMMARY\n\nSolid business.", memo)
	chat.AssertNumberOfCalls(t, "Complete", 1)
}

func TestMemoService_Generate_ArabicTranslates(t *testing.T) {
	svc, cache, chat := memoFixture(t)
	ctx := context.Background()

	cache.Put("doc1", cleanAnalysis())
	chat.On("Complete", ctx, mock.Anything, float32(memoTemperature), false).
		Return("# EXECUTIVE SUMMARY\n\nSolid business.", nil).Once()
	chat.On("Complete", ctx, mock.MatchedBy(func(msgs []openai.ChatCompletionMessage) bool {
		return len(msgs) == 2 && strings.Contains(msgs[1].Content, "Solid business.")
	}), float32(translationTemperature), false).Return("ملخص تنفيذي", nil).Once()

	memo, err := svc.Generate(ctx, "doc1", "ar")

	require.NoError(t, err)
	assert.Equal(t, "ملخص تنفيذي", memo)
	chat.AssertExpectations(t)
}

func TestMemoService_Generate_MissingAnalysis(t *testing.T) {
	svc, _, chat := memoFixture(t)

	memo, err := svc.Generate(context.Background(), "doc1", "en")

	assert.Empty(t, memo)
	assert.ErrorIs(t, err, domain.ErrAnalysisNotFound)
	chat.AssertNotCalled(t, "Complete")
}

func TestMemoService_Generate_InvalidLanguage(t *testing.T) {
	svc, cache, chat := memoFixture(t)

	cache.Put("doc1", cleanAnalysis())

	_, err := svc.Generate(context.Background(), "doc1", "fr")

	assert.ErrorIs(t, err, domain.ErrInvalidMemoLanguage)
	chat.AssertNotCalled(t, "Complete")
}

func TestMemoService_Generate_GenerationFailureWrapped(t *testing.T) {
	svc, cache, chat := memoFixture(t)
	ctx := context.Background()

	cache.Put("doc1", cleanAnalysis())
	chat.On("Complete", ctx, mock.Anything, mock.Anything, false).
		Return("", assert.AnError).Once()

	_, err := svc.Generate(ctx, "doc1", "en")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeGenerationFailed, domainErr.Code)
	assert.ErrorIs(t, err, assert.AnError)
}
