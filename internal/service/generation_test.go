package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/faisalmelhim/AI-Hackathon/internal/domain"
)

// MockChatClient mocks the chat completion client
type MockChatClient struct {
	mock.Mock
}

func (m *MockChatClient) Complete(ctx context.Context, messages []openai.ChatCompletionMessage, temperature float32, jsonMode bool) (string, error) {
	args := m.Called(ctx, messages, temperature, jsonMode)
	return args.String(0), args.Error(1)
}

const validAnalysisJSON = `{
	"company_name": "Innovate Inc.",
	"sector": "Enterprise SaaS",
	"financial_metrics": {"revenue": {"value": 50, "unit": "USD millions", "year": 2024, "page": 12}},
	"key_metrics": [{"metric": "Net Revenue Retention", "value": "120%", "importance": "High", "page": 15}],
	"red_flags": [],
	"business_overview": "Innovate Inc. provides workflow automation platforms.",
	"competitive_position": "Strong position against its main competitor.",
	"citations": [{"page": 12, "quote": "Revenue reached $50 million"}]
}`

func testChunks() []RetrievedChunk {
	return []RetrievedChunk{
		{Text: "Revenue reached $50 million in 2024.", Page: 12},
		{Text: "Net revenue retention was 120%.", Page: 15},
	}
}

func TestGenerationService_Analyze_Success(t *testing.T) {
	mockChat := new(MockChatClient)
	svc := NewGenerationService(mockChat)
	ctx := context.Background()

	mockChat.On("Complete", ctx, mock.Anything, float32(analysisTemperature), true).Return(validAnalysisJSON, nil).Once()

	result, err := svc.Analyze(ctx, testChunks(), "")

	require.NoError(t, err)
	assert.Equal(t, "Innovate Inc.", result.CompanyName)
	assert.Equal(t, "Enterprise SaaS", result.Sector)
	require.NotNil(t, result.FinancialMetrics.Revenue)
	assert.Equal(t, 50.0, *result.FinancialMetrics.Revenue.Value)
	assert.Empty(t, result.RedFlags)
	mockChat.AssertExpectations(t)
}

func TestGenerationService_Analyze_ContextHasPageMarkers(t *testing.T) {
	mockChat := new(MockChatClient)
	svc := NewGenerationService(mockChat)
	ctx := context.Background()

	var captured []openai.ChatCompletionMessage
	mockChat.On("Complete", ctx, mock.Anything, mock.Anything, true).
		Run(func(args mock.Arguments) {
			captured = args.Get(1).([]openai.ChatCompletionMessage)
		}).
		Return(validAnalysisJSON, nil).Once()

	_, err := svc.Analyze(ctx, testChunks(), "")
	require.NoError(t, err)

	require.Len(t, captured, 2)
	assert.Equal(t, openai.ChatMessageRoleSystem, captured[0].Role)
	userContent := captured[1].Content
	assert.Contains(t, userContent, "--- PAGE 12 ---")
	assert.Contains(t, userContent, "--- PAGE 15 ---")
	assert.Less(t, strings.Index(userContent, "--- PAGE 12 ---"), strings.Index(userContent, "--- PAGE 15 ---"))
}

func TestGenerationService_Analyze_RetryAfterParseFailure(t *testing.T) {
	mockChat := new(MockChatClient)
	svc := NewGenerationService(mockChat)
	ctx := context.Background()

	mockChat.On("Complete", ctx, mock.MatchedBy(func(msgs []openai.ChatCompletionMessage) bool {
		return len(msgs) == 2
	}), mock.Anything, true).Return("Sure! Here is the JSON you asked for...", nil).Once()

	// The retry carries the malformed response and the corrective instruction.
	mockChat.On("Complete", ctx, mock.MatchedBy(func(msgs []openai.ChatCompletionMessage) bool {
		if len(msgs) != 4 {
			return false
		}
		return msgs[2].Role == openai.ChatMessageRoleAssistant &&
			strings.Contains(msgs[2].Content, "Sure!") &&
			strings.Contains(msgs[3].Content, "VALID JSON only")
	}), mock.Anything, true).Return(validAnalysisJSON, nil).Once()

	result, err := svc.Analyze(ctx, testChunks(), "")

	require.NoError(t, err)
	assert.Equal(t, "Innovate Inc.", result.CompanyName)
	mockChat.AssertExpectations(t)
}

func TestGenerationService_Analyze_TwoParseFailures(t *testing.T) {
	mockChat := new(MockChatClient)
	svc := NewGenerationService(mockChat)
	ctx := context.Background()

	mockChat.On("Complete", ctx, mock.Anything, mock.Anything, true).Return("not json", nil).Twice()

	result, err := svc.Analyze(ctx, testChunks(), "")

	assert.Nil(t, result)
	assert.ErrorIs(t, err, domain.ErrInvalidModelOutput)
	mockChat.AssertExpectations(t)
}

func TestGenerationService_Analyze_RetryAfterTransportFailure(t *testing.T) {
	mockChat := new(MockChatClient)
	svc := NewGenerationService(mockChat)
	ctx := context.Background()

	mockChat.On("Complete", ctx, mock.Anything, mock.Anything, true).Return("", errors.New("rate limit exceeded")).Once()
	mockChat.On("Complete", ctx, mock.Anything, mock.Anything, true).Return(validAnalysisJSON, nil).Once()

	result, err := svc.Analyze(ctx, testChunks(), "")

	require.NoError(t, err)
	assert.Equal(t, "Innovate Inc.", result.CompanyName)
	mockChat.AssertExpectations(t)
}

func TestGenerationService_Analyze_TwoTransportFailures(t *testing.T) {
	mockChat := new(MockChatClient)
	svc := NewGenerationService(mockChat)
	ctx := context.Background()

	cause := errors.New("service unavailable")
	mockChat.On("Complete", ctx, mock.Anything, mock.Anything, true).Return("", cause).Twice()

	result, err := svc.Analyze(ctx, testChunks(), "")

	assert.Nil(t, result)
	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.ErrCodeGenerationFailed, domainErr.Code)
	assert.ErrorIs(t, err, cause)
	mockChat.AssertExpectations(t)
}

func TestGenerationService_Analyze_NoThirdAttempt(t *testing.T) {
	mockChat := new(MockChatClient)
	svc := NewGenerationService(mockChat)
	ctx := context.Background()

	mockChat.On("Complete", ctx, mock.Anything, mock.Anything, true).Return("still not json", nil)

	_, err := svc.Analyze(ctx, testChunks(), "")

	assert.Error(t, err)
	mockChat.AssertNumberOfCalls(t, "Complete", 2)
}

func TestAssembleContext_Truncation(t *testing.T) {
	big := strings.Repeat("x", maxContextChars)
	chunks := []RetrievedChunk{
		{Text: big, Page: 1},
		{Text: "tail content that gets dropped", Page: 2},
	}

	assembled := assembleContext(chunks)

	assert.Len(t, assembled, maxContextChars)
	assert.NotContains(t, assembled, "tail content")
}
