package service

import (
	"context"
	"errors"
	"testing"

	"github.com/planloop/planloop/internal/model"
	"github.com/planloop/planloop/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tmc/langchaingo/llms"
)

type fakeLLM struct {
	response string
	err      error

	lastMessages []llms.MessageContent
}

func (f *fakeLLM) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.lastMessages = messages
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeLLM) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

type fakeProfileRepo struct {
	profile *model.Profile
}

func (f *fakeProfileRepo) ByUserID(userID string) (*model.Profile, error) {
	if f.profile == nil {
		return nil, repository.ErrProfileNotFound
	}
	return f.profile, nil
}

func (f *fakeProfileRepo) Upsert(profile *model.Profile) error {
	f.profile = profile
	return nil
}

type fakeContextFileRepo struct {
	files []*model.ContextFile
}

func (f *fakeContextFileRepo) Create(file *model.ContextFile) error {
	f.files = append(f.files, file)
	return nil
}

func (f *fakeContextFileRepo) ContextFiles(userID string) ([]*model.ContextFile, error) {
	return f.files, nil
}

func newTestAIService(llm llms.Model, profile *model.Profile, files []*model.ContextFile) *AIService {
	return NewAIService(
		&fakeProfileRepo{profile: profile},
		&fakeContextFileRepo{files: files},
		llm,
		"gemini-2.0-flash",
		"gemini-2.0-flash",
	)
}

func TestBuildUserContextWithoutProfile(t *testing.T) {
	s := newTestAIService(&fakeLLM{}, nil, nil)

	userContext, err := s.BuildUserContext("user-1")
	require.NoError(t, err)

	assert.Contains(t, userContext, "# User Profile")
	assert.Contains(t, userContext, "# Context Files")
	assert.NotContains(t, userContext, "## Who I Am")
}

func TestBuildUserContextMissingFieldsNotSpecified(t *testing.T) {
	profile := &model.Profile{
		UserID: "user-1",
		WhoIAm: "A software engineer",
	}
	s := newTestAIService(&fakeLLM{}, profile, nil)

	userContext, err := s.BuildUserContext("user-1")
	require.NoError(t, err)

	assert.Contains(t, userContext, "## Who I Am\nA software engineer")
	assert.Contains(t, userContext, "## What I Want to Achieve\nNot specified")
	assert.Contains(t, userContext, "## What I Want in Life\nNot specified")
}

func TestBuildUserContextIncludesFiles(t *testing.T) {
	files := []*model.ContextFile{
		{Name: "notes.pdf", Type: "application/pdf", ExtractedText: "Quarterly planning notes"},
		{Name: "photo.png", Type: "image/png", ExtractedText: ""},
	}
	s := newTestAIService(&fakeLLM{}, nil, files)

	userContext, err := s.BuildUserContext("user-1")
	require.NoError(t, err)

	assert.Contains(t, userContext, "## notes.pdf (application/pdf)\nQuarterly planning notes")
	assert.Contains(t, userContext, "## photo.png (image/png)\nContent not extracted")
}

func TestGenerateTodosParsesLines(t *testing.T) {
	llm := &fakeLLM{response: "1. Review the launch checklist\n\n2) Email the design team\n- Block two hours for writing\n* Stretch\n• Plan dinner"}
	s := newTestAIService(llm, nil, nil)

	todos, err := s.GenerateTodos(context.Background(), "user-1", "")
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Review the launch checklist",
		"Email the design team",
		"Block two hours for writing",
		"Stretch",
		"Plan dinner",
	}, todos)
}

func TestGenerateTodosCustomPromptForwarded(t *testing.T) {
	llm := &fakeLLM{response: "Do the thing"}
	s := newTestAIService(llm, nil, nil)

	_, err := s.GenerateTodos(context.Background(), "user-1", "Focus on health today")
	require.NoError(t, err)

	require.Len(t, llm.lastMessages, 2)
	human := llm.lastMessages[1]
	text, ok := human.Parts[0].(llms.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "Focus on health today")
}

func TestGenerateTodosError(t *testing.T) {
	llm := &fakeLLM{err: errors.New("quota exceeded")}
	s := newTestAIService(llm, nil, nil)

	_, err := s.GenerateTodos(context.Background(), "user-1", "")
	require.Error(t, err)
}

func TestAnalyzeTodoValidResponse(t *testing.T) {
	llm := &fakeLLM{response: `{"relevance_score": 85, "reasoning": "Directly supports your launch goal", "improved_todo": "Review the launch checklist before standup", "recommended_time_window": "high-energy"}`}
	s := newTestAIService(llm, nil, nil)

	analysis := s.AnalyzeTodo(context.Background(), "user-1", "Review the launch checklist")
	require.NotNil(t, analysis)

	assert.Equal(t, 85, analysis.RelevanceScore)
	assert.Equal(t, "Directly supports your launch goal", analysis.Reasoning)
	require.NotNil(t, analysis.ImprovedTodo)
	assert.Equal(t, "Review the launch checklist before standup", *analysis.ImprovedTodo)
	assert.Equal(t, TimeWindowHighEnergy, analysis.RecommendedTimeWindow)
}

func TestAnalyzeTodoStripsCodeFence(t *testing.T) {
	llm := &fakeLLM{response: "```json\n{\"relevance_score\": 40, \"reasoning\": \"Tangential\", \"improved_todo\": null, \"recommended_time_window\": \"low-energy\"}\n```"}
	s := newTestAIService(llm, nil, nil)

	analysis := s.AnalyzeTodo(context.Background(), "user-1", "Reorganize bookmarks")

	assert.Equal(t, 40, analysis.RelevanceScore)
	assert.Nil(t, analysis.ImprovedTodo)
	assert.Equal(t, TimeWindowLowEnergy, analysis.RecommendedTimeWindow)
}

func TestAnalyzeTodoFallbackOnError(t *testing.T) {
	llm := &fakeLLM{err: errors.New("connection reset")}
	s := newTestAIService(llm, nil, nil)

	analysis := s.AnalyzeTodo(context.Background(), "user-1", "Anything")

	assert.Equal(t, 50, analysis.RelevanceScore)
	assert.Equal(t, "Unable to analyze due to error", analysis.Reasoning)
	assert.Nil(t, analysis.ImprovedTodo)
	assert.Equal(t, TimeWindowMediumEnergy, analysis.RecommendedTimeWindow)
}

func TestAnalyzeTodoFallbackOnBadJSON(t *testing.T) {
	llm := &fakeLLM{response: "Sure! Here's my analysis of your todo."}
	s := newTestAIService(llm, nil, nil)

	analysis := s.AnalyzeTodo(context.Background(), "user-1", "Anything")

	assert.Equal(t, 50, analysis.RelevanceScore)
	assert.Equal(t, TimeWindowMediumEnergy, analysis.RecommendedTimeWindow)
}

func TestParseAnalysisRejectsOutOfRangeScore(t *testing.T) {
	_, err := parseAnalysis(`{"relevance_score": 140, "reasoning": "x", "improved_todo": null, "recommended_time_window": "defer"}`)
	require.Error(t, err)
}

func TestParseAnalysisRejectsUnknownWindow(t *testing.T) {
	_, err := parseAnalysis(`{"relevance_score": 50, "reasoning": "x", "improved_todo": null, "recommended_time_window": "midnight"}`)
	require.Error(t, err)
}

func TestParseTodoLinesEmptyInput(t *testing.T) {
	assert.Empty(t, parseTodoLines(""))
	assert.Empty(t, parseTodoLines("\n\n  \n"))
}
