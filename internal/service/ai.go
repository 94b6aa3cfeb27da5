package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/planloop/planloop/internal/repository"
	"github.com/tmc/langchaingo/llms"
)

// Recommended time windows for the analysis operation.
const (
	TimeWindowHighEnergy   = "high-energy"
	TimeWindowMediumEnergy = "medium-energy"
	TimeWindowLowEnergy    = "low-energy"
	TimeWindowDefer        = "defer"
)

// TodoAnalysis is the structured relevance judgment for a single todo.
type TodoAnalysis struct {
	RelevanceScore        int     `json:"relevance_score"`
	Reasoning             string  `json:"reasoning"`
	ImprovedTodo          *string `json:"improved_todo"`
	RecommendedTimeWindow string  `json:"recommended_time_window"`
}

// AIService aggregates user context and talks to the generative-language
// API. The LLM client is injected at construction.
type AIService struct {
	profileRepo     repository.ProfileRepository
	contextFileRepo repository.ContextFileRepository
	llm             llms.Model
	generateModel   string
	analyzeModel    string
}

func NewAIService(
	profileRepo repository.ProfileRepository,
	contextFileRepo repository.ContextFileRepository,
	llm llms.Model,
	generateModel string,
	analyzeModel string,
) *AIService {
	return &AIService{
		profileRepo:     profileRepo,
		contextFileRepo: contextFileRepo,
		llm:             llm,
		generateModel:   generateModel,
		analyzeModel:    analyzeModel,
	}
}

// BuildUserContext assembles a single text document from the user's
// profile and the extracted text of all their context files. No length
// capping is applied; the document goes to the model as-is.
func (s *AIService) BuildUserContext(userID string) (string, error) {
	profile, err := s.profileRepo.ByUserID(userID)
	if err != nil && !errors.Is(err, repository.ErrProfileNotFound) {
		return "", fmt.Errorf("failed to get profile: %w", err)
	}

	contextFiles, err := s.contextFileRepo.ContextFiles(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get context files: %w", err)
	}

	var sb strings.Builder
	sb.WriteString("# User Profile\n\n")
	if profile != nil {
		fmt.Fprintf(&sb, "## Who I Am\n%s\n\n", orNotSpecified(profile.WhoIAm))
		fmt.Fprintf(&sb, "## What I Want to Achieve\n%s\n\n", orNotSpecified(profile.WhatIWantToAchieve))
		fmt.Fprintf(&sb, "## What I Want in Life\n%s\n\n", orNotSpecified(profile.WhatIWantInLife))
	}

	sb.WriteString("# Context Files\n\n")
	for _, file := range contextFiles {
		fmt.Fprintf(&sb, "## %s (%s)\n", file.Name, file.Type)
		text := file.ExtractedText
		if text == "" {
			text = "Content not extracted"
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	}

	return sb.String(), nil
}

func orNotSpecified(value string) string {
	if value == "" {
		return "Not specified"
	}
	return value
}

// GenerateTodos asks the model for a daily todo list grounded in the
// user's context. Call failures propagate to the caller.
func (s *AIService) GenerateTodos(ctx context.Context, userID, userPrompt string) ([]string, error) {
	userContext, err := s.BuildUserContext(userID)
	if err != nil {
		return nil, err
	}

	var userMessage string
	if userPrompt != "" {
		userMessage = fmt.Sprintf("%s\n\nHere is my context:\n\n%s", userPrompt, userContext)
	} else {
		userMessage = fmt.Sprintf("Based on my current context, generate 5-10 high-impact todo items for today that will move me closer to my goals:\n\n%s", userContext)
	}

	text, err := s.generateContent(ctx, s.generateModel, generateSystemInstruction, userMessage)
	if err != nil {
		return nil, fmt.Errorf("failed to generate todos: %w", err)
	}

	return parseTodoLines(text), nil
}

// AnalyzeTodo scores a candidate todo against the user's context.
// Any call or parse failure is downgraded to a fallback judgment;
// callers always get an analysis, never an error.
func (s *AIService) AnalyzeTodo(ctx context.Context, userID, todoText string) *TodoAnalysis {
	userContext, err := s.BuildUserContext(userID)
	if err != nil {
		slog.Error("failed to build user context for analysis", "error", err, "user_id", userID)
		return fallbackAnalysis()
	}

	userMessage := fmt.Sprintf("User Context:\n%s\n\nTodo to analyze: %q\n\nProvide JSON response with relevance_score (0-100), reasoning, improved_todo and recommended_time_window.", userContext, todoText)

	text, err := s.generateContent(ctx, s.analyzeModel, analyzeSystemInstruction, userMessage)
	if err != nil {
		slog.Error("failed to analyze todo", "error", err, "user_id", userID)
		return fallbackAnalysis()
	}

	analysis, err := parseAnalysis(text)
	if err != nil {
		slog.Warn("model returned unparsable analysis", "error", err, "user_id", userID)
		return fallbackAnalysis()
	}

	return analysis
}

func (s *AIService) generateContent(ctx context.Context, model, systemInstruction, userMessage string) (string, error) {
	content := []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, systemInstruction),
		llms.TextParts(llms.ChatMessageTypeHuman, userMessage),
	}

	resp, err := s.llm.GenerateContent(ctx, content, llms.WithModel(model))
	if err != nil {
		return "", err
	}

	if len(resp.Choices) == 0 {
		return "", errors.New("model returned no choices")
	}

	return resp.Choices[0].Content, nil
}

var listMarkerPattern = regexp.MustCompile(`^(\d+[.)]|[-*•])\s+`)

// parseTodoLines splits model output into todo strings: one per line,
// blank lines dropped, leading list markers stripped.
func parseTodoLines(text string) []string {
	todos := []string{}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = listMarkerPattern.ReplaceAllString(line, "")
		if line == "" {
			continue
		}
		todos = append(todos, line)
	}
	return todos
}

var codeFencePattern = regexp.MustCompile("(?s)^```(?:json)?\\s*(.*?)\\s*```$")

// parseAnalysis validates the model's JSON against the expected shape.
func parseAnalysis(text string) (*TodoAnalysis, error) {
	text = strings.TrimSpace(text)
	if m := codeFencePattern.FindStringSubmatch(text); m != nil {
		text = m[1]
	}

	var analysis TodoAnalysis
	err := json.Unmarshal([]byte(text), &analysis)
	if err != nil {
		return nil, fmt.Errorf("invalid analysis JSON: %w", err)
	}

	if analysis.RelevanceScore < 0 || analysis.RelevanceScore > 100 {
		return nil, fmt.Errorf("relevance score out of range: %d", analysis.RelevanceScore)
	}

	switch analysis.RecommendedTimeWindow {
	case TimeWindowHighEnergy, TimeWindowMediumEnergy, TimeWindowLowEnergy, TimeWindowDefer:
	default:
		return nil, fmt.Errorf("unknown time window: %q", analysis.RecommendedTimeWindow)
	}

	return &analysis, nil
}

func fallbackAnalysis() *TodoAnalysis {
	return &TodoAnalysis{
		RelevanceScore:        50,
		Reasoning:             "Unable to analyze due to error",
		ImprovedTodo:          nil,
		RecommendedTimeWindow: TimeWindowMediumEnergy,
	}
}
