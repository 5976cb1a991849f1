// Package tutor implements the AI tutoring operations: quiz generation,
// personalized lessons, conversation practice, and Korean text and culture
// content analysis. Each operation is pinned to one provider.
package tutor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/kolearn/kolearn/internal/ai"
)

// ErrUnparsable marks a provider response that was not the JSON the prompt
// asked for. Callers use it to distinguish "model went off script" from a
// transport or provider failure, since the two get different fallbacks.
var ErrUnparsable = errors.New("model response not parsable")

const defaultMaxTokens = 1000

// Skill is a lesson focus area.
type Skill string

const (
	SkillReading   Skill = "reading"
	SkillWriting   Skill = "writing"
	SkillListening Skill = "listening"
	SkillSpeaking  Skill = "speaking"
	SkillCulture   Skill = "culture"
)

func (s Skill) Valid() bool {
	switch s {
	case SkillReading, SkillWriting, SkillListening, SkillSpeaking, SkillCulture:
		return true
	}
	return false
}

// Persona is a conversation partner role.
type Persona string

const (
	PersonaFriend    Persona = "friend"
	PersonaTeacher   Persona = "teacher"
	PersonaColleague Persona = "colleague"
	PersonaFamily    Persona = "family"
	PersonaService   Persona = "service"
)

func (p Persona) Valid() bool {
	switch p {
	case PersonaFriend, PersonaTeacher, PersonaColleague, PersonaFamily, PersonaService:
		return true
	}
	return false
}

// ContentType is a category of Korean culture content.
type ContentType string

const (
	ContentKPop    ContentType = "kpop"
	ContentKDrama  ContentType = "kdrama"
	ContentCuisine ContentType = "cuisine"
	ContentVariety ContentType = "variety"
	ContentTravel  ContentType = "travel"
)

func (c ContentType) Valid() bool {
	switch c {
	case ContentKPop, ContentKDrama, ContentCuisine, ContentVariety, ContentTravel:
		return true
	}
	return false
}

// QuizQuestion is one generated quiz item.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correctAnswer"`
	Explanation   string   `json:"explanation"`
	Type          string   `json:"type"`
}

// Exercise is an interactive exercise inside a generated lesson.
type Exercise struct {
	Question string `json:"question"`
	Answer   string `json:"answer,omitempty"`
	Type     string `json:"type,omitempty"`
}

// Lesson is a generated personalized lesson.
type Lesson struct {
	Title      string     `json:"title"`
	Content    string     `json:"content"`
	Exercises  []Exercise `json:"exercises"`
	Vocabulary []string   `json:"vocabulary"`
}

// TextAnalysis is the breakdown of a Korean text.
type TextAnalysis struct {
	Vocabulary    []string `json:"vocabulary"`
	Grammar       []string `json:"grammar"`
	CulturalNotes []string `json:"culturalNotes"`
	Difficulty    int      `json:"difficulty"`
}

// ContentAnalysis is the learning breakdown of Korean culture content.
type ContentAnalysis struct {
	Vocabulary       []string `json:"vocabulary"`
	CulturalInsights []string `json:"culturalInsights"`
	LearningPoints   []string `json:"learningPoints"`
}

// Config holds one provider per operation plus the usage tracker. Every
// provider is required; there is no cross-provider failover.
type Config struct {
	Quiz     ai.Provider // quiz generation
	Lesson   ai.Provider // personalized lessons
	Partner  ai.Provider // conversation practice
	Analysis ai.Provider // Korean text analysis
	Content  ai.Provider // culture content analysis
	Usage    ai.UsageTracker
}

// Tutor runs the AI tutoring operations.
type Tutor struct {
	quiz     ai.Provider
	lesson   ai.Provider
	partner  ai.Provider
	analysis ai.Provider
	content  ai.Provider
	usage    ai.UsageTracker
}

// New creates a Tutor. All five providers must be set.
func New(cfg Config) (*Tutor, error) {
	for name, p := range map[string]ai.Provider{
		"quiz": cfg.Quiz, "lesson": cfg.Lesson, "partner": cfg.Partner,
		"analysis": cfg.Analysis, "content": cfg.Content,
	} {
		if p == nil {
			return nil, fmt.Errorf("%s provider is required", name)
		}
	}
	usage := cfg.Usage
	if usage == nil {
		usage = ai.NewInMemoryUsage()
	}
	return &Tutor{
		quiz:     cfg.Quiz,
		lesson:   cfg.Lesson,
		partner:  cfg.Partner,
		analysis: cfg.Analysis,
		content:  cfg.Content,
		usage:    usage,
	}, nil
}

// GenerateQuiz creates count quiz questions about topic for the given level.
// count defaults to 5 when non-positive.
func (t *Tutor) GenerateQuiz(ctx context.Context, userID, topic string, level, count int) ([]QuizQuestion, error) {
	if count <= 0 {
		count = 5
	}

	resp, err := t.quiz.Complete(ctx, ai.CompletionRequest{
		Messages: []ai.Message{
			{Role: "system", Content: quizSystemPrompt(topic, level, count)},
			{Role: "user", Content: quizUserPrompt(topic, level)},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return nil, fmt.Errorf("quiz completion: %w", err)
	}
	t.record(userID, "quiz", resp.TotalTokens())

	content := stripCodeFence(resp.Content)
	if err := validateJSON(quizSchemaLoader, content); err != nil {
		slog.Warn("quiz response failed validation", "error", err)
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	var questions []QuizQuestion
	if err := json.Unmarshal([]byte(content), &questions); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	return questions, nil
}

// GenerateLesson creates a personalized lesson for the level, skill, and topic.
func (t *Tutor) GenerateLesson(ctx context.Context, userID string, level int, skill Skill, topic string) (Lesson, error) {
	resp, err := t.lesson.Complete(ctx, ai.CompletionRequest{
		Messages: []ai.Message{
			{Role: "system", Content: lessonSystemPrompt(level, skill, topic)},
			{Role: "user", Content: lessonUserPrompt(topic, skill)},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return Lesson{}, fmt.Errorf("lesson completion: %w", err)
	}
	t.record(userID, "lesson", resp.TotalTokens())

	content := stripCodeFence(resp.Content)
	if err := validateJSON(lessonSchemaLoader, content); err != nil {
		slog.Warn("lesson response failed validation", "error", err)
		return Lesson{}, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	var lesson Lesson
	if err := json.Unmarshal([]byte(content), &lesson); err != nil {
		return Lesson{}, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	if lesson.Exercises == nil {
		lesson.Exercises = []Exercise{}
	}
	if lesson.Vocabulary == nil {
		lesson.Vocabulary = []string{}
	}
	return lesson, nil
}

// PartnerReply produces the conversation partner's next turn. history carries
// the prior turns of the practice session, oldest first.
func (t *Tutor) PartnerReply(ctx context.Context, userID string, persona Persona, level int, topic string, history []ai.Message) (string, error) {
	if !persona.Valid() {
		return "", fmt.Errorf("unknown persona %q", persona)
	}

	messages := []ai.Message{
		{Role: "system", Content: partnerSystemPrompt(persona, level, topic)},
	}
	if len(history) == 0 {
		messages = append(messages, ai.Message{Role: "user", Content: partnerUserPrompt(topic)})
	} else {
		messages = append(messages, history...)
	}

	resp, err := t.partner.Complete(ctx, ai.CompletionRequest{
		Messages:    messages,
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("partner completion: %w", err)
	}
	t.record(userID, "conversation", resp.TotalTokens())

	return resp.Content, nil
}

// AnalyzeText breaks a Korean text down for the given learner level. The
// input is NFC-normalized first so decomposed jamo sequences analyze the same
// as precomposed syllables.
func (t *Tutor) AnalyzeText(ctx context.Context, userID, text string, level int) (TextAnalysis, error) {
	text = norm.NFC.String(text)

	resp, err := t.analysis.Complete(ctx, ai.CompletionRequest{
		Messages: []ai.Message{
			{Role: "system", Content: analyzeTextSystemPrompt()},
			{Role: "user", Content: analyzeTextUserPrompt(text, level)},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return TextAnalysis{}, fmt.Errorf("analysis completion: %w", err)
	}
	t.record(userID, "analyze_text", resp.TotalTokens())

	content := stripCodeFence(resp.Content)
	if err := validateJSON(textAnalysisSchemaLoader, content); err != nil {
		slog.Warn("text analysis response failed validation", "error", err)
		return TextAnalysis{}, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	var analysis TextAnalysis
	if err := json.Unmarshal([]byte(content), &analysis); err != nil {
		return TextAnalysis{}, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	return analysis, nil
}

// AnalyzeContent extracts learning material from Korean culture content.
func (t *Tutor) AnalyzeContent(ctx context.Context, userID, content string, contentType ContentType) (ContentAnalysis, error) {
	if !contentType.Valid() {
		return ContentAnalysis{}, fmt.Errorf("unknown content type %q", contentType)
	}

	resp, err := t.content.Complete(ctx, ai.CompletionRequest{
		Messages: []ai.Message{
			{Role: "system", Content: analyzeContentSystemPrompt(contentType)},
			{Role: "user", Content: analyzeContentUserPrompt(content, contentType)},
		},
		MaxTokens:   defaultMaxTokens,
		Temperature: 0.3,
	})
	if err != nil {
		return ContentAnalysis{}, fmt.Errorf("content completion: %w", err)
	}
	t.record(userID, "analyze_content", resp.TotalTokens())

	body := stripCodeFence(resp.Content)
	if err := validateJSON(contentAnalysisSchemaLoader, body); err != nil {
		slog.Warn("content analysis response failed validation", "error", err)
		return ContentAnalysis{}, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}

	var analysis ContentAnalysis
	if err := json.Unmarshal([]byte(body), &analysis); err != nil {
		return ContentAnalysis{}, fmt.Errorf("%w: %v", ErrUnparsable, err)
	}
	return analysis, nil
}

func (t *Tutor) record(userID, operation string, tokens int) {
	if err := t.usage.Record(userID, operation, tokens); err != nil {
		slog.Warn("failed to record usage", "operation", operation, "error", err)
	}
}

// stripCodeFence removes a surrounding markdown code fence, which models emit
// even when told not to.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
