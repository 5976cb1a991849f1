// Package catalog holds the static level/goal reference data: learning goals
// and the pre-authored lesson templates curricula are assembled from.
package catalog

// GoalID identifies a learning goal.
type GoalID string

const (
	GoalTOPIK      GoalID = "topik"
	GoalUniversity GoalID = "university"
	GoalCareer     GoalID = "career"
	GoalMarriage   GoalID = "marriage"
	GoalGeneral    GoalID = "general"
)

// Valid reports whether g is one of the enumerated goals.
func (g GoalID) Valid() bool {
	switch g {
	case GoalTOPIK, GoalUniversity, GoalCareer, GoalMarriage, GoalGeneral:
		return true
	}
	return false
}

// Category classifies a lesson template.
type Category string

const (
	CategoryVocabulary   Category = "vocabulary"
	CategoryGrammar      Category = "grammar"
	CategoryConversation Category = "conversation"
	CategoryReading      Category = "reading"
	CategoryWriting      Category = "writing"
	CategoryListening    Category = "listening"
	CategoryCulture      Category = "culture"
)

// Valid reports whether c is one of the enumerated categories.
func (c Category) Valid() bool {
	switch c {
	case CategoryVocabulary, CategoryGrammar, CategoryConversation,
		CategoryReading, CategoryWriting, CategoryListening, CategoryCulture:
		return true
	}
	return false
}

// LearningGoal is immutable reference data describing a target outcome.
type LearningGoal struct {
	ID                GoalID   `json:"id" yaml:"id"`
	Name              string   `json:"name" yaml:"name"`
	Description       string   `json:"description" yaml:"description"`
	TargetLevel       int      `json:"targetLevel" yaml:"target_level"`
	EstimatedDuration string   `json:"estimatedDuration" yaml:"estimated_duration"`
	Requirements      []string `json:"requirements" yaml:"requirements"`
	Benefits          []string `json:"benefits" yaml:"benefits"`
}

// Exercise is a value object nested in a lesson's content payload.
type Exercise struct {
	ID            string   `json:"id" yaml:"id"`
	Type          string   `json:"type" yaml:"type"`
	Question      string   `json:"question" yaml:"question"`
	Options       []string `json:"options,omitempty" yaml:"options"`
	CorrectAnswer int      `json:"correctAnswer" yaml:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty" yaml:"explanation"`
}

// ConversationLine is one utterance in a scripted dialogue.
type ConversationLine struct {
	Speaker     string `json:"speaker" yaml:"speaker"`
	Text        string `json:"text" yaml:"text"`
	Translation string `json:"translation,omitempty" yaml:"translation"`
}

// ConversationScript is a scripted dialogue inside a lesson.
type ConversationScript struct {
	ID           string             `json:"id" yaml:"id"`
	Title        string             `json:"title" yaml:"title"`
	Participants []string           `json:"participants" yaml:"participants"`
	Lines        []ConversationLine `json:"lines" yaml:"lines"`
}

// LessonContent is the optional content payload of a lesson template.
type LessonContent struct {
	Vocabulary          []string             `json:"vocabulary,omitempty" yaml:"vocabulary"`
	Grammar             []string             `json:"grammar,omitempty" yaml:"grammar"`
	Exercises           []Exercise           `json:"exercises,omitempty" yaml:"exercises"`
	CulturalNotes       []string             `json:"culturalNotes,omitempty" yaml:"cultural_notes"`
	ReadingText         string               `json:"readingText,omitempty" yaml:"reading_text"`
	ConversationScripts []ConversationScript `json:"conversationScripts,omitempty" yaml:"conversation_scripts"`
}

// LessonTemplate is a pre-authored unit of learning content. ID is the
// template slug; the curriculum builder namespaces it per generated instance.
// Prerequisites reference template ids placed earlier in the same sequence.
type LessonTemplate struct {
	ID            string        `json:"id" yaml:"id"`
	Title         string        `json:"title" yaml:"title"`
	Description   string        `json:"description" yaml:"description"`
	Category      Category      `json:"type" yaml:"category"`
	Difficulty    int           `json:"difficulty" yaml:"difficulty"`
	EstimatedTime int           `json:"estimatedTime" yaml:"estimated_time"`
	Prerequisites []string      `json:"prerequisites" yaml:"prerequisites"`
	Objectives    []string      `json:"objectives" yaml:"objectives"`
	Content       LessonContent `json:"content" yaml:"content"`
	Completed     bool          `json:"isCompleted" yaml:"-"`
	Order         int           `json:"order" yaml:"-"`
}
