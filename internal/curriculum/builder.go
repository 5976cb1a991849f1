package curriculum

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/kolearn/kolearn/internal/catalog"
)

// LearningStyle is a study preference. It is recorded on the curriculum but
// does not affect lesson selection yet; keep it a documented no-op.
type LearningStyle string

const (
	StyleVisual      LearningStyle = "visual"
	StyleAuditory    LearningStyle = "auditory"
	StyleKinesthetic LearningStyle = "kinesthetic"
	StyleMixed       LearningStyle = "mixed"
)

// Preferences are the study preferences supplied with a build request.
// FocusAreas and LearningStyle are recorded as intent only.
type Preferences struct {
	StudyTimePerDay int           `json:"studyTimePerDay"` // minutes, must be positive
	FocusAreas      []string      `json:"focusAreas"`
	LearningStyle   LearningStyle `json:"learningStyle"`
}

// DefaultPreferences returns the preferences applied when a build request
// omits them.
func DefaultPreferences() Preferences {
	return Preferences{
		StudyTimePerDay: 30,
		FocusAreas:      []string{},
		LearningStyle:   StyleMixed,
	}
}

// Curriculum is a generated, ordered lesson plan for one user.
type Curriculum struct {
	ID                string                   `json:"id"`
	UserID            string                   `json:"userId"`
	Title             string                   `json:"title"`
	Description       string                   `json:"description"`
	Level             int                      `json:"level"`
	Goal              catalog.GoalID           `json:"goal"`
	EstimatedDuration int                      `json:"estimatedDuration"` // days
	Lessons           []catalog.LessonTemplate `json:"lessons"`
	Progress          int                      `json:"progress"` // percentage 0-100
	Preferences       Preferences              `json:"preferences"`
	CreatedAt         time.Time                `json:"createdAt"`
	UpdatedAt         time.Time                `json:"updatedAt"`
}

// Builder builds curricula from a catalog.
type Builder struct {
	cat *catalog.Catalog
}

// NewBuilder creates a curriculum builder over the given catalog.
func NewBuilder(cat *catalog.Catalog) *Builder {
	return &Builder{cat: cat}
}

// Build assembles a complete curriculum. Level is clamped to [0,6].
// StudyTimePerDay must be positive; the estimated duration is fixed at build
// time and is not recomputed if the preference later changes.
func (b *Builder) Build(userID string, level int, goal catalog.GoalID, prefs Preferences) (Curriculum, error) {
	if prefs.StudyTimePerDay <= 0 {
		return Curriculum{}, fmt.Errorf("studyTimePerDay must be positive, got %d", prefs.StudyTimePerDay)
	}
	level = clampLevel(level)

	lessons := Assemble(b.cat, level, goal)

	id := "curriculum-" + uuid.NewString()

	// Give each generated lesson instance a globally unique id, namespaced by
	// the curriculum, so persisted curricula never collide on the template
	// slug. Prerequisite references are rewritten to match. The prerequisite
	// slice is cloned first because the catalog hands out shallow copies.
	for i := range lessons {
		lessons[i].ID = id + "/" + lessons[i].ID
		if len(lessons[i].Prerequisites) > 0 {
			pres := make([]string, len(lessons[i].Prerequisites))
			for j, pre := range lessons[i].Prerequisites {
				pres[j] = id + "/" + pre
			}
			lessons[i].Prerequisites = pres
		}
	}

	totalMinutes := 0
	for _, l := range lessons {
		totalMinutes += l.EstimatedTime
	}

	now := time.Now()
	return Curriculum{
		ID:                id,
		UserID:            userID,
		Title:             curriculumTitle(goal, level),
		Description:       curriculumDescription(goal),
		Level:             level,
		Goal:              goal,
		EstimatedDuration: ceilDiv(totalMinutes, prefs.StudyTimePerDay),
		Lessons:           lessons,
		Progress:          0,
		Preferences:       prefs,
		CreatedAt:         now,
		UpdatedAt:         now,
	}, nil
}

// CompleteLesson marks the lesson as completed and recomputes aggregate
// progress as completed-count over total-count.
func (c *Curriculum) CompleteLesson(lessonID string) error {
	found := false
	completed := 0
	for i := range c.Lessons {
		if c.Lessons[i].ID == lessonID {
			c.Lessons[i].Completed = true
			found = true
		}
		if c.Lessons[i].Completed {
			completed++
		}
	}
	if !found {
		return fmt.Errorf("lesson %q not in curriculum %q", lessonID, c.ID)
	}
	if len(c.Lessons) > 0 {
		c.Progress = completed * 100 / len(c.Lessons)
	}
	c.UpdatedAt = time.Now()
	return nil
}

func clampLevel(level int) int {
	if level < 0 {
		return 0
	}
	if level > 6 {
		return 6
	}
	return level
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

var goalTitles = map[catalog.GoalID]string{
	catalog.GoalTOPIK:      "TOPIK 완벽 대비",
	catalog.GoalUniversity: "대학 입학 준비",
	catalog.GoalCareer:     "비즈니스 한국어",
	catalog.GoalMarriage:   "가족과의 소통",
	catalog.GoalGeneral:    "종합 한국어",
}

var goalDescriptions = map[catalog.GoalID]string{
	catalog.GoalTOPIK:      "TOPIK 시험을 위한 체계적인 학습 계획",
	catalog.GoalUniversity: "대학 생활에 필요한 한국어 실력 향상",
	catalog.GoalCareer:     "직장에서 사용하는 실무 한국어 마스터",
	catalog.GoalMarriage:   "가족과의 원활한 소통을 위한 한국어",
	catalog.GoalGeneral:    "전반적인 한국어 실력 향상",
}

var levelBandNames = [3]string{"초급", "중급", "고급"}

// curriculumTitle prefixes the goal title with the level band:
// 초급 (levels 0-1), 중급 (2-3), 고급 (4-6).
func curriculumTitle(goal catalog.GoalID, level int) string {
	band := level / 2
	if band > 2 {
		band = 2
	}
	title, ok := goalTitles[goal]
	if !ok {
		title = "한국어 학습"
	}
	return levelBandNames[band] + " " + title
}

func curriculumDescription(goal catalog.GoalID) string {
	if d, ok := goalDescriptions[goal]; ok {
		return d
	}
	return "맞춤형 한국어 학습 계획"
}
