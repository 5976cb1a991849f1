// Package curriculum assembles lesson sequences from the catalog and builds
// complete curriculum records.
package curriculum

import "github.com/kolearn/kolearn/internal/catalog"

// Assemble selects lesson templates for a proficiency level and goal.
// The level bands intentionally overlap: a user at level 2 receives both the
// beginner and intermediate blocks, and a user at level 4 both the
// intermediate and advanced blocks. That mirrors the product's banding and
// must not be "fixed" to half-open intervals here.
//
// The caller clamps level to [0,6]. An unrecognized goal contributes no
// goal-specific lessons; it is not an error.
func Assemble(cat *catalog.Catalog, level int, goal catalog.GoalID) []catalog.LessonTemplate {
	var lessons []catalog.LessonTemplate

	if level <= 2 {
		lessons = append(lessons, cat.Beginner()...)
	}
	if level >= 2 && level <= 4 {
		lessons = append(lessons, cat.Intermediate()...)
	}
	if level >= 4 {
		lessons = append(lessons, cat.Advanced()...)
	}

	lessons = append(lessons, cat.GoalBlock(goal)...)

	for i := range lessons {
		lessons[i].Order = i + 1
	}
	return lessons
}
