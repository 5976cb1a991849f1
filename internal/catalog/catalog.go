package catalog

// Catalog is the immutable set of goals and lesson templates. Construct one
// at process start with Builtin (optionally merged with YAML goal packs via
// LoadPacks) and share it read-only.
type Catalog struct {
	goals        []LearningGoal
	beginner     []LessonTemplate
	intermediate []LessonTemplate
	advanced     []LessonTemplate
	goalBlocks   map[GoalID][]LessonTemplate
}

// Builtin returns the catalog with the built-in reference data.
func Builtin() *Catalog {
	return &Catalog{
		goals:        builtinGoals(),
		beginner:     beginnerBlock(),
		intermediate: intermediateBlock(),
		advanced:     advancedBlock(),
		goalBlocks:   builtinGoalBlocks(),
	}
}

// Goals returns all learning goals.
func (c *Catalog) Goals() []LearningGoal {
	out := make([]LearningGoal, len(c.goals))
	copy(out, c.goals)
	return out
}

// Goal returns the learning goal with the given id.
func (c *Catalog) Goal(id GoalID) (LearningGoal, bool) {
	for _, g := range c.goals {
		if g.ID == id {
			return g, true
		}
	}
	return LearningGoal{}, false
}

// Beginner returns the beginner lesson block in its fixed order.
func (c *Catalog) Beginner() []LessonTemplate {
	return copyTemplates(c.beginner)
}

// Intermediate returns the intermediate lesson block.
func (c *Catalog) Intermediate() []LessonTemplate {
	return copyTemplates(c.intermediate)
}

// Advanced returns the advanced lesson block.
func (c *Catalog) Advanced() []LessonTemplate {
	return copyTemplates(c.advanced)
}

// GoalBlock returns the goal-specific lessons for id. Unknown goals get an
// empty block, not an error.
func (c *Catalog) GoalBlock(id GoalID) []LessonTemplate {
	return copyTemplates(c.goalBlocks[id])
}

// copyTemplates shallow-copies templates so callers can set instance fields
// (ID, Order, Completed) without touching the catalog.
func copyTemplates(in []LessonTemplate) []LessonTemplate {
	if len(in) == 0 {
		return nil
	}
	out := make([]LessonTemplate, len(in))
	copy(out, in)
	return out
}
