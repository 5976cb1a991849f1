package catalog_test

import (
	"testing"

	"github.com/kolearn/kolearn/internal/catalog"
)

func TestBuiltin_Goals(t *testing.T) {
	c := catalog.Builtin()

	goals := c.Goals()
	if len(goals) != 5 {
		t.Fatalf("Goals() = %d, want 5", len(goals))
	}

	want := []catalog.GoalID{
		catalog.GoalTOPIK, catalog.GoalUniversity, catalog.GoalCareer,
		catalog.GoalMarriage, catalog.GoalGeneral,
	}
	for i, id := range want {
		if goals[i].ID != id {
			t.Errorf("goals[%d].ID = %q, want %q", i, goals[i].ID, id)
		}
		if goals[i].Name == "" || goals[i].Description == "" {
			t.Errorf("goal %q has empty name or description", id)
		}
		if goals[i].TargetLevel < 1 || goals[i].TargetLevel > 6 {
			t.Errorf("goal %q target level %d out of range", id, goals[i].TargetLevel)
		}
	}
}

func TestBuiltin_BeginnerOrderAndPrerequisites(t *testing.T) {
	c := catalog.Builtin()

	block := c.Beginner()
	if len(block) != 2 {
		t.Fatalf("Beginner() = %d lessons, want 2", len(block))
	}
	if block[0].ID != "hangeul-basics" {
		t.Errorf("first beginner lesson = %q, want hangeul-basics", block[0].ID)
	}
	if block[1].ID != "basic-greetings" {
		t.Errorf("second beginner lesson = %q, want basic-greetings", block[1].ID)
	}

	// Prerequisites may only reference templates placed earlier in the block.
	seen := map[string]bool{}
	for _, l := range block {
		for _, pre := range l.Prerequisites {
			if !seen[pre] {
				t.Errorf("lesson %q requires %q before it is placed", l.ID, pre)
			}
		}
		seen[l.ID] = true
	}
}

func TestBuiltin_TemplatesAreWellFormed(t *testing.T) {
	c := catalog.Builtin()

	var all []catalog.LessonTemplate
	all = append(all, c.Beginner()...)
	all = append(all, c.Intermediate()...)
	all = append(all, c.Advanced()...)
	for _, id := range []catalog.GoalID{catalog.GoalTOPIK, catalog.GoalUniversity, catalog.GoalCareer, catalog.GoalMarriage} {
		all = append(all, c.GoalBlock(id)...)
	}

	ids := map[string]bool{}
	for _, l := range all {
		if l.ID == "" {
			t.Error("template with empty id")
		}
		if ids[l.ID] {
			t.Errorf("duplicate template id %q", l.ID)
		}
		ids[l.ID] = true
		if !l.Category.Valid() {
			t.Errorf("template %q has invalid category %q", l.ID, l.Category)
		}
		if l.Difficulty < 1 || l.Difficulty > 5 {
			t.Errorf("template %q difficulty %d out of range", l.ID, l.Difficulty)
		}
		if l.EstimatedTime <= 0 {
			t.Errorf("template %q estimated time %d not positive", l.ID, l.EstimatedTime)
		}
	}
}

func TestGoalBlock_GeneralAndUnknown(t *testing.T) {
	c := catalog.Builtin()

	if got := c.GoalBlock(catalog.GoalGeneral); len(got) != 0 {
		t.Errorf("GoalBlock(general) = %d lessons, want 0", len(got))
	}
	if got := c.GoalBlock("fluent-in-a-week"); len(got) != 0 {
		t.Errorf("GoalBlock(unknown) = %d lessons, want 0", len(got))
	}
}

func TestGoalID_Valid(t *testing.T) {
	valid := []catalog.GoalID{"topik", "university", "career", "marriage", "general"}
	for _, id := range valid {
		if !id.Valid() {
			t.Errorf("%q should be valid", id)
		}
	}
	if catalog.GoalID("TOPIK").Valid() {
		t.Error("goal ids are case sensitive; TOPIK should be invalid")
	}
	if catalog.GoalID("").Valid() {
		t.Error("empty goal should be invalid")
	}
}
