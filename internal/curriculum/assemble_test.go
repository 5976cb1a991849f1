package curriculum_test

import (
	"testing"

	"github.com/kolearn/kolearn/internal/catalog"
	"github.com/kolearn/kolearn/internal/curriculum"
)

func TestAssemble_LevelBands(t *testing.T) {
	cat := catalog.Builtin()

	tests := []struct {
		name             string
		level            int
		wantBeginner     bool
		wantIntermediate bool
		wantAdvanced     bool
	}{
		{"complete beginner", 0, true, false, false},
		{"level one", 1, true, false, false},
		{"overlap at two", 2, true, true, false},
		{"level three", 3, false, true, false},
		{"overlap at four", 4, false, true, true},
		{"level five", 5, false, false, true},
		{"level six", 6, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lessons := curriculum.Assemble(cat, tt.level, catalog.GoalGeneral)

			has := func(id string) bool {
				for _, l := range lessons {
					if l.ID == id {
						return true
					}
				}
				return false
			}

			if got := has("hangeul-basics"); got != tt.wantBeginner {
				t.Errorf("beginner block present = %v, want %v", got, tt.wantBeginner)
			}
			if got := has("grammar-particles"); got != tt.wantIntermediate {
				t.Errorf("intermediate block present = %v, want %v", got, tt.wantIntermediate)
			}
			if got := has("advanced-nuance"); got != tt.wantAdvanced {
				t.Errorf("advanced block present = %v, want %v", got, tt.wantAdvanced)
			}
		})
	}
}

func TestAssemble_OrdersStrictlyIncreasing(t *testing.T) {
	cat := catalog.Builtin()

	// Level 4 with a goal block is the widest selection and historically the
	// one where ordering went wrong.
	for _, goal := range []catalog.GoalID{catalog.GoalTOPIK, catalog.GoalCareer, catalog.GoalGeneral} {
		for level := 0; level <= 6; level++ {
			lessons := curriculum.Assemble(cat, level, goal)
			for i, l := range lessons {
				if l.Order != i+1 {
					t.Errorf("goal %s level %d: lessons[%d].Order = %d, want %d", goal, level, i, l.Order, i+1)
				}
			}
		}
	}
}

func TestAssemble_BeginnerSequence(t *testing.T) {
	cat := catalog.Builtin()

	lessons := curriculum.Assemble(cat, 1, catalog.GoalGeneral)
	if len(lessons) < 2 {
		t.Fatalf("got %d lessons, want at least 2", len(lessons))
	}
	if lessons[0].ID != "hangeul-basics" || lessons[1].ID != "basic-greetings" {
		t.Errorf("first lessons = %q, %q; want hangeul-basics, basic-greetings", lessons[0].ID, lessons[1].ID)
	}
}

func TestAssemble_GoalBlockAppended(t *testing.T) {
	cat := catalog.Builtin()

	lessons := curriculum.Assemble(cat, 3, catalog.GoalTOPIK)
	last := lessons[len(lessons)-1]
	if last.ID != "topik-strategy" {
		t.Errorf("last lesson = %q, want topik-strategy", last.ID)
	}
}

func TestAssemble_UnknownGoal(t *testing.T) {
	cat := catalog.Builtin()

	withGoal := curriculum.Assemble(cat, 3, catalog.GoalTOPIK)
	without := curriculum.Assemble(cat, 3, "polyglot-speedrun")
	if len(without) >= len(withGoal) {
		t.Errorf("unknown goal produced %d lessons, known goal %d; unknown should add none", len(without), len(withGoal))
	}
	if len(without) != len(cat.Intermediate()) {
		t.Errorf("unknown goal at level 3 = %d lessons, want %d (intermediate only)", len(without), len(cat.Intermediate()))
	}
}
