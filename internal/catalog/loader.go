package catalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// goalPack is the YAML shape for an extra content pack. Each file contributes
// goal-specific lesson templates for one goal.
type goalPack struct {
	Goal    GoalID           `yaml:"goal"`
	Lessons []LessonTemplate `yaml:"lessons"`
}

// LoadPacks returns a copy of c with goal-pack lessons from rootDir merged
// into the goal-specific blocks. Files that are not valid packs are skipped
// with a warning so one bad file cannot take the catalog down.
func LoadPacks(c *Catalog, rootDir string) (*Catalog, error) {
	merged := &Catalog{
		goals:        c.goals,
		beginner:     c.beginner,
		intermediate: c.intermediate,
		advanced:     c.advanced,
		goalBlocks:   make(map[GoalID][]LessonTemplate, len(c.goalBlocks)),
	}
	for id, block := range c.goalBlocks {
		merged.goalBlocks[id] = block
	}

	packs := 0
	err := filepath.Walk(rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(path, ".yaml") && !strings.HasSuffix(path, ".yml") {
			return nil
		}

		pack, err := loadPack(path)
		if err != nil {
			slog.Warn("skipping invalid goal pack", "path", path, "error", err)
			return nil
		}
		merged.goalBlocks[pack.Goal] = append(merged.goalBlocks[pack.Goal], pack.Lessons...)
		packs++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading goal packs: %w", err)
	}

	slog.Info("goal packs loaded", "dir", rootDir, "packs", packs)
	return merged, nil
}

func loadPack(path string) (goalPack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return goalPack{}, err
	}

	var pack goalPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return goalPack{}, err
	}

	if !pack.Goal.Valid() {
		return goalPack{}, fmt.Errorf("unknown goal %q", pack.Goal)
	}
	for i, l := range pack.Lessons {
		if l.ID == "" {
			return goalPack{}, fmt.Errorf("lesson %d has no id", i)
		}
		if !l.Category.Valid() {
			return goalPack{}, fmt.Errorf("lesson %q has unknown category %q", l.ID, l.Category)
		}
		if l.Difficulty < 1 || l.Difficulty > 5 {
			return goalPack{}, fmt.Errorf("lesson %q difficulty %d out of range", l.ID, l.Difficulty)
		}
		if l.EstimatedTime <= 0 {
			return goalPack{}, fmt.Errorf("lesson %q estimated_time must be positive", l.ID)
		}
	}
	return pack, nil
}
