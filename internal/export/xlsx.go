// Package export renders curricula as downloadable files.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/kolearn/kolearn/internal/curriculum"
)

const planSheet = "Study Plan"

// WriteStudyPlan writes the curriculum as an XLSX workbook: one summary
// block, then one row per lesson in study order.
func WriteStudyPlan(w io.Writer, c curriculum.Curriculum) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(planSheet)
	if err != nil {
		return fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("remove default sheet: %w", err)
	}

	summary := [][]any{
		{"Title", c.Title},
		{"Description", c.Description},
		{"Level", c.Level},
		{"Goal", string(c.Goal)},
		{"Estimated duration (days)", c.EstimatedDuration},
		{"Study time per day (min)", c.Preferences.StudyTimePerDay},
		{"Progress (%)", c.Progress},
	}
	for i, row := range summary {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return fmt.Errorf("summary cell: %w", err)
		}
		if err := f.SetSheetRow(planSheet, cell, &row); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}

	headerRow := len(summary) + 2
	header := []any{"Order", "Lesson", "Category", "Difficulty", "Minutes", "Completed"}
	cell, err := excelize.CoordinatesToCellName(1, headerRow)
	if err != nil {
		return fmt.Errorf("header cell: %w", err)
	}
	if err := f.SetSheetRow(planSheet, cell, &header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, lesson := range c.Lessons {
		completed := "no"
		if lesson.Completed {
			completed = "yes"
		}
		row := []any{
			lesson.Order,
			lesson.Title,
			string(lesson.Category),
			lesson.Difficulty,
			lesson.EstimatedTime,
			completed,
		}
		cell, err := excelize.CoordinatesToCellName(1, headerRow+1+i)
		if err != nil {
			return fmt.Errorf("lesson cell: %w", err)
		}
		if err := f.SetSheetRow(planSheet, cell, &row); err != nil {
			return fmt.Errorf("write lesson row: %w", err)
		}
	}

	if err := f.SetColWidth(planSheet, "A", "B", 28); err != nil {
		return fmt.Errorf("set column width: %w", err)
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}
