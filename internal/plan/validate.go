package plan

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Normalize applies the boundary validation contract to model-returned blocks:
// every time must parse as HH:MM inside the working window, every block type
// must be a known value, blocks referencing
// unknown task ids are dropped, the result is sorted ascending by time, and
// the surviving blocks must cover every input task. A returned error means the
// payload is malformed; the caller substitutes the empty-plan fallback rather
// than returning a partially valid plan.
func Normalize(blocks []ScheduleBlock, tasks []Item) ([]ScheduleBlock, error) {
	known := make(map[string]bool, len(tasks))
	for _, task := range tasks {
		known[task.ID] = true
	}

	kept := make([]ScheduleBlock, 0, len(blocks))
	covered := make(map[string]bool, len(tasks))

	for _, block := range blocks {
		if err := validateTime(block.Time); err != nil {
			return nil, err
		}
		// A missing type key bypasses BlockType.UnmarshalJSON, so the zero
		// value has to be caught here.
		if !slices.Contains(blockTypes, block.Type) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidType, block.Type)
		}
		if block.TaskID != "" && !known[block.TaskID] {
			continue
		}
		if block.TaskID != "" {
			covered[block.TaskID] = true
		}
		kept = append(kept, block)
	}

	for _, task := range tasks {
		if !covered[task.ID] {
			return nil, fmt.Errorf("%w: task %s has no block", ErrTaskCoverage, task.ID)
		}
	}

	slices.SortStableFunc(kept, func(a, b ScheduleBlock) int {
		return strings.Compare(a.Time, b.Time)
	})

	return kept, nil
}

// Empty returns the documented fallback plan: no blocks, which downstream
// treats as "no plan available," not an error.
func Empty() *Plan {
	return &Plan{Blocks: []ScheduleBlock{}}
}

func validateTime(value string) error {
	t, err := time.Parse("15:04", value)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, value)
	}

	minutes := t.Hour()*60 + t.Minute()
	start := 8 * 60
	end := 17 * 60
	if minutes < start || minutes > end {
		return fmt.Errorf("%w: %q outside %s-%s", ErrOutsideWindow, value, WindowStart, WindowEnd)
	}
	return nil
}
