// Package plan implements the daily plan domain: schedule block types, the
// working-time window, and the boundary validation that guarantees a returned
// plan covers exactly the caller's tasks.
package plan

import (
	"encoding/json"
	"slices"
)

// Working window boundaries. Every block's time falls inside this range.
const (
	WindowStart = "08:00"
	WindowEnd   = "17:00"
)

// Item is one caller-supplied task or goal. Records are opaque beyond an id
// and descriptive text; this core never invents or drops them.
type Item struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
}

// Request carries the task and goal lists a plan is generated from,
// owned and supplied entirely by the caller.
type Request struct {
	Tasks []Item `json:"tasks"`
	Goals []Item `json:"goals"`
}

// BlockType categorizes a schedule block.
type BlockType string

// Valid block types.
const (
	TypeDeep    BlockType = "deep"
	TypeMeeting BlockType = "meeting"
	TypeBreak   BlockType = "break"
	TypeWorkout BlockType = "workout"
	TypeReading BlockType = "reading"
	TypeCustom  BlockType = "custom"
)

var blockTypes = []BlockType{
	TypeDeep,
	TypeMeeting,
	TypeBreak,
	TypeWorkout,
	TypeReading,
	TypeCustom,
}

// BlockTypes returns the list of valid block types.
func BlockTypes() []BlockType {
	return blockTypes
}

// UnmarshalJSON validates that the decoded string is a known block type.
func (t *BlockType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := BlockType(raw)
	if !slices.Contains(blockTypes, v) {
		return ErrInvalidType
	}
	*t = v
	return nil
}

// ScheduleBlock is one scheduled slot in a generated daily plan. TaskID links
// the block to an input task; break and filler blocks carry no TaskID.
type ScheduleBlock struct {
	Time     string    `json:"time"`
	Title    string    `json:"title"`
	Duration string    `json:"duration"`
	Type     BlockType `json:"type"`
	TaskID   string    `json:"task_id,omitempty"`
}

// Plan is the response envelope for a generated daily plan.
type Plan struct {
	Blocks []ScheduleBlock `json:"blocks"`
}
