package classify

import (
	"encoding/json"
	"slices"
)

// Category is the single intent tag derived from a conversation.
type Category string

// Valid classification categories.
const (
	CategorySavingsGoal Category = "savings_goal"
	CategoryBudget      Category = "budget"
	CategoryFitness     Category = "fitness"
	CategoryProject     Category = "project"
	CategoryNote        Category = "note"
	CategoryQuestion    Category = "question"
)

// OutputType is the downstream surface a category renders into.
type OutputType string

// Valid output types.
const (
	OutputDashboard OutputType = "dashboard"
	OutputTable     OutputType = "table"
	OutputTracker   OutputType = "tracker"
	OutputBoard     OutputType = "board"
	OutputNote      OutputType = "note"
	OutputChat      OutputType = "chat"
)

// FolderType is the folder bucket a classified record files under.
type FolderType string

// Valid folder types.
const (
	FolderFinance FolderType = "finance"
	FolderFitness FolderType = "fitness"
	FolderProject FolderType = "project"
	FolderNotes   FolderType = "notes"
)

var categories = []Category{
	CategorySavingsGoal,
	CategoryBudget,
	CategoryFitness,
	CategoryProject,
	CategoryNote,
	CategoryQuestion,
}

// outputTypes is the total one-to-one category → output_type mapping. Any
// other pairing in a model payload is a contract breach.
var outputTypes = map[Category]OutputType{
	CategorySavingsGoal: OutputDashboard,
	CategoryBudget:      OutputTable,
	CategoryFitness:     OutputTracker,
	CategoryProject:     OutputBoard,
	CategoryNote:        OutputNote,
	CategoryQuestion:    OutputChat,
}

var folderTypes = []FolderType{
	FolderFinance,
	FolderFitness,
	FolderProject,
	FolderNotes,
}

// folderDefaults fills in the folder bucket when the model omits it.
var folderDefaults = map[Category]FolderType{
	CategorySavingsGoal: FolderFinance,
	CategoryBudget:      FolderFinance,
	CategoryFitness:     FolderFitness,
	CategoryProject:     FolderProject,
	CategoryNote:        FolderNotes,
	CategoryQuestion:    FolderNotes,
}

// FolderTypes returns the list of valid folder types.
func FolderTypes() []FolderType {
	return folderTypes
}

// Categories returns the list of valid classification categories.
func Categories() []Category {
	return categories
}

// OutputTypeFor returns the output type a category determines.
// Returns ErrInvalidCategory for unknown categories.
func OutputTypeFor(c Category) (OutputType, error) {
	out, ok := outputTypes[c]
	if !ok {
		return "", ErrInvalidCategory
	}
	return out, nil
}

// UnmarshalJSON validates that the decoded string is a known category value,
// so silently-invalid enum values are rejected at the parse boundary.
func (c *Category) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	v := Category(raw)
	if !slices.Contains(categories, v) {
		return ErrInvalidCategory
	}
	*c = v
	return nil
}
