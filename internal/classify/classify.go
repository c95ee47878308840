// Package classify implements the intent classification domain: the typed
// result returned for free-text input, the fixed category-to-output mapping,
// and the boundary validation applied to every model payload.
package classify

// BudgetItem is one line item in a classified budget.
type BudgetItem struct {
	Item     string  `json:"item"`
	Cost     float64 `json:"cost"`
	Category string  `json:"category,omitempty"`
}

// Result is the tagged classification outcome for one conversation. Exactly
// one category is produced per result and the category determines the output
// type unambiguously.
type Result struct {
	Category         Category    `json:"category"`
	OutputType       OutputType  `json:"output_type"`
	Title            string      `json:"title"`
	FolderType       FolderType  `json:"folder_type,omitempty"`
	ConfidenceScore  float64     `json:"confidence_score"`
	UseCurrentFolder bool        `json:"use_current_folder"`
	BudgetItems      []BudgetItem `json:"budget_items,omitempty"`
	TargetAmount     float64     `json:"target_amount,omitempty"`
	Currency         string      `json:"currency,omitempty"`
	Deadline         string      `json:"deadline,omitempty"`
	Tasks            []string    `json:"tasks,omitempty"`
}

// Folder identifies one existing folder in the caller's workspace.
type Folder struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Context is the read-only snapshot of the caller's workspace supplied with a
// classification request. It is never persisted.
type Context struct {
	CurrentPage     string   `json:"current_page,omitempty"`
	CurrentFolder   *Folder  `json:"current_folder,omitempty"`
	ExistingFolders []Folder `json:"existing_folders,omitempty"`
}
