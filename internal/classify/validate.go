package classify

import "slices"

// QuestionThreshold is the confidence score below which a classification is
// never acted on: ambiguous input yields a clarifying question instead of
// silently producing structured content.
const QuestionThreshold = 70

// Normalize applies the boundary validation contract to a model-returned
// result: the category must be valid, the folder type must be valid (an
// omitted folder defaults from the category), fitness and project results must
// carry tasks, the confidence score is clamped to [0,100], sub-threshold
// results are coerced to a question, and the output type is derived from the
// category regardless of what the model claimed. A returned error means the
// payload is malformed and the caller must substitute the documented fallback.
func (r *Result) Normalize() error {
	out, err := OutputTypeFor(r.Category)
	if err != nil {
		return err
	}

	// A missing folder_type key bypasses enum decoding; default it from the
	// category rather than returning an empty bucket.
	switch {
	case r.FolderType == "":
		r.FolderType = folderDefaults[r.Category]
	case !slices.Contains(folderTypes, r.FolderType):
		return ErrInvalidFolder
	}

	if (r.Category == CategoryFitness || r.Category == CategoryProject) && len(r.Tasks) == 0 {
		return ErrMissingTasks
	}

	if r.ConfidenceScore < 0 {
		r.ConfidenceScore = 0
	}
	if r.ConfidenceScore > 100 {
		r.ConfidenceScore = 100
	}

	if r.ConfidenceScore < QuestionThreshold {
		r.Category = CategoryQuestion
		out = OutputChat
	}

	r.OutputType = out
	return nil
}

// Fallback returns the documented safe result substituted when the model
// returns no usable structured payload. Every call site gets caller-usable
// data even on a tool-call miss.
func Fallback() *Result {
	return &Result{
		Category:        CategoryNote,
		OutputType:      OutputNote,
		Title:           "Note",
		FolderType:      FolderNotes,
		ConfidenceScore: 50,
	}
}
