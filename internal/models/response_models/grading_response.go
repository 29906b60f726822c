package response_models

import "github.com/google/uuid"

type GradingResultResponse struct {
	RequestID     uuid.UUID `json:"request_id"`
	Status        string    `json:"status"`
	GradeResult   *float64  `json:"grade_result,omitempty"`
	ValueEstimate *float64  `json:"value_estimate,omitempty"`
	ScanSource    string    `json:"scan_source,omitempty"`
}

// ComicIdentification is the metadata the vision model extracts from a cover.
type ComicIdentification struct {
	Title         string   `json:"title"`
	IssueNumber   string   `json:"issue_number"`
	Publisher     string   `json:"publisher"`
	Year          string   `json:"year"`
	Variant       string   `json:"variant,omitempty"`
	KeyCharacters []string `json:"key_characters,omitempty"`
	StoryArc      string   `json:"story_arc,omitempty"`
	Creators      string   `json:"creators,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}
