package request_models

type CreateComicRequest struct {
	Title          string   `json:"title" binding:"required,max=255"`
	IssueNumber    string   `json:"issue_number"`
	Publisher      string   `json:"publisher"`
	Year           *int     `json:"year"`
	Condition      string   `json:"condition"`
	Grade          *float64 `json:"grade" binding:"omitempty,gte=1,lte=10"`
	EstimatedValue *float64 `json:"estimated_value"`
	CoverImageURL  string   `json:"cover_image_url"`
	Notes          string   `json:"notes"`
}

type UpdateComicRequest struct {
	Title          *string  `json:"title" binding:"omitempty,max=255"`
	IssueNumber    *string  `json:"issue_number"`
	Publisher      *string  `json:"publisher"`
	Year           *int     `json:"year"`
	Condition      *string  `json:"condition"`
	Grade          *float64 `json:"grade" binding:"omitempty,gte=1,lte=10"`
	EstimatedValue *float64 `json:"estimated_value"`
	CoverImageURL  *string  `json:"cover_image_url"`
	Notes          *string  `json:"notes"`
}

type SimilarComicsRequest struct {
	Query string `json:"query" binding:"required"`
	Limit int    `json:"limit" binding:"omitempty,min=1,max=50"`
}
