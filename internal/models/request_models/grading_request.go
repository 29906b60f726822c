package request_models

type SubmitGradingRequest struct {
	ImageURLs      []string `json:"image_urls" binding:"required,min=1,max=10"`
	ConditionNotes string   `json:"condition_notes"`
}

type IdentifyComicRequest struct {
	// Base64-encoded cover image, PNG or JPEG.
	ImageBase64 string `json:"image_base64" binding:"required"`
}
