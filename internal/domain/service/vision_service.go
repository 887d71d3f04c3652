package service

import "context"

// Label is one guess from an image classifier. Score is in [0,1].
type Label struct {
	Description string  `json:"description"`
	Score       float64 `json:"score"`
}

// VisionService labels the contents of an image.
type VisionService interface {
	DetectLabels(ctx context.Context, image []byte) ([]Label, error)
}
