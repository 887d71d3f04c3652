package vision

import (
	"context"
	"encoding/base64"
	"log/slog"

	"makan/internal/domain/service"

	"github.com/pkg/errors"
	"google.golang.org/api/option"
	visionapi "google.golang.org/api/vision/v1"
)

const labelDetection = "LABEL_DETECTION"

type googleVisionService struct {
	images        *visionapi.ImagesService
	maxResults    int64
	minConfidence float64
	logger        *slog.Logger
}

// NewGoogleVisionService creates a label detector backed by Cloud Vision.
// minConfidence is expressed as a percentage (0-100).
func NewGoogleVisionService(ctx context.Context, apiKey string, maxResults int, minConfidence float64, logger *slog.Logger) (service.VisionService, error) {
	opts := []option.ClientOption{}
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	svc, err := visionapi.NewService(ctx, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cloud vision client")
	}

	return &googleVisionService{
		images:        svc.Images,
		maxResults:    int64(maxResults),
		minConfidence: minConfidence / 100,
		logger:        logger,
	}, nil
}

func (s *googleVisionService) DetectLabels(ctx context.Context, image []byte) ([]service.Label, error) {
	req := &visionapi.BatchAnnotateImagesRequest{
		Requests: []*visionapi.AnnotateImageRequest{
			{
				Image: &visionapi.Image{Content: base64.StdEncoding.EncodeToString(image)},
				Features: []*visionapi.Feature{
					{Type: labelDetection, MaxResults: s.maxResults},
				},
			},
		},
	}

	resp, err := s.images.Annotate(req).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrap(err, "failed to annotate image")
	}
	if len(resp.Responses) == 0 {
		return []service.Label{}, nil
	}

	result := resp.Responses[0]
	if result.Error != nil {
		return nil, errors.Errorf("cloud vision error: %s", result.Error.Message)
	}

	labels := make([]service.Label, 0, len(result.LabelAnnotations))
	for _, annotation := range result.LabelAnnotations {
		if annotation.Score < s.minConfidence {
			continue
		}
		labels = append(labels, service.Label{
			Description: annotation.Description,
			Score:       annotation.Score,
		})
	}

	s.logger.DebugContext(ctx, "Cloud Vision labels detected", slog.Int("count", len(labels)))

	return labels, nil
}
