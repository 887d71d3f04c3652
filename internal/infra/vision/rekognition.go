package vision

import (
	"context"
	"log/slog"

	"makan/internal/domain/service"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/pkg/errors"
)

// labelDetector is the subset of the Rekognition client used here.
type labelDetector interface {
	DetectLabels(ctx context.Context, params *rekognition.DetectLabelsInput, optFns ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error)
}

type rekognitionService struct {
	client        labelDetector
	maxLabels     int32
	minConfidence float32
	logger        *slog.Logger
}

// NewRekognitionService creates a label detector backed by AWS Rekognition.
func NewRekognitionService(client labelDetector, maxLabels int, minConfidence float64, logger *slog.Logger) service.VisionService {
	return &rekognitionService{
		client:        client,
		maxLabels:     int32(maxLabels), //nolint:gosec // bounded by config
		minConfidence: float32(minConfidence),
		logger:        logger,
	}
}

func (s *rekognitionService) DetectLabels(ctx context.Context, image []byte) ([]service.Label, error) {
	out, err := s.client.DetectLabels(ctx, &rekognition.DetectLabelsInput{
		Image:         &types.Image{Bytes: image},
		MaxLabels:     aws.Int32(s.maxLabels),
		MinConfidence: aws.Float32(s.minConfidence),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to detect labels")
	}

	labels := make([]service.Label, 0, len(out.Labels))
	for _, label := range out.Labels {
		// Rekognition reports confidence as a percentage
		labels = append(labels, service.Label{
			Description: aws.ToString(label.Name),
			Score:       float64(aws.ToFloat32(label.Confidence)) / 100,
		})
	}

	s.logger.DebugContext(ctx, "Rekognition labels detected", slog.Int("count", len(labels)))

	return labels, nil
}
