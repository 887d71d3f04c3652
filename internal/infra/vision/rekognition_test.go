package vision

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rekognition"
	"github.com/aws/aws-sdk-go-v2/service/rekognition/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDetector struct {
	input *rekognition.DetectLabelsInput
	out   *rekognition.DetectLabelsOutput
	err   error
}

func (f *fakeDetector) DetectLabels(_ context.Context, params *rekognition.DetectLabelsInput, _ ...func(*rekognition.Options)) (*rekognition.DetectLabelsOutput, error) {
	f.input = params

	return f.out, f.err
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRekognitionService_DetectLabels(t *testing.T) {
	detector := &fakeDetector{
		out: &rekognition.DetectLabelsOutput{
			Labels: []types.Label{
				{Name: aws.String("Pizza"), Confidence: aws.Float32(92.5)},
				{Name: aws.String("Food"), Confidence: aws.Float32(80)},
			},
		},
	}
	svc := NewRekognitionService(detector, 5, 75, newDiscardLogger())

	labels, err := svc.DetectLabels(context.Background(), []byte("image-bytes"))
	require.NoError(t, err)
	require.Len(t, labels, 2)

	assert.Equal(t, "Pizza", labels[0].Description)
	assert.InDelta(t, 0.925, labels[0].Score, 0.0001)
	assert.InDelta(t, 0.80, labels[1].Score, 0.0001)

	assert.Equal(t, []byte("image-bytes"), detector.input.Image.Bytes)
	assert.Equal(t, int32(5), aws.ToInt32(detector.input.MaxLabels))
	assert.InDelta(t, float32(75), aws.ToFloat32(detector.input.MinConfidence), 0.0001)
}

func TestRekognitionService_DetectLabels_Error(t *testing.T) {
	detector := &fakeDetector{err: errors.New("throttled")}
	svc := NewRekognitionService(detector, 5, 75, newDiscardLogger())

	labels, err := svc.DetectLabels(context.Background(), []byte("x"))
	require.Error(t, err)
	assert.Nil(t, labels)
	assert.Contains(t, err.Error(), "throttled")
}

func TestUnconfiguredVisionService(t *testing.T) {
	_, err := unconfiguredVisionService{}.DetectLabels(context.Background(), nil)
	assert.ErrorIs(t, err, ErrNotConfigured)
}
