package vision

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"time"

	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/detakmedis/backend/internal/domain/entities"
	"github.com/detakmedis/backend/internal/domain/providers"
	"github.com/detakmedis/backend/internal/infrastructure/observability"
)

// ImageNet normalization constants, per channel (R, G, B).
var (
	channelMean = [3]float32{0.485, 0.456, 0.406}
	channelStd  = [3]float32{0.229, 0.224, 0.225}
)

// Runner feeds a tensor through a loaded model. The ONNX session
// satisfies it; tests substitute a fake.
type Runner interface {
	Run(input []float32, shape []int64) ([]float32, error)
}

// ONNXClassifier implements ImageClassifier on a chest X-ray model.
type ONNXClassifier struct {
	runner    Runner
	imageSize int
	metrics   *observability.Metrics
}

// NewONNXClassifier creates a classifier over the given model session.
// metrics may be nil.
func NewONNXClassifier(runner Runner, imageSize int, metrics *observability.Metrics) providers.ImageClassifier {
	if imageSize <= 0 {
		imageSize = 224
	}
	return &ONNXClassifier{
		runner:    runner,
		imageSize: imageSize,
		metrics:   metrics,
	}
}

// Classify decodes the image, preprocesses it, and returns per-label
// confidence percentages summing to 100.
func (c *ONNXClassifier) Classify(ctx context.Context, data []byte) (map[string]float64, error) {
	input, err := c.preprocess(data)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	shape := []int64{1, 3, int64(c.imageSize), int64(c.imageSize)}
	logits, err := c.runner.Run(input, shape)
	if c.metrics != nil {
		observability.RecordInferenceMetric(ctx, c.metrics, "chest-xray", time.Since(start))
	}
	if err != nil {
		return nil, fmt.Errorf("classification failed: %w", err)
	}

	if len(logits) != len(entities.DiseaseLabels) {
		return nil, fmt.Errorf("model returned %d scores, want %d", len(logits), len(entities.DiseaseLabels))
	}

	probs := softmax(logits)
	result := make(map[string]float64, len(entities.DiseaseLabels))
	for i, label := range entities.DiseaseLabels {
		result[label] = math.Round(float64(probs[i])*100*100) / 100
	}
	return result, nil
}

// preprocess decodes, resizes, and normalizes the image into a CHW
// float32 tensor with a leading batch dimension.
func (c *ONNXClassifier) preprocess(data []byte) ([]float32, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	size := c.imageSize
	resized := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, img.Bounds(), draw.Src, nil)

	tensor := make([]float32, 3*size*size)
	plane := size * size
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			idx := y*size + x
			tensor[idx] = (float32(r>>8)/255 - channelMean[0]) / channelStd[0]
			tensor[plane+idx] = (float32(g>>8)/255 - channelMean[1]) / channelStd[1]
			tensor[2*plane+idx] = (float32(b>>8)/255 - channelMean[2]) / channelStd[2]
		}
	}
	return tensor, nil
}

// softmax converts logits into probabilities, shifted by the max logit
// for numerical stability.
func softmax(logits []float32) []float64 {
	max := float64(logits[0])
	for _, v := range logits[1:] {
		if float64(v) > max {
			max = float64(v)
		}
	}

	exps := make([]float64, len(logits))
	sum := 0.0
	for i, v := range logits {
		exps[i] = math.Exp(float64(v) - max)
		sum += exps[i]
	}
	for i := range exps {
		exps[i] /= sum
	}
	return exps
}
