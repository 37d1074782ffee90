package onnx

import (
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Session wraps an ONNX Runtime session holding the vision model. It is
// safe for concurrent use; the runtime session is serialized behind a
// mutex because input tensors are rebuilt per call.
type Session struct {
	mu         sync.Mutex
	session    *ort.DynamicAdvancedSession
	inputName  string
	outputName string
}

var ortInitOnce sync.Once
var ortInitErr error

func initRuntime(libraryPath string) error {
	ortInitOnce.Do(func() {
		if libraryPath != "" {
			ort.SetSharedLibraryPath(libraryPath)
		}
		ortInitErr = ort.InitializeEnvironment()
	})
	return ortInitErr
}

// NewSession loads the ONNX model at modelPath. libraryPath points at
// the onnxruntime shared library; empty means the platform default.
func NewSession(modelPath, libraryPath, inputName, outputName string) (*Session, error) {
	if err := initRuntime(libraryPath); err != nil {
		return nil, fmt.Errorf("failed to initialize onnxruntime: %w", err)
	}

	session, err := ort.NewDynamicAdvancedSession(
		modelPath,
		[]string{inputName},
		[]string{outputName},
		nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load onnx model: %w", err)
	}

	return &Session{
		session:    session,
		inputName:  inputName,
		outputName: outputName,
	}, nil
}

// Run feeds a float32 tensor of the given shape through the model and
// returns the flattened output tensor.
func (s *Session) Run(input []float32, shape []int64) ([]float32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inputTensor, err := ort.NewTensor(ort.NewShape(shape...), input)
	if err != nil {
		return nil, fmt.Errorf("failed to build input tensor: %w", err)
	}
	defer inputTensor.Destroy()

	// A nil output slot makes the runtime allocate the output tensor.
	outputs := []ort.Value{nil}
	if err := s.session.Run([]ort.Value{inputTensor}, outputs); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	outputTensor, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		if outputs[0] != nil {
			outputs[0].Destroy()
		}
		return nil, fmt.Errorf("unexpected output tensor type")
	}
	defer outputTensor.Destroy()

	data := outputTensor.GetData()
	out := make([]float32, len(data))
	copy(out, data)
	return out, nil
}

// Close releases the runtime session.
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		if err := s.session.Destroy(); err != nil {
			return err
		}
		s.session = nil
	}
	return nil
}
