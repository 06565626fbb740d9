package llm

import (
	"context"
)

// MockClient is a test double for LLMClient. Set the function fields to
// control behavior; unset fields return zero values.
type MockClient struct {
	GenerateResponseFunc func(ctx context.Context, prompt string, systemMessage string, opts GenerateOptions) (string, error)
	CreateEmbeddingsFunc func(ctx context.Context, inputs []string) ([][]float32, error)
	Model                string
	Endpoint             string
}

func (m *MockClient) GenerateResponse(ctx context.Context, prompt string, systemMessage string, opts GenerateOptions) (string, error) {
	if m.GenerateResponseFunc != nil {
		return m.GenerateResponseFunc(ctx, prompt, systemMessage, opts)
	}
	return "", nil
}

func (m *MockClient) CreateEmbeddings(ctx context.Context, inputs []string) ([][]float32, error) {
	if m.CreateEmbeddingsFunc != nil {
		return m.CreateEmbeddingsFunc(ctx, inputs)
	}
	return nil, nil
}

func (m *MockClient) GetModel() string {
	if m.Model != "" {
		return m.Model
	}
	return "mock-model"
}

func (m *MockClient) GetEndpoint() string {
	if m.Endpoint != "" {
		return m.Endpoint
	}
	return "http://mock.local"
}
