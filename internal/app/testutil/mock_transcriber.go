package testutil

import (
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"
)

// MockTranscriber is a configurable fake backend for the api.Transcriber
// interface. Responses and errors can be keyed by filename; every call is
// counted so tests can assert the backend was (or was not) reached.
type MockTranscriber struct {
	mock.Mock
	mu sync.Mutex

	DefaultResponse string
	DefaultError    error
	ResponseMap     map[string]string
	ErrorMap        map[string]error

	CallCount int
	Calls     []TranscriptionCall
}

// TranscriptionCall captures the arguments of one backend invocation.
type TranscriptionCall struct {
	Filename  string
	Language  string
	AudioSize int64
}

func NewMockTranscriber() *MockTranscriber {
	return &MockTranscriber{
		DefaultResponse: "This is a mock transcription result.",
		ResponseMap:     make(map[string]string),
		ErrorMap:        make(map[string]error),
	}
}

func (m *MockTranscriber) Transcript(ctx context.Context, audio io.Reader, filename string, language string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Drain the stream the way a real upload would.
	size, err := io.Copy(io.Discard, audio)
	if err != nil {
		return "", err
	}

	m.CallCount++
	m.Calls = append(m.Calls, TranscriptionCall{
		Filename:  filename,
		Language:  language,
		AudioSize: size,
	})

	if err, exists := m.ErrorMap[filename]; exists {
		return "", err
	}
	if m.DefaultError != nil {
		return "", m.DefaultError
	}
	if response, exists := m.ResponseMap[filename]; exists {
		return response, nil
	}
	return m.DefaultResponse, nil
}

// LastCall returns the most recent invocation, if any.
func (m *MockTranscriber) LastCall() (TranscriptionCall, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Calls) == 0 {
		return TranscriptionCall{}, false
	}
	return m.Calls[len(m.Calls)-1], true
}
