package testutil

import (
	"sync"

	"audiotranscriber/internal/app/model"
)

// MockTranscriptionDAO is an in-memory repository.TranscriptionDAO.
type MockTranscriptionDAO struct {
	mu sync.Mutex

	Records     []model.Transcription
	RecordError error
	Closed      bool
}

func NewMockTranscriptionDAO() *MockTranscriptionDAO {
	return &MockTranscriptionDAO{}
}

func (m *MockTranscriptionDAO) Record(t model.Transcription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RecordError != nil {
		return m.RecordError
	}
	t.ID = len(m.Records) + 1
	m.Records = append(m.Records, t)
	return nil
}

func (m *MockTranscriptionDAO) GetAll() ([]model.Transcription, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]model.Transcription, len(m.Records))
	copy(out, m.Records)
	return out, nil
}

func (m *MockTranscriptionDAO) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}
