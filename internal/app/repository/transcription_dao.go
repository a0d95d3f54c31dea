package repository

import (
	"audiotranscriber/internal/app/model"
)

// TranscriptionDAO records transcription attempts for later inspection and
// export. Implementations must be safe for sequential use from a single
// goroutine.
type TranscriptionDAO interface {
	Close() error

	// Record persists one attempt, successful or failed.
	Record(t model.Transcription) error

	// GetAll returns all recorded attempts, most recent first.
	GetAll() ([]model.Transcription, error)
}
