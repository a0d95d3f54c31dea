package api

import (
	"context"
	"io"
)

// Transcriber defines a transcription interface for converting audio content
// to text. The filename carries the original extension so the backend can
// detect the container format; language is an optional ISO-639-1 hint.
type Transcriber interface {
	Transcript(ctx context.Context, audio io.Reader, filename string, language string) (string, error)
}
