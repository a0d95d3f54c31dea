package whisper

import (
	"context"
	"fmt"
	"io"

	"github.com/sashabaranov/go-openai"
)

// RemoteTranscriber implements remote transcription using the OpenAI Whisper
// API. It is a thin pass-through: one call to the backend per request, no
// retries, no chunking.
type RemoteTranscriber struct {
	client *openai.Client
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance.
func NewRemoteTranscriber(client *openai.Client) *RemoteTranscriber {
	return &RemoteTranscriber{client: client}
}

// NewRemoteTranscriberWithKey builds the underlying client from a bearer
// token.
func NewRemoteTranscriberWithKey(apiKey string) *RemoteTranscriber {
	return NewRemoteTranscriber(openai.NewClient(apiKey))
}

// Transcript uploads the audio stream and returns the backend's plain text
// response.
func (rt *RemoteTranscriber) Transcript(ctx context.Context, audio io.Reader, filename string, language string) (string, error) {
	req := openai.AudioRequest{
		Model:    openai.Whisper1,
		Reader:   audio,
		FilePath: filename,
		Format:   openai.AudioResponseFormatText,
		Language: language,
	}

	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}
