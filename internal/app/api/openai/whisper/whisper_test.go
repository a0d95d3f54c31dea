package whisper

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestTranscriber points a RemoteTranscriber at a fake Whisper endpoint.
func newTestServerTranscriber(t *testing.T, handler http.HandlerFunc) *RemoteTranscriber {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	config := openai.DefaultConfig("test-api-key")
	config.BaseURL = server.URL + "/v1"
	return NewRemoteTranscriber(openai.NewClientWithConfig(config))
}

func TestTranscript_Success(t *testing.T) {
	var gotModel, gotLanguage, gotFormat, gotFilename string

	rt := newTestServerTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")
		require.NotEmpty(t, r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(32<<20))
		gotModel = r.FormValue("model")
		gotLanguage = r.FormValue("language")
		gotFormat = r.FormValue("response_format")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		gotFilename = header.Filename

		// response_format=text returns the raw transcript body
		w.Write([]byte("hello from whisper"))
	})

	text, err := rt.Transcript(context.Background(),
		bytes.NewReader([]byte("fake audio bytes")), "meeting.mp3", "en")

	require.NoError(t, err)
	assert.Equal(t, "hello from whisper", text)
	assert.Equal(t, "whisper-1", gotModel)
	assert.Equal(t, "en", gotLanguage)
	assert.Equal(t, "text", gotFormat)
	assert.Equal(t, "meeting.mp3", gotFilename)
}

func TestTranscript_OmitsEmptyLanguage(t *testing.T) {
	rt := newTestServerTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(32<<20))
		assert.Empty(t, r.FormValue("language"))
		w.Write([]byte("ok"))
	})

	_, err := rt.Transcript(context.Background(),
		strings.NewReader("audio"), "clip.wav", "")
	require.NoError(t, err)
}

func TestTranscript_BackendErrors(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		errorContains string
	}{
		{
			name:          "unauthorized",
			status:        http.StatusUnauthorized,
			body:          `{"error": {"message": "Invalid API key", "type": "invalid_request_error"}}`,
			errorContains: "401",
		},
		{
			name:          "rate_limited",
			status:        http.StatusTooManyRequests,
			body:          `{"error": {"message": "Rate limit exceeded", "type": "rate_limit_error"}}`,
			errorContains: "429",
		},
		{
			name:          "server_error",
			status:        http.StatusInternalServerError,
			body:          `{"error": {"message": "Internal server error", "type": "server_error"}}`,
			errorContains: "500",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt := newTestServerTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			})

			_, err := rt.Transcript(context.Background(),
				strings.NewReader("audio"), "clip.mp3", "en")

			require.Error(t, err)
			assert.Contains(t, err.Error(), "createTranscription failed")
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestTranscript_ContextCancelled(t *testing.T) {
	rt := newTestServerTranscriber(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("too late"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := rt.Transcript(ctx, strings.NewReader("audio"), "clip.mp3", "en")
	assert.Error(t, err)
}
