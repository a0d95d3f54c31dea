package transcriber

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"audiotranscriber/internal/app/api"
	"audiotranscriber/internal/app/model"
	"audiotranscriber/internal/app/repository"
	"audiotranscriber/internal/app/util/files"
	"audiotranscriber/internal/config"
)

// AudioTranscriber orchestrates validation, backend transcription and
// transcript persistence for audio files. Failures of individual files are
// absorbed here: callers see a missing result plus a logged diagnostic, never
// a typed backend error.
type AudioTranscriber struct {
	backend    api.Transcriber
	settings   config.Settings
	history    repository.TranscriptionDAO
	logger     *zap.SugaredLogger
	extensions map[string]struct{}
}

// New creates an AudioTranscriber. history may be nil, which disables
// recording.
func New(backend api.Transcriber, settings config.Settings, history repository.TranscriptionDAO, logger *zap.SugaredLogger) *AudioTranscriber {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	extensions := make(map[string]struct{}, len(settings.SupportedExtensions))
	for _, ext := range config.NormalizeExtensions(settings.SupportedExtensions) {
		extensions[ext] = struct{}{}
	}

	return &AudioTranscriber{
		backend:    backend,
		settings:   settings,
		history:    history,
		logger:     logger,
		extensions: extensions,
	}
}

func (t *AudioTranscriber) Close() error {
	t.logger.Sync()
	if t.history != nil {
		return t.history.Close()
	}
	return nil
}

// ValidateAudioFile reports whether path may be submitted to the backend.
// Checks run in order existence, format, size and stop at the first failure,
// which is logged. Stat errors of any kind count as a missing file.
func (t *AudioTranscriber) ValidateAudioFile(path string) bool {
	if err := t.checkAudioFile(path); err != nil {
		t.logger.Error(err)
		return false
	}
	return true
}

func (t *AudioTranscriber) checkAudioFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("file does not exist: %s", path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if _, ok := t.extensions[ext]; !ok {
		return fmt.Errorf("unsupported format %q for %s, supported formats: %s",
			ext, path, strings.Join(t.settings.SupportedExtensions, ", "))
	}

	if info.Size() > t.settings.MaxFileSizeBytes {
		return fmt.Errorf("file size (%.1f MB) exceeds %.1f MB limit: %s",
			float64(info.Size())/(1024*1024), float64(t.settings.MaxFileSizeBytes)/(1024*1024), path)
	}

	return nil
}

// TranscribeFile validates and transcribes a single audio file. The returned
// error only signals "skip this file"; it never aborts a batch. When
// auto-save is configured, a failed save is logged as a warning and the
// transcript is still returned as a success.
func (t *AudioTranscriber) TranscribeFile(ctx context.Context, path string, language string) (string, error) {
	if err := t.checkAudioFile(path); err != nil {
		t.logger.Error(err)
		t.record(path, "", err)
		return "", err
	}

	if language == "" {
		language = t.settings.DefaultLanguage
	}

	if t.settings.ShowProgress {
		t.logger.Infof("transcribing: %s", path)
	}

	audio, err := os.Open(path)
	if err != nil {
		err = fmt.Errorf("error opening %s: %w", path, err)
		t.logger.Error(err)
		t.record(path, "", err)
		return "", err
	}
	defer audio.Close()

	text, err := t.backend.Transcript(ctx, audio, filepath.Base(path), language)
	if err != nil {
		err = fmt.Errorf("error transcribing %s: %w", path, err)
		t.logger.Error(err)
		t.record(path, "", err)
		return "", err
	}

	if t.settings.ShowProgress {
		t.logger.Infof("successfully transcribed: %s", filepath.Base(path))
	}

	if t.settings.AutoSaveTranscripts {
		if !t.SaveTranscript(text, t.TranscriptPath(path)) {
			t.logger.Warnf("error auto-saving transcript for %s", path)
		}
	}

	t.record(path, text, nil)
	return text, nil
}

// TranscriptPath derives the destination for a saved transcript: the
// configured output directory (or the audio file's own directory) plus the
// file stem and the transcript suffix.
func (t *AudioTranscriber) TranscriptPath(audioPath string) string {
	dir := t.settings.OutputDirectory
	if dir == "" {
		dir = filepath.Dir(audioPath)
	}
	return filepath.Join(dir, files.Stem(audioPath)+t.settings.TranscriptFileSuffix+".txt")
}

// SaveTranscript writes text to outputPath, replacing any existing file.
// I/O failures are logged and reported as false, never raised.
func (t *AudioTranscriber) SaveTranscript(text, outputPath string) bool {
	if err := os.WriteFile(outputPath, []byte(text), 0o644); err != nil {
		t.logger.Errorf("error saving transcript: %v", err)
		return false
	}
	if t.settings.ShowProgress {
		t.logger.Infof("transcript saved to: %s", outputPath)
	}
	return true
}

func (t *AudioTranscriber) record(path, transcript string, cause error) {
	if t.history == nil {
		return
	}

	entry := model.Transcription{
		FilePath:    path,
		FileName:    filepath.Base(path),
		Transcript:  transcript,
		ConvertedAt: time.Now(),
	}
	if cause != nil {
		entry.HasError = 1
		entry.ErrorMessage = cause.Error()
	}

	if err := t.history.Record(entry); err != nil {
		t.logger.Warnf("failed to record transcription history for %s: %v", path, err)
	}
}
