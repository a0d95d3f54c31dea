package app

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"audiotranscriber/internal/app/api"
	"audiotranscriber/internal/app/api/openai/whisper"
	"audiotranscriber/internal/app/repository"
	"audiotranscriber/internal/app/repository/sqlite"
	"audiotranscriber/internal/config"
)

// provideBackend wires the OpenAI Whisper adapter as the one transcription
// backend.
func provideBackend(settings config.Settings) api.Transcriber {
	return whisper.NewRemoteTranscriberWithKey(settings.APIKey)
}

func provideLogger() *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	cfg.DisableStacktrace = true
	cfg.DisableCaller = true
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return logger.Sugar()
}

// provideHistoryDAO opens the local transcription history. History is a
// convenience, so any failure only disables it with a warning.
func provideHistoryDAO(logger *zap.SugaredLogger) repository.TranscriptionDAO {
	dao, err := OpenHistory()
	if err != nil {
		logger.Warnf("transcription history disabled: %v", err)
		return nil
	}
	return dao
}

// OpenHistory opens the sqlite history database under the user's home
// directory, creating it on first use.
func OpenHistory() (repository.TranscriptionDAO, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to locate home directory: %w", err)
	}

	dataDir := filepath.Join(home, ".a2t")
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dataDir, err)
	}

	return sqlite.NewSQLiteDB(filepath.Join(dataDir, "transcription.db"))
}

// LoadSettings builds the runtime settings, resolving the credential from the
// explicit flag value, then the environment, then an interactive prompt. A
// key still missing after the prompt is the one fatal configuration error.
func LoadSettings(apiKeyFlag string) (config.Settings, error) {
	settings, err := config.FromEnv()
	if err != nil {
		return config.Settings{}, err
	}

	key, err := config.ResolveAPIKey(apiKeyFlag)
	if err != nil {
		key, err = config.PromptAPIKey(os.Stdin, os.Stderr)
		if err != nil {
			return config.Settings{}, fmt.Errorf("API key is required: %w", err)
		}
	}
	settings.APIKey = key

	return settings, nil
}
