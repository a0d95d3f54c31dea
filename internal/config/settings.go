package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Settings holds all process-wide configuration. It is built once at startup,
// validated, and treated as read-only afterwards; components receive it through
// their constructors and never consult environment variables themselves.
type Settings struct {
	// APIKey is the bearer token for the transcription backend.
	APIKey string

	// DefaultLanguage is the ISO-639-1 language hint used when a call does
	// not pass an explicit language.
	DefaultLanguage string `validate:"required,min=2,max=8"`

	// MaxFileSizeBytes is the upload limit enforced before any network use.
	MaxFileSizeBytes int64 `validate:"required,gt=0"`

	// SupportedExtensions is the allow-list of audio file extensions,
	// lower-cased and including the leading dot.
	SupportedExtensions []string `validate:"required,min=1,dive,startswith=."`

	// OutputDirectory is where transcripts are written; empty means the
	// source file's directory.
	OutputDirectory string

	// AutoSaveTranscripts persists every successful transcript without
	// asking.
	AutoSaveTranscripts bool

	// TranscriptFileSuffix is appended to the audio file's stem when
	// deriving a transcript file name.
	TranscriptFileSuffix string `validate:"required"`

	// ShowProgress enables per-file progress notes and progress bars.
	ShowProgress bool

	// UseDecorativeOutput prefixes user-facing messages with emojis.
	// Purely cosmetic.
	UseDecorativeOutput bool
}

// OpenAI caps audio uploads at 25 MB per request.
const defaultMaxFileSize = 25 * 1024 * 1024

func Default() Settings {
	return Settings{
		DefaultLanguage:      "en",
		MaxFileSizeBytes:     defaultMaxFileSize,
		SupportedExtensions:  []string{".mp3", ".mp4", ".mpeg", ".mpga", ".m4a", ".wav", ".webm"},
		OutputDirectory:      "",
		AutoSaveTranscripts:  false,
		TranscriptFileSuffix: "_transcript",
		ShowProgress:         true,
		UseDecorativeOutput:  true,
	}
}

// LoadEnv loads environment variables from a .env file if one exists nearby.
// Missing files are not an error; system-wide environment variables may
// already be set.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
		"../.env",
		"../../.env",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// FromEnv builds Settings from the defaults with environment overrides
// applied, then validates the result.
func FromEnv() (Settings, error) {
	s := Default()

	s.APIKey = strings.TrimSpace(os.Getenv("OPENAI_API_KEY"))

	if v := os.Getenv("A2T_DEFAULT_LANGUAGE"); v != "" {
		s.DefaultLanguage = v
	}
	if v := os.Getenv("A2T_MAX_FILE_SIZE_BYTES"); v != "" {
		size, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Settings{}, fmt.Errorf("invalid A2T_MAX_FILE_SIZE_BYTES %q: %w", v, err)
		}
		s.MaxFileSizeBytes = size
	}
	if v := os.Getenv("A2T_SUPPORTED_EXTENSIONS"); v != "" {
		s.SupportedExtensions = NormalizeExtensions(strings.Split(v, ","))
	}
	if v := os.Getenv("A2T_OUTPUT_DIR"); v != "" {
		s.OutputDirectory = v
	}
	if v := os.Getenv("A2T_TRANSCRIPT_SUFFIX"); v != "" {
		s.TranscriptFileSuffix = v
	}
	s.AutoSaveTranscripts = envBool("A2T_AUTO_SAVE", s.AutoSaveTranscripts)
	s.ShowProgress = envBool("A2T_SHOW_PROGRESS", s.ShowProgress)
	s.UseDecorativeOutput = envBool("A2T_DECORATIVE_OUTPUT", s.UseDecorativeOutput)

	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks the settings against their declared constraints.
func (s Settings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// NormalizeExtensions lower-cases extensions and ensures each carries a
// leading dot.
func NormalizeExtensions(exts []string) []string {
	normalized := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		normalized = append(normalized, ext)
	}
	return normalized
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}
