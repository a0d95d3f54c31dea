package transcribe

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"audiotranscriber/internal/app"
	"audiotranscriber/internal/app/util/console"
)

var (
	filePath string
	language string
	output   string
	save     bool
	apiKey   string
)

func init() {
	Cmd.Flags().StringVarP(&filePath, "file", "f", "",
		"path to the audio file to transcribe")
	Cmd.Flags().StringVarP(&language, "language", "l", "",
		"ISO-639-1 language hint, defaults to the configured language")
	Cmd.Flags().StringVarP(&output, "output", "o", "",
		"write the transcript to this path")
	Cmd.Flags().BoolVarP(&save, "save", "s", false,
		"save the transcript next to the audio file (or in the configured output directory)")
	Cmd.Flags().StringVarP(&apiKey, "api-key", "k", "",
		"OpenAI API key, overrides OPENAI_API_KEY")

	Cmd.MarkFlagRequired("file")
}

// Cmd represents the transcribe command
var Cmd = &cobra.Command{
	Use:   "transcribe",
	Short: "Transcribe a single audio file to text",
	Long: `Transcribe a single audio file to text.

The file is validated against the supported formats and the size limit before
anything is uploaded. A failed transcription is reported but is not a fatal
error.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := app.LoadSettings(apiKey)
		if err != nil {
			return err
		}

		t := app.InitializeTranscriber(settings)
		defer t.Close()

		out := console.NewPrinter(settings.UseDecorativeOutput)

		text, err := t.TranscribeFile(cmd.Context(), filePath, language)
		if err != nil {
			// Diagnostic already logged; item failures never change
			// the exit code.
			out.Printf("⚠️", "skipping %s due to error", filePath)
			return nil
		}

		out.Println("📄", "TRANSCRIPT:")
		fmt.Println(strings.Repeat("=", 50))
		fmt.Println(text)
		fmt.Println(strings.Repeat("=", 50))

		dest := output
		if dest == "" && save && !settings.AutoSaveTranscripts {
			dest = t.TranscriptPath(filePath)
		}
		if dest != "" {
			t.SaveTranscript(text, dest)
		}
		return nil
	},
}
