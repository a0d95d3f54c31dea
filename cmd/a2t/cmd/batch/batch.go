package batch

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"audiotranscriber/internal/app"
	"audiotranscriber/internal/app/model"
	"audiotranscriber/internal/app/transcriber"
	"audiotranscriber/internal/app/util/console"
	"audiotranscriber/internal/app/util/files"
)

var (
	audioFiles []string
	inputDir   string
	extension  string
	language   string
	combine    bool
	output     string
	apiKey     string
)

func init() {
	Cmd.Flags().StringArrayVarP(&audioFiles, "file", "f", nil,
		"audio file to transcribe, repeatable; order determines the batch order")
	Cmd.Flags().StringVarP(&inputDir, "dir", "d", "",
		"directory of audio files to transcribe, oldest first")
	Cmd.Flags().StringVarP(&extension, "ext", "e", ".mp3",
		"file extension to pick up when --dir is used")
	Cmd.Flags().StringVarP(&language, "language", "l", "",
		"ISO-639-1 language hint, defaults to the configured language")
	Cmd.Flags().BoolVarP(&combine, "combine", "c", false,
		"combine all transcripts into one file")
	Cmd.Flags().StringVarP(&output, "output", "o", "",
		"destination for the combined transcript (default combined_transcript.txt)")
	Cmd.Flags().StringVarP(&apiKey, "api-key", "k", "",
		"OpenAI API key, overrides OPENAI_API_KEY")
}

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Transcribe multiple audio files in one sequential run",
	Long: `Transcribe multiple audio files in one sequential run.

Files are processed strictly in order, one at a time. A file that fails
validation or transcription is skipped with a diagnostic; the batch always
runs to the end of the input. The run exits zero even when files were
skipped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		paths := append([]string(nil), audioFiles...)
		if inputDir != "" {
			fileInfos, err := files.GetAllFiles(inputDir, extension)
			if err != nil {
				return err
			}
			paths = append(paths, lo.Map(fileInfos, func(fi model.FileInfo, _ int) string {
				return fi.FullPath
			})...)
		}
		if len(paths) == 0 {
			return errors.New("no input files: pass --file or --dir")
		}

		settings, err := app.LoadSettings(apiKey)
		if err != nil {
			return err
		}

		t := transcriber.NewProgressAwareTranscriber(
			app.InitializeTranscriber(settings),
			transcriber.ProgressConfig{
				Enabled: settings.ShowProgress && transcriber.ShouldShowProgress(false),
			},
		)
		defer t.Close()

		results := t.TranscribeAllWithProgress(cmd.Context(), paths, language)

		out := console.NewPrinter(settings.UseDecorativeOutput)
		out.Printf("✅", "successfully transcribed %d of %d files", results.Len(), len(paths))

		for _, key := range results.Keys() {
			text, _ := results.Get(key)
			fmt.Printf("\n==================== %s ====================\n%s\n", key, text)
		}

		if combine && results.Len() > 0 {
			dest := output
			if dest == "" {
				dir := settings.OutputDirectory
				if dir == "" {
					dir = "."
				}
				dest = filepath.Join(dir, "combined_transcript.txt")
			}
			t.SaveTranscript(results.Combine(transcriber.DefaultSeparator), dest)
		}
		return nil
	},
}
