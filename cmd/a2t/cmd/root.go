package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"audiotranscriber/cmd/a2t/cmd/batch"
	"audiotranscriber/cmd/a2t/cmd/export"
	"audiotranscriber/cmd/a2t/cmd/transcribe"
	"audiotranscriber/cmd/a2t/cmd/version"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "a2t",
	Short: "Transcribe audio files to text using the OpenAI Whisper API",
	Long: `Transcribe audio files to text using the OpenAI Whisper API.
- Validate audio files against format and size limits before any upload
- Transcribe single files or whole batches, skipping files that fail
- Optionally combine batch transcripts and save them as text files`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(transcribe.Cmd)
	rootCmd.AddCommand(batch.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
