package export

import (
	"fmt"

	"github.com/spf13/cobra"

	"audiotranscriber/internal/app"
	appexport "audiotranscriber/internal/app/export"
)

var (
	format string
	output string
)

func init() {
	Cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "export format: xlsx or csv")
	Cmd.Flags().StringVarP(&output, "output", "o", "", "destination file")

	Cmd.MarkFlagRequired("output")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the transcription history to xlsx or csv",
	RunE: func(cmd *cobra.Command, args []string) error {
		dao, err := app.OpenHistory()
		if err != nil {
			return err
		}
		defer dao.Close()

		transcriptions, err := dao.GetAll()
		if err != nil {
			return err
		}

		switch format {
		case "xlsx":
			err = appexport.ToExcel(transcriptions, output)
		case "csv":
			err = appexport.ToCSV(transcriptions, output)
		default:
			return fmt.Errorf("unsupported format %q, use xlsx or csv", format)
		}
		if err != nil {
			return err
		}

		fmt.Printf("exported %d records to %s\n", len(transcriptions), output)
		return nil
	},
}
