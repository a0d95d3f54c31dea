package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samber/lo"
	"github.com/tealeg/xlsx"

	"audiotranscriber/internal/app/model"
)

var header = []string{"ID", "File Name", "File Path", "Converted At", "Transcript", "Error Message"}

// ToExcel writes the transcription history to an xlsx workbook.
func ToExcel(transcriptions []model.Transcription, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Transcriptions")
	if err != nil {
		return fmt.Errorf("failed to add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, title := range header {
		headerRow.AddCell().Value = title
	}

	for _, t := range transcriptions {
		row := sheet.AddRow()
		for _, value := range recordOf(t) {
			row.AddCell().Value = value
		}
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("failed to save %s: %w", outputFilePath, err)
	}
	return nil
}

// ToCSV writes the transcription history as a CSV file.
func ToCSV(transcriptions []model.Transcription, outputFilePath string) error {
	f, err := os.Create(outputFilePath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFilePath, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	records := append([][]string{header},
		lo.Map(transcriptions, func(t model.Transcription, _ int) []string {
			return recordOf(t)
		})...)
	if err := w.WriteAll(records); err != nil {
		return fmt.Errorf("failed to write %s: %w", outputFilePath, err)
	}
	return nil
}

func recordOf(t model.Transcription) []string {
	return []string{
		strconv.Itoa(t.ID),
		t.FileName,
		t.FilePath,
		t.ConvertedAt.Format(time.RFC3339),
		t.Transcript,
		t.ErrorMessage,
	}
}
