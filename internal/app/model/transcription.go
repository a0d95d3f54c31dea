package model

import "time"

// Transcription is one recorded transcription attempt, successful or not.
type Transcription struct {
	ID           int
	FilePath     string
	FileName     string
	Transcript   string
	ConvertedAt  time.Time
	HasError     int
	ErrorMessage string
}
