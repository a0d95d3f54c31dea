//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"audiotranscriber/internal/app/transcriber"
	"audiotranscriber/internal/config"
)

func InitializeTranscriber(settings config.Settings) *transcriber.AudioTranscriber {
	wire.Build(transcriber.New, provideBackend, provideLogger, provideHistoryDAO)
	return &transcriber.AudioTranscriber{}
}
