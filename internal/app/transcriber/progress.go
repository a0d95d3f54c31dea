package transcriber

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"
)

type ProgressConfig struct {
	Enabled bool
	Writer  io.Writer
}

type ProgressManager struct {
	container *mpb.Progress
	enabled   bool
}

type ProgressBar struct {
	bar     *mpb.Bar
	enabled bool
}

func NewProgressManager(config ProgressConfig) *ProgressManager {
	if !config.Enabled {
		return &ProgressManager{enabled: false}
	}

	writer := config.Writer
	if writer == nil {
		writer = os.Stderr
	}

	return &ProgressManager{
		container: mpb.New(
			mpb.WithOutput(writer),
			mpb.WithRefreshRate(120*time.Millisecond),
		),
		enabled: true,
	}
}

func (pm *ProgressManager) CreateBar(total int, description string) *ProgressBar {
	if !pm.enabled || pm.container == nil {
		return &ProgressBar{enabled: false}
	}

	bar := pm.container.AddBar(int64(total),
		mpb.PrependDecorators(
			decor.Name(description+" ", decor.WC{W: len(description) + 1, C: decor.DindentRight}),
			decor.CountersNoUnit("(%d/%d)", decor.WCSyncWidth),
		),
		mpb.AppendDecorators(
			decor.NewPercentage("%.1f", decor.WCSyncSpace),
			decor.OnComplete(
				decor.EwmaETA(decor.ET_STYLE_GO, 30, decor.WCSyncWidth), " ✓ ",
			),
		),
	)

	return &ProgressBar{bar: bar, enabled: true}
}

func (pb *ProgressBar) Increment() {
	if pb.enabled && pb.bar != nil {
		pb.bar.Increment()
	}
}

func (pm *ProgressManager) Wait() {
	if pm.enabled && pm.container != nil {
		pm.container.Wait()
	}
}

func (pm *ProgressManager) Shutdown() {
	if pm.enabled && pm.container != nil {
		pm.container.Shutdown()
	}
}

func IsTTY(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	stat, err := file.Stat()
	if err != nil {
		return false
	}
	return (stat.Mode() & os.ModeCharDevice) != 0
}

func ShouldShowProgress(forced bool) bool {
	if forced {
		return true
	}
	return IsTTY(os.Stderr) || IsTTY(os.Stdout)
}

// ProgressAwareTranscriber draws a progress bar while a batch runs. The batch
// itself stays strictly sequential.
type ProgressAwareTranscriber struct {
	*AudioTranscriber
	manager *ProgressManager
}

func NewProgressAwareTranscriber(t *AudioTranscriber, config ProgressConfig) *ProgressAwareTranscriber {
	return &ProgressAwareTranscriber{
		AudioTranscriber: t,
		manager:          NewProgressManager(config),
	}
}

func (p *ProgressAwareTranscriber) Close() error {
	if p.manager != nil {
		p.manager.Shutdown()
	}
	return p.AudioTranscriber.Close()
}

// TranscribeAllWithProgress behaves exactly like TranscribeAll and advances a
// progress bar after each file, failed or not.
func (p *ProgressAwareTranscriber) TranscribeAllWithProgress(ctx context.Context, paths []string, language string) *BatchResult {
	if len(paths) == 0 {
		return NewBatchResult()
	}

	bar := p.manager.CreateBar(len(paths), "Transcribing audios")
	defer p.manager.Wait()

	results := p.transcribeAll(ctx, paths, language, bar.Increment)
	bar.complete()
	return results
}

func (pb *ProgressBar) complete() {
	if pb.enabled && pb.bar != nil {
		pb.bar.SetTotal(pb.bar.Current(), true)
	}
}
