package transcriber

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"audiotranscriber/internal/app/util/files"
)

// DefaultSeparator is inserted between transcripts when combining a batch.
const DefaultSeparator = "\n\n--- Next Audio ---\n\n"

// BatchResult is an insertion-ordered mapping from generated transcript keys
// to transcript text. Keys have the form {stem}_transcript_{index} where
// index is the file's zero-based position in the submitted batch; files that
// failed are simply absent.
type BatchResult struct {
	keys   []string
	values map[string]string
}

func NewBatchResult() *BatchResult {
	return &BatchResult{values: make(map[string]string)}
}

// Add inserts or replaces an entry. A replaced key keeps its original
// position.
func (r *BatchResult) Add(key, text string) {
	if _, exists := r.values[key]; !exists {
		r.keys = append(r.keys, key)
	}
	r.values[key] = text
}

func (r *BatchResult) Get(key string) (string, bool) {
	text, ok := r.values[key]
	return text, ok
}

func (r *BatchResult) Len() int {
	return len(r.keys)
}

// Keys returns the keys in insertion order.
func (r *BatchResult) Keys() []string {
	return append([]string(nil), r.keys...)
}

// Values returns the transcripts in insertion order.
func (r *BatchResult) Values() []string {
	return lo.Map(r.keys, func(key string, _ int) string {
		return r.values[key]
	})
}

// Combine joins the transcripts in insertion order using separator. An empty
// result combines to the empty string.
func (r *BatchResult) Combine(separator string) string {
	return strings.Join(r.Values(), separator)
}

// BatchKey builds the result key for the file at the given batch position.
// The index is the position in the submitted batch, so skipped files leave
// gaps in the numbering instead of shifting later entries.
func BatchKey(path string, index int) string {
	return fmt.Sprintf("%s_transcript_%d", files.Stem(path), index)
}

// TranscribeAll transcribes paths one at a time, in the given order. A failed
// file is skipped and never aborts the batch; the caller notices failures
// only through missing entries. An empty input yields an empty result.
func (t *AudioTranscriber) TranscribeAll(ctx context.Context, paths []string, language string) *BatchResult {
	return t.transcribeAll(ctx, paths, language, nil)
}

func (t *AudioTranscriber) transcribeAll(ctx context.Context, paths []string, language string, onItem func()) *BatchResult {
	results := NewBatchResult()

	for i, path := range paths {
		text, err := t.TranscribeFile(ctx, path, language)
		if onItem != nil {
			onItem()
		}
		if err != nil {
			if t.settings.ShowProgress {
				t.logger.Warnf("skipping %s due to error", path)
			}
			continue
		}

		key := BatchKey(path, i)
		results.Add(key, text)
		if t.settings.ShowProgress {
			t.logger.Infof("transcript stored as: %q", key)
		}
	}

	return results
}
