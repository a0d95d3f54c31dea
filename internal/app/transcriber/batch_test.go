package transcriber

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"audiotranscriber/internal/app/testutil"
)

func TestBatchResult_InsertionOrder(t *testing.T) {
	r := NewBatchResult()
	r.Add("c", "3")
	r.Add("a", "1")
	r.Add("b", "2")

	assert.Equal(t, []string{"c", "a", "b"}, r.Keys())
	assert.Equal(t, []string{"3", "1", "2"}, r.Values())
	assert.Equal(t, 3, r.Len())

	r.Add("a", "replaced")
	assert.Equal(t, []string{"c", "a", "b"}, r.Keys(), "replacing keeps the original position")
	text, ok := r.Get("a")
	assert.True(t, ok)
	assert.Equal(t, "replaced", text)
}

func TestBatchResult_Combine(t *testing.T) {
	r := NewBatchResult()
	r.Add("first", "a")
	r.Add("second", "b")
	r.Add("third", "c")

	assert.Equal(t, "a|b|c", r.Combine("|"))
	assert.Equal(t, "a\n\n--- Next Audio ---\n\nb\n\n--- Next Audio ---\n\nc",
		r.Combine(DefaultSeparator))

	assert.Equal(t, "", NewBatchResult().Combine("|"))
}

func TestBatchKey(t *testing.T) {
	assert.Equal(t, "meeting_transcript_0", BatchKey("/audio/meeting.mp3", 0))
	assert.Equal(t, "meeting_transcript_7", BatchKey("meeting.wav", 7))
}

func TestTranscribeAll_PartialFailurePreservesIndices(t *testing.T) {
	tempDir := t.TempDir()
	paths := []string{
		writeAudioFile(t, tempDir, "one.mp3", 8),
		writeAudioFile(t, tempDir, "two.mp3", 8),
		writeAudioFile(t, tempDir, "three.mp3", 8),
		writeAudioFile(t, tempDir, "four.mp3", 8),
	}

	backend := testutil.NewMockTranscriber()
	backend.ErrorMap["two.mp3"] = errors.New("backend down")
	backend.ErrorMap["four.mp3"] = errors.New("backend down")
	tr, _ := newTestTranscriber(t, testSettings(), backend)

	results := tr.TranscribeAll(context.Background(), paths, "")

	assert.Equal(t, len(paths)-2, results.Len())
	assert.Equal(t, []string{"one_transcript_0", "three_transcript_2"}, results.Keys(),
		"skipped files leave gaps, surviving keys keep their original index")
	assert.Equal(t, 4, backend.CallCount, "every file is attempted, failures never abort the batch")
}

func TestTranscribeAll_DuplicateStemsGetDistinctKeys(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	paths := []string{
		writeAudioFile(t, dirA, "note.mp3", 8),
		writeAudioFile(t, dirB, "note.mp3", 8),
	}

	tr, _ := newTestTranscriber(t, testSettings(), testutil.NewMockTranscriber())

	results := tr.TranscribeAll(context.Background(), paths, "")

	assert.Equal(t, []string{"note_transcript_0", "note_transcript_1"}, results.Keys())
}

func TestTranscribeAll_EmptyInput(t *testing.T) {
	backend := testutil.NewMockTranscriber()
	tr, logs := newTestTranscriber(t, testSettings(), backend)

	results := tr.TranscribeAll(context.Background(), nil, "")

	assert.Zero(t, results.Len())
	assert.Zero(t, backend.CallCount)
	assert.Zero(t, logs.Len(), "an empty batch emits no diagnostics")
}

func TestTranscribeAll_EndToEnd(t *testing.T) {
	tempDir := t.TempDir()
	x := writeAudioFile(t, tempDir, "x.wav", 16)
	y := writeAudioFile(t, tempDir, "y.wav", 16)

	backend := testutil.NewMockTranscriber()
	backend.ResponseMap["x.wav"] = "transcribed text"
	backend.ErrorMap["y.wav"] = errors.New("simulated backend failure")
	tr, logs := newTestTranscriber(t, testSettings(), backend)

	results := tr.TranscribeAll(context.Background(), []string{x, y}, "")

	require.Equal(t, 1, results.Len())
	text, ok := results.Get("x_transcript_0")
	require.True(t, ok)
	assert.Equal(t, "transcribed text", text)

	_, ok = results.Get("y_transcript_1")
	assert.False(t, ok)

	var skipped bool
	for _, entry := range logs.All() {
		if entry.Level == zapcore.WarnLevel && strings.Contains(entry.Message, "skipping") {
			skipped = true
		}
	}
	assert.True(t, skipped, "a skip diagnostic is emitted for the failed file")
}

func TestTranscribeAll_RecordsHistory(t *testing.T) {
	tempDir := t.TempDir()
	good := writeAudioFile(t, tempDir, "good.mp3", 8)
	bad := writeAudioFile(t, tempDir, "bad.mp3", 8)

	backend := testutil.NewMockTranscriber()
	backend.ErrorMap["bad.mp3"] = errors.New("boom")

	history := testutil.NewMockTranscriptionDAO()
	core, _ := observer.New(zapcore.DebugLevel)
	tr := New(backend, testSettings(), history, zap.New(core).Sugar())

	tr.TranscribeAll(context.Background(), []string{good, bad}, "")

	require.Len(t, history.Records, 2)
	assert.Equal(t, 0, history.Records[0].HasError)
	assert.Equal(t, "good.mp3", history.Records[0].FileName)
	assert.Equal(t, 1, history.Records[1].HasError)
	assert.Contains(t, history.Records[1].ErrorMessage, "boom")
}

func TestTranscribeAll_HistoryFailureOnlyWarns(t *testing.T) {
	tempDir := t.TempDir()
	path := writeAudioFile(t, tempDir, "solo.mp3", 8)

	history := testutil.NewMockTranscriptionDAO()
	history.RecordError = errors.New("disk full")
	core, logs := observer.New(zapcore.DebugLevel)
	tr := New(testutil.NewMockTranscriber(), testSettings(), history, zap.New(core).Sugar())

	results := tr.TranscribeAll(context.Background(), []string{path}, "")

	assert.Equal(t, 1, results.Len(), "history is best-effort and never fails a transcription")

	var warned bool
	for _, entry := range logs.All() {
		if entry.Level == zapcore.WarnLevel && strings.Contains(entry.Message, "history") {
			warned = true
		}
	}
	assert.True(t, warned)
}

func TestTranscribeAllWithProgress_MatchesPlainBatch(t *testing.T) {
	tempDir := t.TempDir()
	var paths []string
	for i := 0; i < 3; i++ {
		paths = append(paths, writeAudioFile(t, tempDir, fmt.Sprintf("clip%d.mp3", i), 8))
	}

	backend := testutil.NewMockTranscriber()
	backend.ErrorMap["clip1.mp3"] = errors.New("nope")
	tr, _ := newTestTranscriber(t, testSettings(), backend)

	pat := NewProgressAwareTranscriber(tr, ProgressConfig{Enabled: false})
	results := pat.TranscribeAllWithProgress(context.Background(), paths, "")

	assert.Equal(t, []string{"clip0_transcript_0", "clip2_transcript_2"}, results.Keys())
	assert.Zero(t, NewProgressAwareTranscriber(tr, ProgressConfig{Enabled: false}).
		TranscribeAllWithProgress(context.Background(), nil, "").Len())
}
