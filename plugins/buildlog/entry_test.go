package buildlog

import (
	"bufio"
	"encoding/json"
	"os"
	"path"
	"testing"
	"time"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBatchRoundTrips(t *testing.T) {
	dir := t.TempDir()
	b := (&BuildLog{}).New([]byte("root: " + dir)).(*BuildLog)

	when := time.Date(2026, 8, 25, 14, 30, 0, 0, time.UTC)
	entry := BatchEntry{
		Time:         when,
		RequestID:    "req-1",
		Source:       "cli",
		Description:  "sphere",
		Sent:         3,
		Failed:       1,
		Instructions: []string{"fill 0 64 0 1 64 1 stone", "setblock 0 65 0 stone"},
	}
	require.NoError(t, b.RecordBatch(entry))
	second := entry
	second.RequestID = "req-2"
	require.NoError(t, b.RecordBatch(second))
	b.Close()

	f, err := os.Open(path.Join(dir, "2026-08-25T14.jsonl.zst"))
	require.NoError(t, err)
	defer f.Close()
	dec, err := zstd.NewReader(f)
	require.NoError(t, err)
	defer dec.Close()

	scanner := bufio.NewScanner(dec)
	require.True(t, scanner.Scan())
	var got BatchEntry
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &got))
	assert.Equal(t, entry, got)
	require.True(t, scanner.Scan())
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &got))
	assert.Equal(t, "req-2", got.RequestID)
	assert.False(t, scanner.Scan())
}

func TestRecordBatchRotatesHourly(t *testing.T) {
	dir := t.TempDir()
	b := (&BuildLog{}).New([]byte("root: " + dir)).(*BuildLog)

	first := BatchEntry{Time: time.Date(2026, 8, 25, 10, 59, 0, 0, time.UTC), Source: "cli"}
	second := BatchEntry{Time: time.Date(2026, 8, 25, 11, 0, 0, 0, time.UTC), Source: "cli"}
	require.NoError(t, b.RecordBatch(first))
	require.NoError(t, b.RecordBatch(second))
	b.Close()

	for _, name := range []string{"2026-08-25T10.jsonl.zst", "2026-08-25T11.jsonl.zst"} {
		_, err := os.Stat(path.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestRecordBatchFillsMissingTime(t *testing.T) {
	dir := t.TempDir()
	b := (&BuildLog{}).New([]byte("root: " + dir)).(*BuildLog)
	defer b.Close()
	require.NoError(t, b.RecordBatch(BatchEntry{Source: "cli"}))
}
