package app

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheBellman/timeutility/pkg/config"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.Default()
	require.NoError(t, err)

	a := New(cfg)
	var buf bytes.Buffer
	a.SetOutput(&buf)
	return a, &buf
}

func TestRunTextFormat(t *testing.T) {
	a, buf := newTestApp(t)

	err := a.Run(RunParams{
		From:   "2016-02-14T03:17:27Z",
		To:     "2016-02-14T05:43:17Z",
		Unit:   "hours",
		Format: "text",
	})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "2016-02-14T03:00:00Z", lines[0])
	assert.Equal(t, "2016-02-14T05:00:00Z", lines[2])
}

func TestRunJSONFormat(t *testing.T) {
	a, buf := newTestApp(t)

	err := a.Run(RunParams{
		From:   "2016-02-14T03:17:27Z",
		To:     "2016-02-14T05:43:17Z",
		Unit:   "hours",
		Format: "json",
	})
	require.NoError(t, err)

	var doc struct {
		Unit  string   `json:"unit"`
		Count int      `json:"count"`
		Ticks []string `json:"ticks"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "hours", doc.Unit)
	assert.Equal(t, 3, doc.Count)
	assert.Len(t, doc.Ticks, 3)
}

func TestRunBadInput(t *testing.T) {
	a, _ := newTestApp(t)

	err := a.Run(RunParams{From: "not a time"})
	assert.Error(t, err)
}
