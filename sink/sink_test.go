package sink_test

import (
	"bytes"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/delhivery/moirai-sub000/sink"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type closingBuffer struct {
	bytes.Buffer
	closed bool
}

func (c *closingBuffer) Close() error {
	c.closed = true
	return nil
}

func TestJSONLinesSink_WritesOneDocumentPerLine(t *testing.T) {
	buf := &closingBuffer{}
	s := sink.NewJSONLinesSink(buf)

	require.NoError(t, s.Write(sink.Document{ID: "S1", PDD: "01/01/96 10:00:00"}))
	require.NoError(t, s.Write(sink.Document{ID: "S2", PDD: "01/02/96 10:00:00"}))
	require.NoError(t, s.Close())

	assert.True(t, buf.closed)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var doc sink.Document
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &doc))
	assert.Equal(t, "S1", doc.ID)
}

func TestLogSink_WriteNeverErrors(t *testing.T) {
	s := sink.NewLogSink(zerolog.New(io.Discard))
	assert.NoError(t, s.Write(sink.Document{ID: "S1", Error: "no route"}))
	assert.NoError(t, s.Close())
}

func TestMulti_FansOutToAllSinks(t *testing.T) {
	bufA := &closingBuffer{}
	bufB := &closingBuffer{}
	m := sink.NewMulti(sink.NewJSONLinesSink(bufA), sink.NewJSONLinesSink(bufB))

	require.NoError(t, m.Write(sink.Document{ID: "S1"}))
	require.NoError(t, m.Close())

	assert.Contains(t, bufA.String(), "S1")
	assert.Contains(t, bufB.String(), "S1")
	assert.True(t, bufA.closed)
	assert.True(t, bufB.closed)
}
