package trace

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/microprog/mic1/pkg/cpu"
	"github.com/microprog/mic1/pkg/micro"
)

func TestRecorderCapturesCycles(t *testing.T) {
	var st micro.Store
	st[0] = micro.Encode(micro.Fields{Op: micro.OpHPlus1, C: micro.CH})

	m := cpu.NewMachine(cpu.NewMemory(64), &st)
	rec := NewRecorder()
	for cycle := 0; cycle < 3; cycle++ {
		m.Step()
		rec.Record(cycle, m)
	}

	require.Equal(t, 3, rec.Len())
	snaps := rec.Snapshots()
	assert.Equal(t, uint32(1), snaps[0].H)
	assert.Equal(t, uint32(2), snaps[1].H)
	assert.Equal(t, uint32(3), snaps[2].H)
	assert.True(t, snaps[2].N)
	assert.False(t, snaps[2].Z)
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var st micro.Store
	st[0] = micro.Encode(micro.Fields{Op: micro.OpOne, C: micro.CTOS})

	m := cpu.NewMachine(cpu.NewMemory(64), &st)
	rec := NewRecorder()
	m.Step()
	rec.Record(0, m)

	var buf bytes.Buffer
	require.NoError(t, rec.WriteJSON(&buf))

	var decoded []Snapshot
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, rec.Snapshots()[0], decoded[0])
}

func TestWriteJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRecorder().WriteJSON(&buf))
	assert.Equal(t, "null\n", buf.String())
}
