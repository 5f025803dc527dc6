// Package trace records per-cycle machine snapshots and serializes them
// for offline inspection.
package trace

import (
	"encoding/json"
	"io"

	"github.com/microprog/mic1/pkg/cpu"
)

// Snapshot is the architectural state after one microcycle.
type Snapshot struct {
	Cycle int    `json:"cycle"`
	MPC   uint16 `json:"mpc"`
	MIR   uint64 `json:"mir"`
	MAR   uint32 `json:"mar"`
	MDR   uint32 `json:"mdr"`
	PC    uint32 `json:"pc"`
	MBR   uint8  `json:"mbr"`
	SP    uint32 `json:"sp"`
	LV    uint32 `json:"lv"`
	CPP   uint32 `json:"cpp"`
	TOS   uint32 `json:"tos"`
	OPC   uint32 `json:"opc"`
	H     uint32 `json:"h"`
	N     bool   `json:"n"`
	Z     bool   `json:"z"`
}

// Recorder accumulates snapshots in cycle order.
type Recorder struct {
	snaps []Snapshot
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Record captures the machine state after the given cycle number.
func (rec *Recorder) Record(cycle int, m *cpu.Machine) {
	r := &m.Reg
	rec.snaps = append(rec.snaps, Snapshot{
		Cycle: cycle,
		MPC:   r.MPC,
		MIR:   uint64(r.MIR),
		MAR:   r.MAR,
		MDR:   r.MDR,
		PC:    r.PC,
		MBR:   r.MBR,
		SP:    r.SP,
		LV:    r.LV,
		CPP:   r.CPP,
		TOS:   r.TOS,
		OPC:   r.OPC,
		H:     r.H,
		N:     r.N,
		Z:     r.Z,
	})
}

// Len returns the number of recorded cycles.
func (rec *Recorder) Len() int {
	return len(rec.snaps)
}

// Snapshots returns the recorded cycles in order.
func (rec *Recorder) Snapshots() []Snapshot {
	return rec.snaps
}

// WriteJSON writes the recorded cycles as an indented JSON array.
func (rec *Recorder) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(rec.snaps)
}
