package cpu

import "github.com/microprog/mic1/pkg/micro"

// Machine is the whole datapath: register file, main memory and control
// store. One Step is one microcycle; the machine is strictly synchronous
// and single-threaded, and there is no halt microinstruction — the driver
// decides when to stop.
type Machine struct {
	Reg   Registers
	Mem   *Memory
	Store *micro.Store

	// busC holds the last clocked ALU result. An undefined op code
	// does not clock the latch, so the value persists across cycles.
	busC uint32
}

// NewMachine wires a zeroed register file to the given memory and control
// store.
func NewMachine(mem *Memory, store *micro.Store) *Machine {
	return &Machine{Mem: mem, Store: store}
}

// Step executes one microcycle. Phase order is a hard contract:
//
//	MIR <- Store[MPC]; decode; MPC <- ADDR
//	bus B reads the pre-cycle register file
//	ALU + flags (from the unshifted result), then the shifter
//	bus C latches into every destination the C mask selects
//	memory port (sees the freshly latched MAR/MDR/PC): fetch, write, read
//	sequencer OR-modifies MPC with N, Z and MBR per JAM
//
// Bus B and the ALU therefore observe the previous cycle's registers,
// while the sequencer observes this cycle's MBR.
func (m *Machine) Step() {
	r := &m.Reg
	r.MIR = m.Store[r.MPC]
	f := r.MIR.Fields()
	r.MPC = f.Addr

	b := busB(r, f.B)

	if v, ok := alu(f.Op, r.H, b); ok {
		m.busC = v
	}
	r.N = m.busC != 0
	r.Z = m.busC == 0
	out := shift(f.Shift, m.busC)

	r.write(f.C, out)

	// Write before read, so a combined read+write returns the word
	// just written.
	if f.Mem&micro.MemFetch != 0 {
		r.MBR = m.Mem.Byte(r.PC)
	}
	if f.Mem&micro.MemWrite != 0 {
		m.Mem.SetWord(r.MAR, r.MDR)
	}
	if f.Mem&micro.MemRead != 0 {
		r.MDR = m.Mem.Word(r.MAR)
	}

	if f.Jam&micro.JamN != 0 && r.N {
		r.MPC |= 1 << 8
	}
	if f.Jam&micro.JamZ != 0 && r.Z {
		r.MPC |= 1 << 8
	}
	if f.Jam&micro.JamMBR != 0 {
		r.MPC |= uint16(r.MBR)
	}
}
