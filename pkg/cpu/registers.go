// Package cpu implements the Mic-1 datapath: the register file, main
// memory, the ALU with its shifter and flag flip-flops, and the
// microinstruction-driven cycle machine.
//
// The Mic-1 is a microprogrammed stack machine with:
//   - Nine 32-bit working registers (MAR, MDR, PC, SP, LV, CPP, TOS, OPC, H)
//   - An 8-bit memory byte register (MBR) for opcode fetch
//   - Two internal buses (B into the ALU, C out of the shifter)
//   - A 9-bit microprogram counter addressing a 512-word control store
package cpu

import "github.com/microprog/mic1/pkg/micro"

// Registers holds the full architectural state of the datapath.
// Everything is zero at reset.
type Registers struct {
	MAR uint32 // memory address register (word index)
	MDR uint32 // memory data register
	PC  uint32 // program counter (byte index)
	MBR uint8  // memory byte register (fetched opcode byte)
	SP  uint32 // stack pointer (word index)
	LV  uint32 // local variable base (word index)
	CPP uint32 // constant pool pointer
	TOS uint32 // cached top of stack
	OPC uint32 // scratch
	H   uint32 // ALU left-hand latch

	MPC uint16     // next microinstruction address, 9 bits
	MIR micro.Word // current microinstruction

	// ALU flip-flops, latched from the unshifted result each cycle.
	// Despite the name, N is a nonzero flag: it is set whenever the
	// result is not zero, regardless of sign. Z is its complement.
	N, Z bool
}

// write latches the bus-C value into every register selected by the mask.
// All destinations receive the same value; order does not matter.
func (r *Registers) write(mask uint16, v uint32) {
	if mask&micro.CMAR != 0 {
		r.MAR = v
	}
	if mask&micro.CMDR != 0 {
		r.MDR = v
	}
	if mask&micro.CPC != 0 {
		r.PC = v
	}
	if mask&micro.CSP != 0 {
		r.SP = v
	}
	if mask&micro.CLV != 0 {
		r.LV = v
	}
	if mask&micro.CCPP != 0 {
		r.CPP = v
	}
	if mask&micro.CTOS != 0 {
		r.TOS = v
	}
	if mask&micro.COPC != 0 {
		r.OPC = v
	}
	if mask&micro.CH != 0 {
		r.H = v
	}
}
