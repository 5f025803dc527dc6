package cpu

import "github.com/microprog/mic1/pkg/micro"

// signExtendMask covers bits 8..31, OR-ed in when MBR bit 7 is set.
const signExtendMask = 0xFFFFFF00

// busB drives the selected register onto bus B. Selector 2 sign-extends
// MBR, 3 zero-extends it. A selector with no driver reads all-ones.
func busB(r *Registers, sel uint8) uint32 {
	switch sel {
	case 0:
		return r.MDR
	case 1:
		return r.PC
	case 2:
		v := uint32(r.MBR)
		if r.MBR&0x80 != 0 {
			v |= signExtendMask
		}
		return v
	case 3:
		return uint32(r.MBR)
	case 4:
		return r.SP
	case 5:
		return r.LV
	case 6:
		return r.CPP
	case 7:
		return r.TOS
	case 8:
		return r.OPC
	default:
		return 0xFFFFFFFF
	}
}

// alu computes f(h, b) for a defined op code. ok is false for the other
// 49 codes, meaning bus C is not clocked this cycle. All arithmetic wraps
// mod 2^32.
func alu(op uint8, h, b uint32) (v uint32, ok bool) {
	switch op {
	case micro.OpAnd:
		return h & b, true
	case micro.OpOne:
		return 1, true
	case micro.OpMinusOne:
		return 0xFFFFFFFF, true
	case micro.OpB:
		return b, true
	case micro.OpH:
		return h, true
	case micro.OpNotH:
		return ^h, true
	case micro.OpOr:
		return h | b, true
	case micro.OpNotB:
		return ^b, true
	case micro.OpBPlus1:
		return b + 1, true
	case micro.OpBMinus1:
		return b - 1, true
	case micro.OpHPlus1:
		return h + 1, true
	case micro.OpNegH:
		return -h, true
	case micro.OpAdd:
		return h + b, true
	case micro.OpAddPlus1:
		return h + b + 1, true
	case micro.OpBMinusH:
		return b - h, true
	}
	return 0, false
}

// shift applies the shifter to the ALU result. Shifts are logical; code 3
// is undefined and passes the value through.
func shift(code uint8, v uint32) uint32 {
	switch code {
	case micro.ShiftLeft8:
		return v << 8
	case micro.ShiftRight1:
		return v >> 1
	}
	return v
}
