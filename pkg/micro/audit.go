package micro

import "fmt"

// Finding is one suspicious field in a control store entry.
type Finding struct {
	Addr  uint16 // control store address
	Field string // "op", "shift" or "b"
	Value uint8
}

func (f Finding) String() string {
	switch f.Field {
	case "op":
		return fmt.Sprintf("0x%03X: undefined ALU op %d (bus C will not be clocked)", f.Addr, f.Value)
	case "shift":
		return fmt.Sprintf("0x%03X: undefined shifter code %d", f.Addr, f.Value)
	default:
		return fmt.Sprintf("0x%03X: bus-B selector %d has no driver (reads all-ones)", f.Addr, f.Value)
	}
}

// Audit statically scans a control store and reports fields whose values
// the datapath does not define. All-zero entries are unprogrammed slots
// and are skipped, so a microprogram that jumps into one is not reported.
func Audit(st *Store) []Finding {
	var out []Finding
	for addr, w := range st {
		if w == 0 {
			continue
		}
		f := w.Fields()
		if !DefinedOp(f.Op) {
			out = append(out, Finding{Addr: uint16(addr), Field: "op", Value: f.Op})
		}
		if f.Shift == 3 {
			out = append(out, Finding{Addr: uint16(addr), Field: "shift", Value: f.Shift})
		}
		if f.B > 8 {
			out = append(out, Finding{Addr: uint16(addr), Field: "b", Value: f.B})
		}
	}
	return out
}
