package micro

import "testing"

func TestAuditCleanStore(t *testing.T) {
	var st Store
	st[0] = Encode(Fields{Op: OpOne, C: CH})
	st[1] = Encode(Fields{Op: OpAdd, B: 7, Shift: ShiftLeft8, Addr: 1})
	if findings := Audit(&st); len(findings) != 0 {
		t.Errorf("clean store: got %d findings: %v", len(findings), findings)
	}
}

func TestAuditSkipsUnprogrammedSlots(t *testing.T) {
	// An all-zero word decodes to op 0 (undefined) but is an empty slot,
	// not a microinstruction.
	var st Store
	if findings := Audit(&st); len(findings) != 0 {
		t.Errorf("empty store: got %d findings", len(findings))
	}
}

func TestAuditFindings(t *testing.T) {
	var st Store
	st[3] = Encode(Fields{Op: 1, Addr: 3})                      // undefined op
	st[7] = Encode(Fields{Op: OpB, Shift: 3, Addr: 7})          // undefined shifter
	st[9] = Encode(Fields{Op: OpB, B: 12, Addr: 9})             // no bus driver
	st[11] = Encode(Fields{Op: 2, Shift: 3, B: 15, Addr: 11})   // all three

	findings := Audit(&st)
	if len(findings) != 6 {
		t.Fatalf("got %d findings, want 6: %v", len(findings), findings)
	}

	counts := map[string]int{}
	for _, f := range findings {
		counts[f.Field]++
	}
	if counts["op"] != 2 || counts["shift"] != 2 || counts["b"] != 2 {
		t.Errorf("finding counts = %v, want 2 of each", counts)
	}
}
