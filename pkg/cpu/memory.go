package cpu

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
)

// DefaultMemorySize is the main memory size of the full machine.
const DefaultMemorySize = 100_000_000

// ProgramBase is the byte address where the program area starts. The 20
// initialization bytes live at address 0. Both offsets are guest ABI and
// must not move.
const (
	ProgramBase = 0x0401
	InitSize    = 20
)

// Memory is flat byte-addressed main memory, word-addressable in units of
// 4 bytes through the word port. Unloaded regions read zero. Out-of-range
// accesses panic; the machine has no recovery from a wild MAR.
type Memory struct {
	bytes []byte
}

// NewMemory allocates zero-filled memory of the given size in bytes.
func NewMemory(size int) *Memory {
	return &Memory{bytes: make([]byte, size)}
}

// Byte returns the byte at addr.
func (m *Memory) Byte(addr uint32) uint8 {
	return m.bytes[addr]
}

// SetByte stores one byte at addr. The datapath itself only writes through
// the word port.
func (m *Memory) SetByte(addr uint32, v uint8) {
	m.bytes[addr] = v
}

// Word reads the 4 bytes at word index idx (byte address idx*4),
// little-endian.
func (m *Memory) Word(idx uint32) uint32 {
	return binary.LittleEndian.Uint32(m.bytes[idx*4:])
}

// SetWord writes v little-endian at word index idx.
func (m *Memory) SetWord(idx uint32, v uint32) {
	binary.LittleEndian.PutUint32(m.bytes[idx*4:], v)
}

// Size returns the memory size in bytes.
func (m *Memory) Size() int {
	return len(m.bytes)
}

// ErrMissingImage is returned by LoadImage when the program file does not
// exist. Memory is left zero-filled, so callers may treat this as a
// warning.
var ErrMissingImage = errors.New("program image not found")

// LoadImage loads a guest program image:
//
//	bytes [0..4)    little-endian payload size S (the prefix is not counted)
//	bytes [4..24)   20 bytes of initialization, placed at Memory[0..20)
//	bytes [24..4+S) program bytes, placed at Memory[0x0401..)
func LoadImage(m *Memory, path string) error {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrMissingImage
		}
		return fmt.Errorf("open program image: %w", err)
	}
	defer f.Close()

	var prefix [4]byte
	if _, err := io.ReadFull(f, prefix[:]); err != nil {
		return fmt.Errorf("read image size prefix: %w", err)
	}
	size := binary.LittleEndian.Uint32(prefix[:])
	if size < InitSize {
		return fmt.Errorf("image payload %d bytes, need at least %d", size, InitSize)
	}

	if _, err := io.ReadFull(f, m.bytes[:InitSize]); err != nil {
		return fmt.Errorf("read initialization block: %w", err)
	}

	prog := m.bytes[ProgramBase : ProgramBase+int(size)-InitSize]
	if _, err := io.ReadFull(f, prog); err != nil {
		return fmt.Errorf("read program area: %w", err)
	}
	return nil
}
