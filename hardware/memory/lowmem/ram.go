// This file is part of dmidecode.
//
// dmidecode is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dmidecode is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dmidecode.  If not, see <https://www.gnu.org/licenses/>.

package lowmem

import (
	"encoding/hex"

	"github.com/bobertlo/dmidecode/curated"
)

// RAM is an emulated low-memory window.
type RAM struct {
	Memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// window is zeroed.
func NewRAM() *RAM {
	return &RAM{
		Memory: make([]uint8, Size),
	}
}

// Snapshot creates a copy of RAM in its current state.
func (ram *RAM) Snapshot() *RAM {
	n := &RAM{Memory: make([]uint8, len(ram.Memory))}
	copy(n.Memory, ram.Memory)
	return n
}

// Reset contents of RAM.
func (ram *RAM) Reset() {
	for i := range ram.Memory {
		ram.Memory[i] = 0
	}
}

// Load copies data into RAM at the origin address. Data that would fall
// outside the window is an error and nothing is copied.
func (ram *RAM) Load(origin int64, data []byte) error {
	skip, count := InWindow(origin, len(data))
	if skip != 0 || count != len(data) {
		return curated.Errorf(AddressError, origin+int64(len(data)))
	}
	copy(ram.Memory[origin:], data)
	return nil
}

func (ram RAM) String() string {
	return hex.Dump(ram.Memory)
}

// Fetch implements the Bus interface.
func (ram *RAM) Fetch(address int64, buffer []byte) {
	fetch(ram.Memory, address, buffer)
}

// Store implements the Bus interface.
func (ram *RAM) Store(address int64, buffer []byte) {
	store(ram.Memory, address, buffer)
}

// Peek returns the byte at address. Unlike Fetch(), an address outside the
// window is an error.
func (ram *RAM) Peek(address uint32) (uint8, error) {
	if address >= Size {
		return 0, curated.Errorf(AddressError, address)
	}
	return ram.Memory[address], nil
}

// Poke sets the byte at address. Unlike Store(), an address outside the
// window is an error.
func (ram *RAM) Poke(address uint32, value uint8) error {
	if address >= Size {
		return curated.Errorf(AddressError, address)
	}
	ram.Memory[address] = value
	return nil
}
