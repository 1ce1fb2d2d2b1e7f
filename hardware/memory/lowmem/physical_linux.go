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

//go:build linux

package lowmem

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/bobertlo/dmidecode/curated"
)

// Physical is the low-memory window of the real machine, mapped from a memory
// device file.
type Physical struct {
	window []byte
}

// NewPhysical maps the first megabyte of the named memory device. If writable
// is false the mapping is read-only and any Store() will fault.
func NewPhysical(device string, writable bool) (*Physical, error) {
	flags := os.O_RDONLY
	prot := unix.PROT_READ
	if writable {
		flags = os.O_RDWR
		prot |= unix.PROT_WRITE
	}

	f, err := os.OpenFile(device, flags|unix.O_SYNC, 0)
	if err != nil {
		return nil, curated.Errorf("lowmem: %v", err)
	}
	defer f.Close()

	window, err := unix.Mmap(int(f.Fd()), 0, Size, prot, unix.MAP_SHARED)
	if err != nil {
		return nil, curated.Errorf("lowmem: mmap: %v", err)
	}

	return &Physical{window: window}, nil
}

// Fetch implements the Bus interface.
func (p *Physical) Fetch(address int64, buffer []byte) {
	fetch(p.window, address, buffer)
}

// Store implements the Bus interface.
func (p *Physical) Store(address int64, buffer []byte) {
	store(p.window, address, buffer)
}

// Close unmaps the window.
func (p *Physical) Close() error {
	if p.window == nil {
		return nil
	}
	err := unix.Munmap(p.window)
	p.window = nil
	if err != nil {
		return curated.Errorf("lowmem: munmap: %v", err)
	}
	return nil
}
