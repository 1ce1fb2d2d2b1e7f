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

//go:build !linux

package lowmem

import (
	"runtime"

	"github.com/bobertlo/dmidecode/curated"
)

// Physical is not available on this platform.
type Physical struct{}

// NewPhysical always fails on this platform.
func NewPhysical(device string, writable bool) (*Physical, error) {
	return nil, curated.Errorf(NotSupported, runtime.GOOS)
}

// Fetch implements the Bus interface.
func (p *Physical) Fetch(address int64, buffer []byte) {
	for i := range buffer {
		buffer[i] = FloatingBus
	}
}

// Store implements the Bus interface.
func (p *Physical) Store(address int64, buffer []byte) {
}

// Close does nothing on this platform.
func (p *Physical) Close() error {
	return nil
}
