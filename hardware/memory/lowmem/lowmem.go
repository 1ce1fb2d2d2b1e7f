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

// Size is the length of the low-memory window.
const Size = 0x100000

// EndSentinel is the address used as "end of device" when seeking relative to
// the end of the window. Note that this is Size-1 and not Size.
const EndSentinel = 0xFFFFF

// FloatingBus is the value read from addresses outside of the window.
const FloatingBus = 0xff

// Sentinal patterns for curated errors.
const (
	AddressError = "lowmem: address out of window (%#x)"
	NotSupported = "lowmem: physical memory not supported on %s"
)

// Bus defines the primitive operations on the low-memory window.
type Bus interface {
	// Fetch copies len(buffer) bytes starting at address into buffer.
	Fetch(address int64, buffer []byte)

	// Store copies buffer into memory starting at address.
	Store(address int64, buffer []byte)
}

// InWindow returns the part of the range [address, address+n) that lies
// inside the window. The returned skip value is the number of bytes at the
// start of the range that are below the window. A count of zero means that no
// part of the range is inside the window.
func InWindow(address int64, n int) (skip int, count int) {
	if n <= 0 {
		return 0, 0
	}

	start := address
	end := address + int64(n)

	// overflow of the range end
	if end < start {
		end = Size
	}

	if start < 0 {
		start = 0
	}
	if end > Size {
		end = Size
	}
	if start >= end {
		return 0, 0
	}

	return int(start - address), int(end - start)
}

// fetch is the shared implementation of Fetch for window backed by a slice.
func fetch(window []byte, address int64, buffer []byte) {
	skip, count := InWindow(address, len(buffer))
	if count == 0 {
		for i := range buffer {
			buffer[i] = FloatingBus
		}
		return
	}

	for i := 0; i < skip; i++ {
		buffer[i] = FloatingBus
	}
	start := address + int64(skip)
	copy(buffer[skip:skip+count], window[start:start+int64(count)])
	for i := skip + count; i < len(buffer); i++ {
		buffer[i] = FloatingBus
	}
}

// store is the shared implementation of Store for window backed by a slice.
func store(window []byte, address int64, buffer []byte) {
	skip, count := InWindow(address, len(buffer))
	if count == 0 {
		return
	}
	start := address + int64(skip)
	copy(window[start:start+int64(count)], buffer[skip:skip+count])
}
