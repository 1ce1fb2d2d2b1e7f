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

package memdev

import (
	"strings"

	"github.com/bobertlo/dmidecode/curated"
)

// Sentinal patterns for curated errors.
const (
	UnknownCursorMode   = "memdev: unknown cursor mode (%s)"
	UnknownBoundsPolicy = "memdev: unknown bounds policy (%s)"
)

// CursorMode decides how cursors are shared between descriptors.
type CursorMode int

// List of valid CursorMode values.
const (
	// one cursor for all descriptors opened on the device
	SharedCursor CursorMode = iota

	// every descriptor has a cursor of its own
	PerDescriptor
)

func (m CursorMode) String() string {
	switch m {
	case SharedCursor:
		return "shared"
	case PerDescriptor:
		return "descriptor"
	}
	return "unknown"
}

// ParseCursorMode converts the string representation of a CursorMode, as
// returned by String(), to a CursorMode value.
func ParseCursorMode(s string) (CursorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shared", "":
		return SharedCursor, nil
	case "descriptor":
		return PerDescriptor, nil
	}
	return SharedCursor, curated.Errorf(UnknownCursorMode, s)
}

// BoundsPolicy decides what happens to transfers that reach outside of the
// low-memory window.
type BoundsPolicy int

// List of valid BoundsPolicy values.
const (
	// transfers always succeed and always report the requested length. bytes
	// outside the window are handled by the lowmem.Bus
	Unchecked BoundsPolicy = iota

	// transfers are shortened to the part inside the window. a cursor outside
	// the window transfers nothing
	Clamp

	// transfers that reach outside the window fail with OutOfRange and the
	// cursor is not moved
	Fail
)

func (p BoundsPolicy) String() string {
	switch p {
	case Unchecked:
		return "unchecked"
	case Clamp:
		return "clamp"
	case Fail:
		return "fail"
	}
	return "unknown"
}

// ParseBoundsPolicy converts the string representation of a BoundsPolicy, as
// returned by String(), to a BoundsPolicy value.
func ParseBoundsPolicy(s string) (BoundsPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "unchecked", "":
		return Unchecked, nil
	case "clamp":
		return Clamp, nil
	case "fail":
		return Fail, nil
	}
	return Unchecked, curated.Errorf(UnknownBoundsPolicy, s)
}
