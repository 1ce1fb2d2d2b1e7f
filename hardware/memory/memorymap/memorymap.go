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

package memorymap

// Area represents the different areas of low memory.
type Area int

func (a Area) String() string {
	switch a {
	case IVT:
		return "Interrupt Vector Table"
	case BDA:
		return "BIOS Data Area"
	case Conventional:
		return "Conventional"
	case EBDA:
		return "Extended BIOS Data Area"
	case VGA:
		return "VGA Graphics"
	case MonoText:
		return "Monochrome Text"
	case ColorText:
		return "Color Text"
	case OptionROM:
		return "Option ROMs"
	case BIOS:
		return "System BIOS"
	}

	return "undefined"
}

// The different memory areas in the low-memory window.
const (
	Undefined Area = iota
	IVT
	BDA
	Conventional
	EBDA
	VGA
	MonoText
	ColorText
	OptionROM
	BIOS
)

// The origin and memory top for each area of memory.
const (
	OriginIVT          = 0x00000
	MemtopIVT          = 0x003ff
	OriginBDA          = 0x00400
	MemtopBDA          = 0x004ff
	OriginConventional = 0x00500
	MemtopConventional = 0x9fbff
	OriginEBDA         = 0x9fc00
	MemtopEBDA         = 0x9ffff
	OriginVGA          = 0xa0000
	MemtopVGA          = 0xaffff
	OriginMonoText     = 0xb0000
	MemtopMonoText     = 0xb7fff
	OriginColorText    = 0xb8000
	MemtopColorText    = 0xbffff
	OriginOptionROM    = 0xc0000
	MemtopOptionROM    = 0xeffff
	OriginBIOS         = 0xf0000
	MemtopBIOS         = 0xfffff
)

// Memtop is the top most address of the low-memory window.
const Memtop = MemtopBIOS

// Well known addresses in the system BIOS area.
const (
	// the processor starts executing here after reset
	ResetVector = 0xffff0

	// eight byte date string in mm/dd/yy format
	BIOSDate    = 0xffff5
	BIOSDateLen = 8
)

type span struct {
	area   Area
	origin int64
	memtop int64
}

var spans = []span{
	{IVT, OriginIVT, MemtopIVT},
	{BDA, OriginBDA, MemtopBDA},
	{Conventional, OriginConventional, MemtopConventional},
	{EBDA, OriginEBDA, MemtopEBDA},
	{VGA, OriginVGA, MemtopVGA},
	{MonoText, OriginMonoText, MemtopMonoText},
	{ColorText, OriginColorText, MemtopColorText},
	{OptionROM, OriginOptionROM, MemtopOptionROM},
	{BIOS, OriginBIOS, MemtopBIOS},
}

// MapAddress returns the area the address falls in. Addresses outside of the
// window are Undefined.
func MapAddress(address int64) Area {
	for _, s := range spans {
		if address >= s.origin && address <= s.memtop {
			return s.area
		}
	}
	return Undefined
}

// Range returns the origin and memtop of the area. Both are zero for the
// Undefined area.
func Range(area Area) (origin int64, memtop int64) {
	for _, s := range spans {
		if s.area == area {
			return s.origin, s.memtop
		}
	}
	return 0, 0
}
