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

package dmi

import (
	"encoding/binary"
	"fmt"

	"github.com/bobertlo/dmidecode/curated"
)

// Sentinal pattern for curated errors.
const BadStructure = "dmi: bad structure at offset %#x: %s"

// EndOfTable is the type of the structure that ends the table.
const EndOfTable = 127

// Structure is a single entry in the structure table.
type Structure struct {
	Type   uint8
	Length uint8
	Handle uint16

	// the formatted area, including the four byte header
	Formatted []byte

	Strings []string
}

func (s Structure) String() string {
	return fmt.Sprintf("Handle %#04x, DMI type %d, %d bytes\n%s", s.Handle, s.Type, s.Length, TypeName(s.Type))
}

// Byte returns the byte at the offset in the formatted area. Offsets outside
// the formatted area return zero.
func (s Structure) Byte(offset int) uint8 {
	if offset < 0 || offset >= len(s.Formatted) {
		return 0
	}
	return s.Formatted[offset]
}

// Word returns the little-endian word at the offset in the formatted area.
func (s Structure) Word(offset int) uint16 {
	if offset < 0 || offset+2 > len(s.Formatted) {
		return 0
	}
	return binary.LittleEndian.Uint16(s.Formatted[offset:])
}

// StringAt returns the string referenced by the byte at the offset in the
// formatted area. String numbers start at one. Zero means there is no string.
func (s Structure) StringAt(offset int) string {
	n := int(s.Byte(offset))
	if n == 0 {
		return "Not Specified"
	}
	if n > len(s.Strings) {
		return "<BAD INDEX>"
	}
	return s.Strings[n-1]
}

// Decode walks the structure table and returns the structures it contains.
// Decoding stops after the end of table structure, at the end of the data or
// after limit structures. A limit value of zero or less means no limit.
func Decode(table []byte, limit int) ([]Structure, error) {
	var structures []Structure

	i := 0
	for i+4 <= len(table) {
		if limit > 0 && len(structures) >= limit {
			break
		}

		s := Structure{
			Type:   table[i],
			Length: table[i+1],
			Handle: binary.LittleEndian.Uint16(table[i+2:]),
		}

		if s.Length < 4 {
			return structures, curated.Errorf(BadStructure, i, "length too short")
		}

		end := i + int(s.Length)
		if end > len(table) {
			return structures, curated.Errorf(BadStructure, i, "formatted area truncated")
		}
		s.Formatted = table[i:end]

		// the string set ends with a double null
		j := end
		for {
			if j >= len(table) {
				return structures, curated.Errorf(BadStructure, i, "string set truncated")
			}
			k := j
			for k < len(table) && table[k] != 0x00 {
				k++
			}
			if k >= len(table) {
				return structures, curated.Errorf(BadStructure, i, "string set truncated")
			}
			if k == j {
				// an empty string set is still two nulls long
				if j == end {
					j++
				}
				j++
				break
			}
			s.Strings = append(s.Strings, string(table[j:k]))
			j = k + 1
		}

		structures = append(structures, s)
		i = j

		if s.Type == EndOfTable {
			break
		}
	}

	return structures, nil
}

var typeNames = map[uint8]string{
	0:   "BIOS Information",
	1:   "System Information",
	2:   "Base Board Information",
	3:   "Chassis Information",
	4:   "Processor Information",
	7:   "Cache Information",
	8:   "Port Connector Information",
	9:   "System Slot Information",
	11:  "OEM Strings",
	12:  "System Configuration Options",
	13:  "BIOS Language Information",
	16:  "Physical Memory Array",
	17:  "Memory Device",
	19:  "Memory Array Mapped Address",
	20:  "Memory Device Mapped Address",
	32:  "System Boot Information",
	127: "End Of Table",
}

// TypeName returns the name of the structure type.
func TypeName(t uint8) string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	if t >= 128 {
		return "OEM-specific Type"
	}
	return "Unknown Type"
}
