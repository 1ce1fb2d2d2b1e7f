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
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/fsext"
	"github.com/bobertlo/dmidecode/hardware/memory/lowmem"
	"github.com/bobertlo/dmidecode/hardware/memory/memorymap"
	"github.com/bobertlo/dmidecode/logger"
)

// Sentinal patterns for curated errors.
const (
	NoEntryPoint     = "dmi: no entry point found"
	TableOutOfWindow = "dmi: table out of window (%#x, %d bytes)"
	ShortRead        = "dmi: short read (%d of %d bytes)"
)

// Kind of entry point.
type Kind int

// List of valid Kind values.
const (
	SMBIOS3 Kind = iota
	SMBIOS
	Legacy
)

func (k Kind) String() string {
	switch k {
	case SMBIOS3:
		return "SMBIOS 3"
	case SMBIOS:
		return "SMBIOS"
	case Legacy:
		return "Legacy DMI"
	}
	return "unknown"
}

// anchor strings.
var (
	anchorSM3 = []byte("_SM3_")
	anchorSM  = []byte("_SM_")
	anchorDMI = []byte("_DMI_")
)

// EntryPoint describes the location and version of the structure table.
type EntryPoint struct {
	// address of the anchor string
	Address int64

	Kind     Kind
	Major    uint8
	Minor    uint8
	Revision uint8

	TableAddress int64

	// for SMBIOS3 entry points the length is the maximum size of the table
	TableLength uint32

	// number of structures. zero for SMBIOS3 entry points
	Count int
}

func (ep EntryPoint) String() string {
	var s string
	switch ep.Kind {
	case Legacy:
		s = fmt.Sprintf("Legacy DMI %d.%d present.", ep.Major, ep.Minor)
	default:
		s = fmt.Sprintf("SMBIOS %d.%d present.", ep.Major, ep.Minor)
	}

	if ep.Kind == SMBIOS3 {
		s = fmt.Sprintf("%s\nTable at %#08x, maximum size %d bytes.", s, ep.TableAddress, ep.TableLength)
	} else {
		s = fmt.Sprintf("%s\n%d structures occupying %d bytes.\nTable at %#08x.", s, ep.Count, ep.TableLength, ep.TableAddress)
	}

	return s
}

// checksum returns true if the bytes sum to zero.
func checksum(b []byte) bool {
	var sum uint8
	for _, v := range b {
		sum += v
	}
	return sum == 0
}

// ScanEntryPoint looks for an entry point in the data, which begins at the
// origin address. The first valid entry point on a 16 byte boundary is
// returned. Candidates with a bad checksum are skipped.
func ScanEntryPoint(data []byte, origin int64) (EntryPoint, error) {
	for i := 0; i+16 <= len(data); i += 16 {
		if ep, ok := decodeSM3(data[i:]); ok {
			ep.Address = origin + int64(i)
			return ep, nil
		}
		if ep, ok := decodeSM(data[i:]); ok {
			ep.Address = origin + int64(i)
			return ep, nil
		}
		if ep, ok := decodeDMI(data[i:]); ok {
			ep.Address = origin + int64(i)
			return ep, nil
		}
	}
	return EntryPoint{}, curated.Errorf(NoEntryPoint)
}

func decodeSM3(b []byte) (EntryPoint, bool) {
	if !bytes.HasPrefix(b, anchorSM3) || len(b) < 0x18 {
		return EntryPoint{}, false
	}

	l := int(b[0x06])
	if l < 0x18 || l > len(b) || !checksum(b[:l]) {
		return EntryPoint{}, false
	}

	return EntryPoint{
		Kind:         SMBIOS3,
		Major:        b[0x07],
		Minor:        b[0x08],
		Revision:     b[0x0a],
		TableLength:  binary.LittleEndian.Uint32(b[0x0c:]),
		TableAddress: int64(binary.LittleEndian.Uint64(b[0x10:])),
	}, true
}

func decodeSM(b []byte) (EntryPoint, bool) {
	if !bytes.HasPrefix(b, anchorSM) || len(b) < 0x1f {
		return EntryPoint{}, false
	}

	l := int(b[0x05])
	if l < 0x1f || l > len(b) || !checksum(b[:l]) {
		return EntryPoint{}, false
	}

	// the intermediate entry point is a legacy entry point in all but name
	ep, ok := decodeDMI(b[0x10:])
	if !ok {
		return EntryPoint{}, false
	}

	ep.Kind = SMBIOS
	ep.Major = b[0x06]
	ep.Minor = b[0x07]
	ep.Revision = b[0x0a]
	return ep, true
}

func decodeDMI(b []byte) (EntryPoint, bool) {
	if !bytes.HasPrefix(b, anchorDMI) || len(b) < 0x0f || !checksum(b[:0x0f]) {
		return EntryPoint{}, false
	}

	// the revision is in binary coded decimal
	bcd := b[0x0e]

	return EntryPoint{
		Kind:         Legacy,
		Major:        bcd >> 4,
		Minor:        bcd & 0x0f,
		TableLength:  uint32(binary.LittleEndian.Uint16(b[0x06:])),
		TableAddress: int64(binary.LittleEndian.Uint32(b[0x08:])),
		Count:        int(binary.LittleEndian.Uint16(b[0x0c:])),
	}, true
}

// readAt opens the path through the host and reads n bytes from the address.
func readAt(host *fsext.Host, path string, address int64, n int) ([]byte, error) {
	fd, err := host.Open(path, os.O_RDONLY)
	if err != nil {
		return nil, curated.Errorf("dmi: %v", err)
	}
	defer host.Close(fd)

	if _, err := host.Seek(fd, address, fsext.SeekSet); err != nil {
		return nil, curated.Errorf("dmi: %v", err)
	}

	buf := make([]byte, n)
	m, err := host.Read(fd, buf)
	if err != nil {
		return nil, curated.Errorf("dmi: %v", err)
	}
	if m != n {
		return nil, curated.Errorf(ShortRead, m, n)
	}

	return buf, nil
}

// FindEntryPoint reads the system BIOS area through the named path and scans
// it for an entry point.
func FindEntryPoint(host *fsext.Host, path string) (EntryPoint, error) {
	origin, memtop := memorymap.Range(memorymap.BIOS)

	data, err := readAt(host, path, origin, int(memtop-origin+1))
	if err != nil {
		return EntryPoint{}, err
	}

	ep, err := ScanEntryPoint(data, origin)
	if err != nil {
		return EntryPoint{}, err
	}

	logger.Logf(logger.Allow, "dmi", "%s entry point at %#05x", ep.Kind, ep.Address)

	return ep, nil
}

// ReadTable reads the structure table described by the entry point through
// the named path. The table must lie entirely inside the low-memory window.
func ReadTable(host *fsext.Host, path string, ep EntryPoint) ([]byte, error) {
	if ep.TableAddress < 0 || ep.TableAddress+int64(ep.TableLength) > lowmem.Size {
		return nil, curated.Errorf(TableOutOfWindow, ep.TableAddress, ep.TableLength)
	}
	return readAt(host, path, ep.TableAddress, int(ep.TableLength))
}
