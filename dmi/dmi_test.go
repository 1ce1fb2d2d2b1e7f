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

package dmi_test

import (
	"encoding/binary"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/dmi"
	"github.com/bobertlo/dmidecode/fsext"
	"github.com/bobertlo/dmidecode/hardware/memory/lowmem"
	"github.com/bobertlo/dmidecode/memdev"
	"github.com/bobertlo/dmidecode/test"
)

const (
	devPath      = "/dev/mem"
	entryAddress = 0xf0100
	tableAddress = 0xf1000
)

// three structures: BIOS information with two strings, system information
// with no strings and the end of table marker.
var table = []byte{
	0x00, 0x08, 0x00, 0x00, 0x01, 0x02, 0x00, 0xe0,
	'A', 'c', 'm', 'e', 0x00, '1', '.', '0', 0x00, 0x00,
	0x01, 0x04, 0x01, 0x00, 0x00, 0x00,
	0x7f, 0x04, 0x02, 0x00, 0x00, 0x00,
}

func sum(b []byte) uint8 {
	var s uint8
	for _, v := range b {
		s += v
	}
	return s
}

func smEntryPoint(address uint32, length uint16, count uint16) []byte {
	b := make([]byte, 0x1f)
	copy(b, "_SM_")
	b[0x05] = 0x1f
	b[0x06] = 2
	b[0x07] = 4
	copy(b[0x10:], "_DMI_")
	binary.LittleEndian.PutUint16(b[0x16:], length)
	binary.LittleEndian.PutUint32(b[0x18:], address)
	binary.LittleEndian.PutUint16(b[0x1c:], count)
	b[0x1e] = 0x24
	b[0x15] = -sum(b[0x10:0x1f])
	b[0x04] = -sum(b)
	return b
}

func newHost(t *testing.T) (*fsext.Host, *lowmem.RAM) {
	t.Helper()

	ram := lowmem.NewRAM()
	host := fsext.NewHost()
	dev := memdev.NewDevice(ram, memdev.Config{Path: devPath})
	test.DemandSuccess(t, dev.Install(host))

	return host, ram
}

func TestFindEntryPoint(t *testing.T) {
	host, ram := newHost(t)

	test.DemandSuccess(t, ram.Load(entryAddress, smEntryPoint(tableAddress, uint16(len(table)), 3)))
	test.DemandSuccess(t, ram.Load(tableAddress, table))

	ep, err := dmi.FindEntryPoint(host, devPath)
	test.DemandSuccess(t, err)

	expected := dmi.EntryPoint{
		Address:      entryAddress,
		Kind:         dmi.SMBIOS,
		Major:        2,
		Minor:        4,
		TableAddress: tableAddress,
		TableLength:  uint32(len(table)),
		Count:        3,
	}
	if diff := cmp.Diff(expected, ep); diff != "" {
		t.Errorf("entry point mismatch (-want +got):\n%s", diff)
	}

	data, err := dmi.ReadTable(host, devPath, ep)
	test.DemandSuccess(t, err)
	if diff := cmp.Diff(table, data); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}

	// the descriptors used for reading are closed again
	test.ExpectEquality(t, len(host.Descriptors()), 0)
}

func TestBadChecksum(t *testing.T) {
	host, ram := newHost(t)

	ep := smEntryPoint(tableAddress, uint16(len(table)), 3)

	// changing the table address breaks both checksums
	ep[0x18]++
	test.DemandSuccess(t, ram.Load(entryAddress, ep))

	_, err := dmi.FindEntryPoint(host, devPath)
	test.ExpectSuccess(t, curated.Is(err, dmi.NoEntryPoint))
}

func TestUnalignedAnchor(t *testing.T) {
	host, ram := newHost(t)

	// anchors are only recognised on 16 byte boundaries
	test.DemandSuccess(t, ram.Load(entryAddress+4, smEntryPoint(tableAddress, uint16(len(table)), 3)))

	_, err := dmi.FindEntryPoint(host, devPath)
	test.ExpectSuccess(t, curated.Is(err, dmi.NoEntryPoint))
}

func TestScanSMBIOS3(t *testing.T) {
	b := make([]byte, 0x20)
	copy(b, "_SM3_")
	b[0x06] = 0x18
	b[0x07] = 3
	b[0x08] = 2
	b[0x0a] = 1
	binary.LittleEndian.PutUint32(b[0x0c:], 0x400)
	binary.LittleEndian.PutUint64(b[0x10:], 0xe8000)
	b[0x05] = -sum(b[:0x18])

	ep, err := dmi.ScanEntryPoint(b, 0xf0000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ep, dmi.EntryPoint{
		Address:      0xf0000,
		Kind:         dmi.SMBIOS3,
		Major:        3,
		Minor:        2,
		Revision:     1,
		TableAddress: 0xe8000,
		TableLength:  0x400,
	})
}

func TestScanLegacy(t *testing.T) {
	b := make([]byte, 0x30)
	l := b[0x20:]
	copy(l, "_DMI_")
	binary.LittleEndian.PutUint16(l[0x06:], 0x80)
	binary.LittleEndian.PutUint32(l[0x08:], 0xf8000)
	binary.LittleEndian.PutUint16(l[0x0c:], 5)
	l[0x0e] = 0x21
	l[0x05] = -sum(l[:0x0f])

	ep, err := dmi.ScanEntryPoint(b, 0xf0000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ep.Address, int64(0xf0020))
	test.ExpectEquality(t, ep.Kind, dmi.Legacy)
	test.ExpectEquality(t, ep.Major, uint8(2))
	test.ExpectEquality(t, ep.Minor, uint8(1))
	test.ExpectEquality(t, ep.Count, 5)
}

func TestReadTableOutOfWindow(t *testing.T) {
	host, _ := newHost(t)

	ep := dmi.EntryPoint{TableAddress: 0xfff00, TableLength: 0x200}
	_, err := dmi.ReadTable(host, devPath, ep)
	test.ExpectSuccess(t, curated.Is(err, dmi.TableOutOfWindow))
}

func TestDecode(t *testing.T) {
	structures, err := dmi.Decode(table, 0)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(structures), 3)

	bios := structures[0]
	test.ExpectEquality(t, bios.Type, uint8(0))
	test.ExpectEquality(t, bios.Length, uint8(8))
	test.ExpectEquality(t, bios.StringAt(4), "Acme")
	test.ExpectEquality(t, bios.StringAt(5), "1.0")
	test.ExpectEquality(t, bios.StringAt(6), "Not Specified")
	test.ExpectEquality(t, bios.Word(6), uint16(0xe000))

	system := structures[1]
	test.ExpectEquality(t, system.Handle, uint16(1))
	test.ExpectEquality(t, len(system.Strings), 0)

	test.ExpectEquality(t, structures[2].Type, uint8(dmi.EndOfTable))

	// a limit stops decoding early
	structures, err = dmi.Decode(table, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(structures), 2)

	// decoding stops at the end of table marker
	structures, err = dmi.Decode(append(append([]byte{}, table...), 0x01, 0x04, 0x09, 0x00, 0x00, 0x00), 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, len(structures), 3)
}

func TestDecodeTruncated(t *testing.T) {
	structures, err := dmi.Decode(table[:12], 0)
	test.ExpectSuccess(t, curated.Is(err, dmi.BadStructure))
	test.ExpectEquality(t, len(structures), 0)

	_, err = dmi.Decode([]byte{0x01, 0x02, 0x00, 0x00}, 0)
	test.ExpectSuccess(t, curated.Is(err, dmi.BadStructure))
}

func TestTypeName(t *testing.T) {
	test.ExpectEquality(t, dmi.TypeName(0), "BIOS Information")
	test.ExpectEquality(t, dmi.TypeName(17), "Memory Device")
	test.ExpectEquality(t, dmi.TypeName(127), "End Of Table")
	test.ExpectEquality(t, dmi.TypeName(200), "OEM-specific Type")
	test.ExpectEquality(t, dmi.TypeName(100), "Unknown Type")
}
