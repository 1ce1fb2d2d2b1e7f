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

// Package dmi locates and decodes the SMBIOS/DMI structure table through the
// memory device. The entry point is found by scanning the system BIOS area
// (0xf0000 to 0xfffff) on 16 byte boundaries for one of the three known
// anchor strings. The table itself is then read from the address given in
// the entry point.
//
// All memory access goes through an fsext.Host so the package works equally
// well with a memdev.Device installed over RAM, a ROM image or physical
// memory.
package dmi
