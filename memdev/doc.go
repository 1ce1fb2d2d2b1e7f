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

// Package memdev emulates a physical memory device, in the manner of the
// /dev/mem device found on Unix systems, for hosts that have no such device.
//
// A Device is installed as an open handler of an fsext.Host. When a program
// opens the device path through the host, the Device claims the open and
// allocates a descriptor. Seek, read and write on that descriptor then move a
// cursor over the low-memory window and transfer bytes with the fetch and store
// primitives of a lowmem.Bus. Closing the descriptor hands it back to the
// host for native closing.
//
// By default there is one cursor per Device, shared by every descriptor
// opened on it. Opening the device resets the cursor to zero and closing a
// descriptor leaves it alone. The PerDescriptor cursor mode gives every
// descriptor its own cursor instead, stored as the descriptor's host data.
//
// No bounds checking is performed by default. The cursor can be positioned
// anywhere, including at negative offsets and beyond the one megabyte
// window, and reads and writes always report the full length as transferred.
// The Clamp and Fail bounds policies harden this behaviour when required.
//
// The end of the device, for the purposes of seeking relative to the end, is
// lowmem.EndSentinel (0xfffff) and not the window size.
package memdev
