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

// Package lowmem provides access to the low-memory window: the first megabyte
// of the address space as seen by a real-mode x86 machine.
//
// The Bus interface defines the two primitives used by the memory device:
// fetch bytes from an absolute address and store bytes to an absolute
// address. Both always succeed. Bytes that fall outside the window read as
// FloatingBus and writes to them are discarded.
//
// Two implementations are provided. RAM is an emulated window held in process
// memory, useful for tests and for working with captured memory images.
// Physical maps the window from a real memory device file (Linux only).
package lowmem
