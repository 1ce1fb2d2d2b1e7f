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

// Package hexview is a paged hex viewer for an open descriptor. Each page is
// 256 bytes and is headed by the address range and the name of the memory
// region the page starts in.
//
// The viewer is driven by single key presses:
//
//	space, j, n    next page
//	k, b, p        previous page
//	q              quit
package hexview
