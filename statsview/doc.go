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

// Package statsview serves runtime statistics over HTTP. The server is only
// available when the program is built with the statsview build tag. Without
// the tag Launch() does nothing and Available() returns false.
//
// When launched the graphs are viewable at:
//
//	localhost:12600/debug/statsview
//
// The standard pprof pages are at:
//
//	localhost:12600/debug/pprof/
package statsview

// Address of the statistics server.
const Address = "localhost:12600"

// the path of the statistics page.
const url = "/debug/statsview"
