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

//go:build !(linux || darwin || freebsd)

package easyterm

import (
	"os"
	"runtime"

	"github.com/bobertlo/dmidecode/curated"
)

// Terminal is not supported on this platform.
type Terminal struct {
	input  *os.File
	output *os.File
}

// Initialise always fails on this platform.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return curated.Errorf("easyterm: not supported on %s", runtime.GOOS)
}

func (pt *Terminal) Print(s string, a ...interface{}) {}

func (pt *Terminal) Write(p []byte) (int, error) {
	return pt.output.Write(p)
}

func (pt *Terminal) Read(p []byte) (int, error) {
	return pt.input.Read(p)
}

func (pt *Terminal) CanonicalMode() error { return nil }

func (pt *Terminal) CBreakMode() error { return nil }

func (pt *Terminal) Flush() error { return nil }
