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

package script_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/fsext"
	"github.com/bobertlo/dmidecode/hardware/memory/lowmem"
	"github.com/bobertlo/dmidecode/memdev"
	"github.com/bobertlo/dmidecode/script"
	"github.com/bobertlo/dmidecode/test"
)

func newHost(t *testing.T) (*fsext.Host, *lowmem.RAM) {
	t.Helper()

	ram := lowmem.NewRAM()
	host := fsext.NewHost()
	dev := memdev.NewDevice(ram, memdev.Config{Path: "/dev/mem"})
	test.DemandSuccess(t, dev.Install(host))

	return host, ram
}

const biosDate = `
local fd = open("/dev/mem")
print(seek(fd, 0xffff5, SEEK_SET))
local s, n = read(fd, 8)
print(s, n)
print(seek(fd, 0, SEEK_CUR))
print(close(fd))
print(close(fd), errno() ~= nil)
`

func TestBIOSDate(t *testing.T) {
	host, ram := newHost(t)
	test.DemandSuccess(t, ram.Load(0xffff5, []byte("01/01/99")))

	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, script.Run(host, biosDate, tw))
	test.ExpectEquality(t, tw.String(), "1048565\n01/01/99\t8\n1048573\n0\n-1\ttrue\n")
}

const textScreen = `
local fd = open("/dev/mem", O_RDWR)
seek(fd, 0xb8000, SEEK_SET)
print(write(fd, "hello"))
print(seek(fd, -5, SEEK_CUR))
print(read(fd, 5))
print(seek(fd, 0, SEEK_END))
print(seek(fd, 0, 7))
close(fd)
`

func TestTextScreen(t *testing.T) {
	host, ram := newHost(t)

	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, script.Run(host, textScreen, tw))
	test.ExpectEquality(t, tw.String(), "5\n753664\nhello\t5\n1048575\n-1\n")

	v, err := ram.Peek(0xb8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, uint8('h'))
}

func TestRunFile(t *testing.T) {
	host, _ := newHost(t)

	fn := filepath.Join(t.TempDir(), "test.lua")
	test.DemandSuccess(t, os.WriteFile(fn, []byte(`print(SEEK_SET, SEEK_CUR, SEEK_END)`), 0o644))

	tw := &test.CompareWriter{}
	test.ExpectSuccess(t, script.RunFile(host, fn, tw))
	test.ExpectEquality(t, tw.String(), "0\t1\t2\n")
}

func TestScriptError(t *testing.T) {
	host, _ := newHost(t)

	tw := &test.CompareWriter{}
	err := script.Run(host, `this is not lua`, tw)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))

	err = script.Run(host, `read(3, -1)`, tw)
	test.ExpectSuccess(t, curated.Is(err, script.ScriptError))
}
