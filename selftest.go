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

package main

import (
	"fmt"
	"os"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/fsext"
	"github.com/bobertlo/dmidecode/hardware/memory/lowmem"
	"github.com/bobertlo/dmidecode/logger"
	"github.com/bobertlo/dmidecode/memdev"
	"github.com/bobertlo/dmidecode/modalflag"
)

// selfTestCase runs against a fresh device installed over emulated RAM.
type selfTestCase struct {
	name string
	run  func(host *fsext.Host, dev *memdev.Device, ram *lowmem.RAM) error
}

var selfTestCases = []selfTestCase{
	{name: "bios date", run: testBIOSDate},
	{name: "text screen", run: testTextScreen},
	{name: "other paths", run: testOtherPaths},
	{name: "invalid whence", run: testInvalidWhence},
}

func selfTest(md *modalflag.Modes) error {
	md.NewMode()
	trace := md.AddBool("trace", false, "echo device trace to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *trace {
		logger.SetEcho(os.Stderr)
	}

	var failed int
	for _, tc := range selfTestCases {
		ram := lowmem.NewRAM()
		host := fsext.NewHost()
		dev := memdev.NewDevice(ram, memdev.Config{Path: "/dev/mem", Trace: *trace})
		if err := dev.Install(host); err != nil {
			return err
		}

		if err := tc.run(host, dev, ram); err != nil {
			fmt.Fprintf(md.Output, "FAIL\t%s: %v\n", tc.name, err)
			failed++
			continue
		}
		fmt.Fprintf(md.Output, "ok\t%s\n", tc.name)
	}

	if failed > 0 {
		return curated.Errorf("%d of %d tests failed", failed, len(selfTestCases))
	}
	return nil
}

func testBIOSDate(host *fsext.Host, dev *memdev.Device, ram *lowmem.RAM) error {
	if err := ram.Load(0xffff5, []byte("01/01/99")); err != nil {
		return err
	}

	fd, err := host.Open(dev.Path(), os.O_RDONLY)
	if err != nil {
		return err
	}

	pos, err := host.Seek(fd, 0xffff5, fsext.SeekSet)
	if err != nil {
		return err
	}
	if pos != 0xffff5 {
		return curated.Errorf("seek returned %#x", pos)
	}

	buf := make([]byte, 8)
	n, err := host.Read(fd, buf)
	if err != nil {
		return err
	}
	if n != 8 || string(buf) != "01/01/99" {
		return curated.Errorf("read returned %q (%d)", buf, n)
	}
	if dev.Cursor() != 0xffffd {
		return curated.Errorf("cursor is %#x after read", dev.Cursor())
	}

	if err := host.Close(fd); err != nil {
		return err
	}
	if err := host.Close(fd); !curated.Is(err, fsext.BadDescriptor) {
		return curated.Errorf("second close returned %v", err)
	}

	return nil
}

func testTextScreen(host *fsext.Host, dev *memdev.Device, ram *lowmem.RAM) error {
	fd, err := host.Open(dev.Path(), os.O_RDWR)
	if err != nil {
		return err
	}
	defer host.Close(fd)

	if _, err := host.Seek(fd, 0xb8000, fsext.SeekSet); err != nil {
		return err
	}
	if n, err := host.Write(fd, []byte("hello")); err != nil || n != 5 {
		return curated.Errorf("write returned %d (%v)", n, err)
	}

	if v, _ := ram.Peek(0xb8000); v != 'h' {
		return curated.Errorf("memory at 0xb8000 is %#02x", v)
	}

	pos, err := host.Seek(fd, -5, fsext.SeekCur)
	if err != nil || pos != 0xb8000 {
		return curated.Errorf("relative seek returned %#x (%v)", pos, err)
	}

	buf := make([]byte, 5)
	if n, err := host.Read(fd, buf); err != nil || n != 5 || string(buf) != "hello" {
		return curated.Errorf("read returned %q (%v)", buf, err)
	}

	pos, err = host.Seek(fd, 0, fsext.SeekEnd)
	if err != nil || pos != lowmem.EndSentinel {
		return curated.Errorf("seek to end returned %#x (%v)", pos, err)
	}

	return nil
}

func testOtherPaths(host *fsext.Host, dev *memdev.Device, ram *lowmem.RAM) error {
	fd, err := host.Open(dev.Path(), os.O_RDONLY)
	if err != nil {
		return err
	}
	defer host.Close(fd)

	if _, err := host.Seek(fd, 0x400, fsext.SeekSet); err != nil {
		return err
	}

	// the device must not claim paths that are not its own. the native open
	// fails because the path does not exist
	if _, err := host.Open(dev.Path()+"-selftest-no-such-file", os.O_RDONLY); !curated.Is(err, fsext.NativeError) {
		return curated.Errorf("open of other path returned %v", err)
	}
	if dev.Cursor() != 0x400 {
		return curated.Errorf("cursor changed to %#x", dev.Cursor())
	}

	return nil
}

func testInvalidWhence(host *fsext.Host, dev *memdev.Device, ram *lowmem.RAM) error {
	fd, err := host.Open(dev.Path(), os.O_RDONLY)
	if err != nil {
		return err
	}
	defer host.Close(fd)

	if _, err := host.Seek(fd, 0x1234, fsext.SeekSet); err != nil {
		return err
	}

	pos, err := host.Seek(fd, 0, fsext.Whence(7))
	if pos != -1 || !curated.Is(err, fsext.InvalidArgument) {
		return curated.Errorf("seek returned %d (%v)", pos, err)
	}
	if dev.Cursor() != 0x1234 {
		return curated.Errorf("cursor changed to %#x", dev.Cursor())
	}

	return nil
}
