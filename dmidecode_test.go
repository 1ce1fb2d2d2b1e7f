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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bobertlo/dmidecode/hardware/memory/memorymap"
	"github.com/bobertlo/dmidecode/test"
)

// chdir into a temporary directory with a local resource directory so that
// the preferences file is not written to the user's configuration area.
func chdir(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	test.DemandSuccess(t, err)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	test.DemandSuccess(t, os.Mkdir(".memdev", 0o700))

	return tmp
}

func TestParseAddress(t *testing.T) {
	for _, tc := range []struct {
		s string
		v int64
	}{
		{"0xb8000", 0xb8000},
		{"1024", 1024},
		{"f000:fff5", 0xffff5},
		{"B800:0000", 0xb8000},
	} {
		v, err := parseAddress(tc.s)
		test.ExpectSuccess(t, err, tc.s)
		test.ExpectEquality(t, v, tc.v, tc.s)
	}

	_, err := parseAddress("nonsense")
	test.ExpectFailure(t, err)
	_, err = parseAddress("10000:0")
	test.ExpectFailure(t, err)
}

func TestRegions(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"regions"}, tw), 0)
	test.ExpectEquality(t, tw.String(), memorymap.Summary())
}

func TestSelfTest(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"SELFTEST"}, tw), 0)
	test.ExpectEquality(t, strings.Count(tw.String(), "ok\t"), len(selfTestCases))
	test.ExpectEquality(t, strings.Count(tw.String(), "FAIL"), 0)
}

func TestBadFlag(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"REGIONS", "-nonsense"}, tw), exitModeError)
}

func TestPeekImage(t *testing.T) {
	tmp := chdir(t)

	// a 16 byte image is loaded at the very top of the window
	img := filepath.Join(tmp, "bios.bin")
	test.DemandSuccess(t, os.WriteFile(img, []byte("\xea\x5b\xe0\x00\xf001/01/99\x00\xfc\x00"), 0o644))

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"PEEK", "-image", img, "0xffff5", "2"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "ffff5: 30\nffff6: 31\n")

	// out of window reads are refused by the fail policy
	tw.Clear()
	test.ExpectEquality(t, launch([]string{"PEEK", "-image", img, "-bounds", "fail", "0xfffff", "2"}, tw), exitModeError)

	// but the floating bus is seen with the default policy
	tw.Clear()
	test.ExpectEquality(t, launch([]string{"PEEK", "-image", img, "0xfffff", "2"}, tw), 0)
	test.ExpectEquality(t, tw.String(), "fffff: 00\n100000: ff\n")
}

func TestPeekPrefs(t *testing.T) {
	chdir(t)

	tw := &test.CompareWriter{}
	code := launch([]string{"PEEK", "-prefs", "memdev.bounds::clamp", "0xfffff", "2"}, tw)
	test.ExpectEquality(t, code, 0)
	test.ExpectEquality(t, tw.String(), "fffff: 00\n")

	tw.Clear()
	code = launch([]string{"PEEK", "-prefs", "memdev.bounds::sometimes", "0"}, tw)
	test.ExpectEquality(t, code, exitModeError)
}

func TestScanEmpty(t *testing.T) {
	chdir(t)

	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"SCAN"}, tw), exitModeError)
	test.ExpectSuccess(t, strings.Contains(tw.String(), "no entry point found"))
}

func TestVersion(t *testing.T) {
	tw := &test.CompareWriter{}
	test.ExpectEquality(t, launch([]string{"VERSION"}, tw), 0)
	test.ExpectSuccess(t, strings.HasPrefix(tw.String(), "dmidecode "))
}
