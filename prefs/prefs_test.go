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

package prefs_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/prefs"
	"github.com/bobertlo/dmidecode/test"
)

func cmpTmpFile(t *testing.T, fn string, expected string) {
	t.Helper()

	data, err := os.ReadFile(fn)
	if err != nil {
		t.Errorf("error reading tmp file: %v", err)
		return
	}

	expected = fmt.Sprintf("%s\n%s", prefs.WarningBoilerPlate, expected)
	test.ExpectEquality(t, string(data), expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var w prefs.Bool
	test.DemandSuccess(t, dsk.Add("test", &v))
	test.DemandSuccess(t, dsk.Add("testB", &w))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("TRUE"))
	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "test :: true\ntestB :: true\n")

	test.ExpectSuccess(t, w.Set("nonsense"))
	test.ExpectEquality(t, w.Get(), prefs.Value(false))

	test.ExpectFailure(t, v.Set(10))
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.DemandSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("  /dev/mem "))
	test.ExpectEquality(t, v.String(), "/dev/mem")
	test.ExpectSuccess(t, dsk.Save())
	cmpTmpFile(t, fn, "foo :: /dev/mem\n")

	test.ExpectSuccess(t, v.Reset())
	test.ExpectEquality(t, v.String(), "")
	test.ExpectSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.String(), "/dev/mem")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.String(), "10")
	test.ExpectSuccess(t, v.Set("0x100"))
	test.ExpectEquality(t, v.Get(), prefs.Value(256))
	test.ExpectFailure(t, v.Set("ten"))
	test.ExpectFailure(t, v.Set(1.5))
	test.ExpectEquality(t, v.Get(), prefs.Value(256))
}

func TestHooks(t *testing.T) {
	var v prefs.String
	var post string

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(string) == "bad" {
			return curated.Errorf("rejected")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(string)
		return nil
	})

	test.ExpectSuccess(t, v.Set("good"))
	test.ExpectEquality(t, post, "good")

	test.ExpectFailure(t, v.Set("bad"))
	test.ExpectEquality(t, v.String(), "good")
	test.ExpectEquality(t, post, "good")
}

func TestDuplicateKey(t *testing.T) {
	dsk, err := prefs.NewDisk(filepath.Join(t.TempDir(), "prefs"))
	test.DemandSuccess(t, err)

	var v, w prefs.Bool
	test.ExpectSuccess(t, dsk.Add("key", &v))
	err = dsk.Add("key", &w)
	test.ExpectSuccess(t, curated.Is(err, prefs.DuplicateKey))
}

// values from other Disk instances survive a save.
func TestSharedFile(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a prefs.String
	test.DemandSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, a.Set("alpha"))
	test.ExpectSuccess(t, dskA.Save())

	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.Int
	test.DemandSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, b.Set(7))
	test.ExpectSuccess(t, dskB.Save())

	cmpTmpFile(t, fn, "a :: alpha\nb :: 7\n")
}

func TestLoadMissing(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var v prefs.Bool
	test.DemandSuccess(t, dsk.Add("v", &v))

	// missing file is not an error and is created when requested
	test.ExpectSuccess(t, dsk.Load(true))
	cmpTmpFile(t, fn, "v :: false\n")
}
