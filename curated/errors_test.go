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

package curated_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/test"
)

const testPattern = "test: %v"
const testPatternB = "wrap: %v"

func TestIsAndHas(t *testing.T) {
	e := curated.Errorf(testPattern, 10)
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testPattern))
	test.ExpectFailure(t, curated.Is(e, testPatternB))

	f := curated.Errorf(testPatternB, e)
	test.ExpectFailure(t, curated.Is(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPattern))
	test.ExpectSuccess(t, curated.Has(f, testPatternB))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.Is(nil, testPattern))
	test.ExpectFailure(t, curated.Has(nil, testPattern))
}

func TestNormalisation(t *testing.T) {
	e := curated.Errorf("memdev: %v", curated.Errorf("memdev: %v", "out of range"))
	test.ExpectEquality(t, e.Error(), "memdev: out of range")

	e = curated.Errorf("a: b: %v", "c")
	test.ExpectEquality(t, e.Error(), "a: b: c")
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(testPattern, fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))
	test.ExpectFailure(t, errors.Is(e, fs.ErrPermission))
}
