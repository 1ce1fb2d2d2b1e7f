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

package paths_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bobertlo/dmidecode/paths"
	"github.com/bobertlo/dmidecode/test"
)

func TestResourcePath(t *testing.T) {
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)

	tmp := t.TempDir()
	test.DemandSuccess(t, os.Chdir(tmp))
	defer os.Chdir(wd)

	// a local resource directory takes precedence
	test.DemandSuccess(t, os.Mkdir(".memdev", 0o700))

	pth, err := paths.ResourcePath("images", "bios.bin")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, filepath.Join(".memdev", "images", "bios.bin"))

	info, err := os.Stat(filepath.Join(".memdev", "images"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, info.IsDir())

	pth, err = paths.ResourcePath("", "preferences")
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, strings.HasSuffix(pth, "preferences"))
}
