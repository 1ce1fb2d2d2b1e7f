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

package paths

import (
	"os"
	"path/filepath"

	"github.com/bobertlo/dmidecode/curated"
)

// the name of the resource directory.
const baseResourcePath = ".memdev"

// ResourcePath returns the path to the named file in the sub-path of the
// resource directory. The sub-path is created if it does not already exist.
// Either argument may be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	return filepath.Join(pth, file), nil
}

// getBasePath returns the local resource directory if it exists, otherwise
// the directory in the user's configuration area.
func getBasePath() (string, error) {
	if info, err := os.Stat(baseResourcePath); err == nil && info.IsDir() {
		return baseResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return "", curated.Errorf("paths: %v", err)
	}

	// no leading dot in the user's configuration area
	return filepath.Join(cfg, baseResourcePath[1:]), nil
}
