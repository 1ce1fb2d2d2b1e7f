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

package memdev

// DefaultPath returns the conventional path of the physical memory device for
// the named operating system. The values of runtime.GOOS are expected.
func DefaultPath(goos string) string {
	switch goos {
	case "haiku", "beos":
		return "/dev/misc/mem"
	case "solaris", "illumos":
		return "/dev/xsvc"
	}
	return "/dev/mem"
}
