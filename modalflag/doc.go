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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. Each mode has its own set of flags.
//
// Arguments are given to NewArgs() and parsed with Parse(). Sub-modes are
// declared with AddSubModes() before calling Parse(). The first sub-mode is
// the default and is selected if the next argument does not name one of the
// sub-modes:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DUMP", "PEEK")
//
//	p, err := md.Parse()
//	switch p {
//	case modalflag.ParseHelp:
//		return
//	case modalflag.ParseError:
//		return err
//	}
//
//	switch md.Mode() {
//	case "PEEK":
//		md.NewMode()
//		image := md.AddString("image", "", "ROM image")
//		...
//	}
//
// Mode names are not case sensitive. The path of the selected modes is
// returned by Path().
package modalflag
