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

// Package prefs facilitates the storage of preferential values. Values are
// represented by the Bool, String and Int types. Each type has hooks that are
// run before and after a new value is set. A pre-hook returning an error
// rejects the new value.
//
// Values are collected in a Disk and saved to and loaded from a plain text
// file, one value per line:
//
//	memdev.path :: /dev/mem
//	memdev.trace :: false
//
// Keys that are in the file but not added to the Disk are preserved when the
// file is saved. This allows different parts of the program to share a single
// preferences file.
//
// Values can be overridden from the command line. A group of key/value
// pairs, in the same "key::value" format separated by semi-colons, is pushed
// onto a stack with PushCommandLineStack(). The next call to Load() for a
// Disk containing the key will use the command line value in place of the
// value in the file. The command line value is used only once.
package prefs
