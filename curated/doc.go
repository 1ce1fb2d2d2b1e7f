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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. The first argument
// is a pattern string, which is stored alongside the values and used to
// identify the error later on. Patterns should be exported as string
// constants by the package that creates the error:
//
//	const BadDescriptor = "fsext: bad descriptor (%d)"
//
//	err := curated.Errorf(BadDescriptor, fd)
//
//	if curated.Is(err, BadDescriptor) {
//		...
//	}
//
// The Has() function is similar but checks if the pattern occurs anywhere in
// the chain of curated errors. A curated error is part of the chain if it has
// been passed as one of the values to Errorf():
//
//	f := curated.Errorf("memdev: %v", err)
//
//	curated.Has(f, BadDescriptor) // true
//	curated.Is(f, BadDescriptor)  // false
//
// Uncurated errors in the values list (for example, the *fs.PathError
// returned by os.OpenFile) are reachable through Unwrap(), so the standard
// errors.Is() and errors.As() functions continue to work.
//
// The Error() function normalises the message. Adjacent duplicate parts,
// separated by the sub-string ": ", are removed. This means that wrapping an
// error with the same prefix more than once does not result in stuttering
// messages such as "memdev: memdev: out of range".
package curated
