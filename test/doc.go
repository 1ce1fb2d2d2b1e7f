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

// Package test bundles functions useful for testing purposes, particularly in
// conjunction with the standard go test harness.
//
// The Expect functions record a failure and let the test continue. The Demand
// functions stop the test immediately and should be used when later checks
// depend on the value being correct (for example, the length of a slice that
// is about to be indexed).
//
// Success and failure are judged according to the type of the value:
//
//	bool  -> true is success
//	error -> nil is success
//	nil   -> success
//
// The CompareWriter type implements io.Writer and is used to capture output
// for later comparison.
package test
