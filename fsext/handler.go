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

package fsext

import "io/fs"

// Result is returned by a handler that has claimed a request.
//
// For Open and Creat the Value is the descriptor. For Seek it is the new
// position. For Read and Write it is the number of bytes transferred. For
// Close the Value is ignored.
//
// If Err is not nil the operation has failed. The host records the error and
// reports it to the caller with a Value of -1.
type Result struct {
	Value int64
	Err   error

	// Info is the result of a claimed StatRequest
	Info fs.FileInfo
}

// Handler is implemented by types that want to intercept file operations. The
// bool return value indicates whether the handler has claimed the request. A
// result that is not claimed is ignored.
type Handler interface {
	Handle(req Request) (Result, bool)
}

// HandlerFunc adapts an ordinary function to the Handler interface. Functions
// cannot be compared so AddOpenHandler() does not detect a HandlerFunc that
// has been added twice.
type HandlerFunc func(req Request) (Result, bool)

// Handle implements the Handler interface.
func (f HandlerFunc) Handle(req Request) (Result, bool) {
	return f(req)
}
