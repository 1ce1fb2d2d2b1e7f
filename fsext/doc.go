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

// Package fsext is a file system extension layer. It sits between a program
// and the operating system's files and allows handlers to intercept file
// operations before the operating system sees them.
//
// A Host owns a table of descriptors. Operations that take a path (Open and
// Creat) are first offered to the open handlers added with AddOpenHandler().
// The first handler to claim the operation decides the result, usually by
// allocating a descriptor with AllocFD() and passing itself as the handler
// function for that descriptor.
//
// Operations that take a descriptor (Seek, Read, Write, Close and Stat) are
// offered to the descriptor's handler function, if it has one. If there is no
// function or the function does not claim the operation, the host performs the
// native operation itself. For descriptors created by Open() with no claiming
// handler the native operation uses the operating system file. Descriptors
// created by AllocFD() have no operating system file and behave like the null
// device.
//
// Handlers receive a Request, which is one of the concrete request types
// defined in this package. A handler should switch on the type of the request
// and return false for any operation it does not understand.
//
// Failing operations store their error in the host's error slot, which can be
// inspected with Errno(), in the manner of the C errno variable.
package fsext
