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

import "io"

// Op identifies the file operation being requested.
type Op int

// List of valid Op values.
const (
	OpOpen Op = iota
	OpCreat
	OpSeek
	OpRead
	OpWrite
	OpClose
	OpStat
)

func (op Op) String() string {
	switch op {
	case OpOpen:
		return "open"
	case OpCreat:
		return "creat"
	case OpSeek:
		return "seek"
	case OpRead:
		return "read"
	case OpWrite:
		return "write"
	case OpClose:
		return "close"
	case OpStat:
		return "stat"
	}
	return "unknown"
}

// Whence selects the reference point of a seek.
type Whence int

// The recognised values of Whence. Other values are delivered to handlers
// without alteration.
const (
	SeekSet Whence = io.SeekStart
	SeekCur Whence = io.SeekCurrent
	SeekEnd Whence = io.SeekEnd
)

func (w Whence) String() string {
	switch w {
	case SeekSet:
		return "SEEK_SET"
	case SeekCur:
		return "SEEK_CUR"
	case SeekEnd:
		return "SEEK_END"
	}
	return "SEEK_?"
}

// Request is implemented by all request types.
type Request interface {
	Op() Op
}

// OpenRequest is delivered to open handlers by Host.Open().
type OpenRequest struct {
	Path  string
	Flags int
}

// CreatRequest is delivered to open handlers by Host.Creat().
type CreatRequest struct {
	Path  string
	Flags int
}

// SeekRequest is delivered to descriptor handlers by Host.Seek().
type SeekRequest struct {
	FD     int
	Offset int64
	Whence Whence
}

// ReadRequest is delivered to descriptor handlers by Host.Read(). The number
// of bytes requested is the length of Buffer.
type ReadRequest struct {
	FD     int
	Buffer []byte
}

// WriteRequest is delivered to descriptor handlers by Host.Write().
type WriteRequest struct {
	FD     int
	Buffer []byte
}

// CloseRequest is delivered to descriptor handlers by Host.Close().
type CloseRequest struct {
	FD int
}

// StatRequest is delivered to descriptor handlers by Host.Stat(). A handler
// that claims the request should set Result.Info.
type StatRequest struct {
	FD int
}

func (OpenRequest) Op() Op  { return OpOpen }
func (CreatRequest) Op() Op { return OpCreat }
func (SeekRequest) Op() Op  { return OpSeek }
func (ReadRequest) Op() Op  { return OpRead }
func (WriteRequest) Op() Op { return OpWrite }
func (CloseRequest) Op() Op { return OpClose }
func (StatRequest) Op() Op  { return OpStat }
