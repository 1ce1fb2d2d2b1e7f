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

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"reflect"
	"sort"
	"sync"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/logger"
)

// Sentinal patterns for curated errors.
const (
	BadDescriptor    = "fsext: bad descriptor (%d)"
	InvalidArgument  = "fsext: invalid argument: %v"
	DuplicateHandler = "fsext: open handler already added (%T)"
	NativeError      = "fsext: %v"
)

// the lowest descriptor number allocated by the host. 0, 1 and 2 are
// traditionally taken by the standard streams.
const firstFD = 3

type descriptor struct {
	// nil for descriptors allocated by AllocFD()
	file *os.File

	fn   Handler
	data interface{}
}

// Host is the owner of the descriptor table and the list of open handlers.
//
// The host's tables are safe for concurrent use. Handlers are called without
// any lock held and must provide their own guarantees.
type Host struct {
	crit sync.Mutex

	openHandlers []Handler
	table        map[int]*descriptor

	// the most recent error
	errno error

	// log native fallbacks
	trace bool
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost() *Host {
	return &Host{
		table: make(map[int]*descriptor),
	}
}

// SetTrace turns logging of native operations on or off.
func (h *Host) SetTrace(trace bool) {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.trace = trace
}

// AllowLogging implements the logger.Permission interface.
func (h *Host) AllowLogging() bool {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.trace
}

// AddOpenHandler adds a handler to the list of handlers offered Open and
// Creat requests. Handlers added later are offered requests first.
func (h *Host) AddOpenHandler(hnd Handler) error {
	h.crit.Lock()
	defer h.crit.Unlock()

	if hnd == nil {
		return curated.Errorf(InvalidArgument, "nil handler")
	}

	if reflect.TypeOf(hnd).Comparable() {
		for _, o := range h.openHandlers {
			if reflect.TypeOf(o).Comparable() && o == hnd {
				return curated.Errorf(DuplicateHandler, hnd)
			}
		}
	}

	h.openHandlers = append([]Handler{hnd}, h.openHandlers...)
	return nil
}

// allocate lowest free descriptor number. must be called with the critical
// section locked.
func (h *Host) allocate(d *descriptor) int {
	fd := firstFD
	for {
		if _, ok := h.table[fd]; !ok {
			break
		}
		fd++
	}
	h.table[fd] = d
	return fd
}

// AllocFD allocates a new descriptor with fn as the handler function. The
// descriptor has no operating system file and behaves natively like the null
// device.
func (h *Host) AllocFD(fn Handler) int {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.allocate(&descriptor{fn: fn})
}

// SetFunction sets the handler function for the descriptor. A nil function
// means that all operations are handled natively.
func (h *Host) SetFunction(fd int, fn Handler) error {
	h.crit.Lock()
	defer h.crit.Unlock()

	d, ok := h.table[fd]
	if !ok {
		return curated.Errorf(BadDescriptor, fd)
	}
	d.fn = fn
	return nil
}

// Function returns the handler function for the descriptor. Returns nil if
// there is no function or if the descriptor does not exist.
func (h *Host) Function(fd int) Handler {
	h.crit.Lock()
	defer h.crit.Unlock()

	if d, ok := h.table[fd]; ok {
		return d.fn
	}
	return nil
}

// SetData associates an opaque value with the descriptor.
func (h *Host) SetData(fd int, v interface{}) error {
	h.crit.Lock()
	defer h.crit.Unlock()

	d, ok := h.table[fd]
	if !ok {
		return curated.Errorf(BadDescriptor, fd)
	}
	d.data = v
	return nil
}

// Data returns the value associated with the descriptor by SetData().
func (h *Host) Data(fd int) interface{} {
	h.crit.Lock()
	defer h.crit.Unlock()

	if d, ok := h.table[fd]; ok {
		return d.data
	}
	return nil
}

// Descriptors returns a sorted list of all open descriptors.
func (h *Host) Descriptors() []int {
	h.crit.Lock()
	defer h.crit.Unlock()

	fds := make([]int, 0, len(h.table))
	for fd := range h.table {
		fds = append(fds, fd)
	}
	sort.Ints(fds)
	return fds
}

// Errno returns the error stored by the most recent failing operation.
func (h *Host) Errno() error {
	h.crit.Lock()
	defer h.crit.Unlock()
	return h.errno
}

// ClearErrno forgets the most recent error.
func (h *Host) ClearErrno() {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.errno = nil
}

// fail stores err in the error slot and returns it.
func (h *Host) fail(err error) error {
	h.crit.Lock()
	defer h.crit.Unlock()
	h.errno = err
	return err
}

func (h *Host) lookup(fd int) (*descriptor, Handler, error) {
	h.crit.Lock()
	defer h.crit.Unlock()

	d, ok := h.table[fd]
	if !ok {
		return nil, nil, curated.Errorf(BadDescriptor, fd)
	}
	return d, d.fn, nil
}

// offer the request to the open handlers. returns false if no handler claims
// the request.
func (h *Host) offer(req Request) (Result, bool) {
	h.crit.Lock()
	handlers := make([]Handler, len(h.openHandlers))
	copy(handlers, h.openHandlers)
	h.crit.Unlock()

	for _, hnd := range handlers {
		if res, ok := hnd.Handle(req); ok {
			return res, true
		}
	}
	return Result{}, false
}

// NativeClose closes the operating system file of the descriptor, if it has
// one, and frees the descriptor. Any handler function is ignored.
func (h *Host) NativeClose(fd int) error {
	h.crit.Lock()
	d, ok := h.table[fd]
	if ok {
		delete(h.table, fd)
	}
	h.crit.Unlock()

	if !ok {
		return h.fail(curated.Errorf(BadDescriptor, fd))
	}

	logger.Logf(h, "fsext", "native close: fd = %d", fd)

	if d.file != nil {
		if err := d.file.Close(); err != nil {
			return h.fail(curated.Errorf(NativeError, err))
		}
	}

	return nil
}

// Open a file. The open handlers are offered the request before the operating
// system. The flags value is passed to os.OpenFile() if no handler claims the
// request.
func (h *Host) Open(path string, flags int) (int, error) {
	if res, ok := h.offer(OpenRequest{Path: path, Flags: flags}); ok {
		if res.Err != nil {
			return -1, h.fail(res.Err)
		}
		return int(res.Value), nil
	}
	return h.nativeOpen(path, flags, 0)
}

// Creat creates or truncates a file. The open handlers are offered the request
// before the operating system.
func (h *Host) Creat(path string, flags int) (int, error) {
	if res, ok := h.offer(CreatRequest{Path: path, Flags: flags}); ok {
		if res.Err != nil {
			return -1, h.fail(res.Err)
		}
		return int(res.Value), nil
	}

	if flags&(os.O_WRONLY|os.O_RDWR) == 0 {
		flags |= os.O_WRONLY
	}
	return h.nativeOpen(path, flags|os.O_CREATE|os.O_TRUNC, 0o644)
}

func (h *Host) nativeOpen(path string, flags int, perm fs.FileMode) (int, error) {
	logger.Logf(h, "fsext", "native open: path = %q, flags = %#x", path, flags)

	f, err := os.OpenFile(path, flags, perm)
	if err != nil {
		return -1, h.fail(curated.Errorf(NativeError, err))
	}

	h.crit.Lock()
	defer h.crit.Unlock()
	return h.allocate(&descriptor{file: f}), nil
}

// Seek sets the position of the descriptor and returns the new position.
func (h *Host) Seek(fd int, offset int64, whence Whence) (int64, error) {
	d, fn, err := h.lookup(fd)
	if err != nil {
		return -1, h.fail(err)
	}

	if fn != nil {
		if res, ok := fn.Handle(SeekRequest{FD: fd, Offset: offset, Whence: whence}); ok {
			if res.Err != nil {
				return -1, h.fail(res.Err)
			}
			return res.Value, nil
		}
	}

	if d.file == nil {
		switch whence {
		case SeekSet, SeekCur, SeekEnd:
			return 0, nil
		}
		return -1, h.fail(curated.Errorf(InvalidArgument, whence))
	}

	p, err := d.file.Seek(offset, int(whence))
	if err != nil {
		return -1, h.fail(curated.Errorf(NativeError, err))
	}
	return p, nil
}

// Read from the descriptor into buf. Returns the number of bytes read. A
// return of zero bytes and no error indicates the end of the file.
func (h *Host) Read(fd int, buf []byte) (int, error) {
	d, fn, err := h.lookup(fd)
	if err != nil {
		return -1, h.fail(err)
	}

	if fn != nil {
		if res, ok := fn.Handle(ReadRequest{FD: fd, Buffer: buf}); ok {
			if res.Err != nil {
				return -1, h.fail(res.Err)
			}
			return int(res.Value), nil
		}
	}

	if d.file == nil {
		return 0, nil
	}

	n, err := d.file.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		return -1, h.fail(curated.Errorf(NativeError, err))
	}
	return n, nil
}

// Write buf to the descriptor. Returns the number of bytes written.
func (h *Host) Write(fd int, buf []byte) (int, error) {
	d, fn, err := h.lookup(fd)
	if err != nil {
		return -1, h.fail(err)
	}

	if fn != nil {
		if res, ok := fn.Handle(WriteRequest{FD: fd, Buffer: buf}); ok {
			if res.Err != nil {
				return -1, h.fail(res.Err)
			}
			return int(res.Value), nil
		}
	}

	if d.file == nil {
		return len(buf), nil
	}

	n, err := d.file.Write(buf)
	if err != nil {
		return -1, h.fail(curated.Errorf(NativeError, err))
	}
	return n, nil
}

// Close the descriptor. If the descriptor's handler function claims the
// request then it is responsible for freeing the descriptor, usually by
// calling NativeClose().
func (h *Host) Close(fd int) error {
	_, fn, err := h.lookup(fd)
	if err != nil {
		return h.fail(err)
	}

	if fn != nil {
		if res, ok := fn.Handle(CloseRequest{FD: fd}); ok {
			if res.Err != nil {
				return h.fail(res.Err)
			}
			return nil
		}
	}

	return h.NativeClose(fd)
}

// Stat returns information about the descriptor.
func (h *Host) Stat(fd int) (fs.FileInfo, error) {
	d, fn, err := h.lookup(fd)
	if err != nil {
		return nil, h.fail(err)
	}

	if fn != nil {
		if res, ok := fn.Handle(StatRequest{FD: fd}); ok {
			if res.Err != nil {
				return nil, h.fail(res.Err)
			}
			return res.Info, nil
		}
	}

	if d.file == nil {
		return nullInfo{}, nil
	}

	info, err := d.file.Stat()
	if err != nil {
		return nil, h.fail(curated.Errorf(NativeError, err))
	}
	return info, nil
}
