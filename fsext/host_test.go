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

package fsext_test

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/fsext"
	"github.com/bobertlo/dmidecode/test"
)

// recorder claims opens of a single path and records every request it sees.
type recorder struct {
	host *fsext.Host
	path string
	seen []fsext.Op
}

func (r *recorder) Handle(req fsext.Request) (fsext.Result, bool) {
	r.seen = append(r.seen, req.Op())

	switch req := req.(type) {
	case fsext.OpenRequest:
		if req.Path != r.path {
			return fsext.Result{}, false
		}
		return fsext.Result{Value: int64(r.host.AllocFD(r))}, true
	case fsext.ReadRequest:
		for i := range req.Buffer {
			req.Buffer[i] = 'r'
		}
		return fsext.Result{Value: int64(len(req.Buffer))}, true
	case fsext.CloseRequest:
		_ = r.host.SetFunction(req.FD, nil)
		return fsext.Result{}, true
	}

	return fsext.Result{}, false
}

func TestOpenHandler(t *testing.T) {
	host := fsext.NewHost()
	r := &recorder{host: host, path: "/dev/test"}
	test.DemandSuccess(t, host.AddOpenHandler(r))

	fd, err := host.Open("/dev/test", os.O_RDONLY)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, fd, 3)

	buf := make([]byte, 4)
	n, err := host.Read(fd, buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, string(buf), "rrrr")

	// writes are not claimed by the recorder and go to the null device
	n, err = host.Write(fd, []byte("abc"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 3)

	// the recorder claims close but only deregisters itself, the descriptor
	// remains until closed natively
	test.ExpectSuccess(t, host.Close(fd))
	test.ExpectEquality(t, len(host.Descriptors()), 1)
	test.ExpectSuccess(t, host.Close(fd))
	test.ExpectEquality(t, len(host.Descriptors()), 0)

	want := []fsext.Op{fsext.OpOpen, fsext.OpRead, fsext.OpWrite, fsext.OpClose}
	if diff := cmp.Diff(want, r.seen); diff != "" {
		t.Errorf("unexpected requests (-want +got):\n%s", diff)
	}
}

func TestDuplicateHandler(t *testing.T) {
	host := fsext.NewHost()
	r := &recorder{host: host, path: "/dev/test"}
	test.ExpectSuccess(t, host.AddOpenHandler(r))
	err := host.AddOpenHandler(r)
	test.ExpectSuccess(t, curated.Is(err, fsext.DuplicateHandler))

	// functions cannot be compared and are always added
	f := fsext.HandlerFunc(func(fsext.Request) (fsext.Result, bool) { return fsext.Result{}, false })
	test.ExpectSuccess(t, host.AddOpenHandler(f))
	test.ExpectSuccess(t, host.AddOpenHandler(f))

	test.ExpectFailure(t, host.AddOpenHandler(nil))
}

func TestHandlerOrder(t *testing.T) {
	host := fsext.NewHost()
	first := &recorder{host: host, path: "/dev/test"}
	second := &recorder{host: host, path: "/dev/test"}
	test.DemandSuccess(t, host.AddOpenHandler(first))
	test.DemandSuccess(t, host.AddOpenHandler(second))

	fd, err := host.Open("/dev/test", 0)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(second.seen), 1)
	test.ExpectEquality(t, len(first.seen), 0)
	test.ExpectEquality(t, host.Function(fd), fsext.Handler(second))
}

func TestNativeFile(t *testing.T) {
	host := fsext.NewHost()
	fn := filepath.Join(t.TempDir(), "native.bin")

	fd, err := host.Creat(fn, os.O_RDWR)
	test.DemandSuccess(t, err)

	n, err := host.Write(fd, []byte("hello world"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 11)

	p, err := host.Seek(fd, -5, fsext.SeekEnd)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, int64(6))

	buf := make([]byte, 10)
	n, err = host.Read(fd, buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buf[:n]), "world")

	// end of file is zero bytes and no error
	n, err = host.Read(fd, buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)

	info, err := host.Stat(fd)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, info.Size(), int64(11))

	test.ExpectSuccess(t, host.Close(fd))

	fd, err = host.Open(fn, os.O_RDONLY)
	test.DemandSuccess(t, err)
	n, err = host.Read(fd, buf)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, string(buf[:n]), "hello worl")
	test.ExpectSuccess(t, host.Close(fd))
}

func TestNativeOpenFailure(t *testing.T) {
	host := fsext.NewHost()
	_, err := host.Open(filepath.Join(t.TempDir(), "missing"), os.O_RDONLY)
	test.ExpectSuccess(t, curated.Is(err, fsext.NativeError))
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))
	test.ExpectSuccess(t, curated.Is(host.Errno(), fsext.NativeError))
}

func TestBadDescriptor(t *testing.T) {
	host := fsext.NewHost()

	_, err := host.Read(99, make([]byte, 1))
	test.ExpectSuccess(t, curated.Is(err, fsext.BadDescriptor))
	_, err = host.Seek(99, 0, fsext.SeekSet)
	test.ExpectSuccess(t, curated.Is(err, fsext.BadDescriptor))
	test.ExpectSuccess(t, curated.Is(host.Close(99), fsext.BadDescriptor))
	test.ExpectSuccess(t, curated.Is(host.NativeClose(99), fsext.BadDescriptor))
	test.ExpectSuccess(t, curated.Is(host.SetFunction(99, nil), fsext.BadDescriptor))
	test.ExpectSuccess(t, curated.Is(host.SetData(99, nil), fsext.BadDescriptor))
	test.ExpectSuccess(t, curated.Is(host.Errno(), fsext.BadDescriptor))

	host.ClearErrno()
	test.ExpectSuccess(t, host.Errno())
}

func TestNullDevice(t *testing.T) {
	host := fsext.NewHost()
	fd := host.AllocFD(nil)

	n, err := host.Read(fd, make([]byte, 8))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 0)

	p, err := host.Seek(fd, 100, fsext.SeekSet)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, p, int64(0))

	_, err = host.Seek(fd, 100, fsext.Whence(7))
	test.ExpectSuccess(t, curated.Is(err, fsext.InvalidArgument))

	info, err := host.Stat(fd)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, info.Name(), "nul")

	test.ExpectSuccess(t, host.Close(fd))
}

func TestDescriptorReuseAndData(t *testing.T) {
	host := fsext.NewHost()
	a := host.AllocFD(nil)
	b := host.AllocFD(nil)
	test.ExpectEquality(t, a, 3)
	test.ExpectEquality(t, b, 4)

	test.ExpectSuccess(t, host.SetData(b, "session"))
	test.ExpectEquality(t, host.Data(b), interface{}("session"))

	test.ExpectSuccess(t, host.NativeClose(a))
	test.ExpectEquality(t, host.AllocFD(nil), 3)
	test.ExpectEquality(t, host.Data(a) == nil, true)
}
