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

import (
	"runtime"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/fsext"
	"github.com/bobertlo/dmidecode/hardware/memory/lowmem"
	"github.com/bobertlo/dmidecode/logger"
)

// Sentinal patterns for curated errors.
const (
	AlreadyInstalled = "memdev: device already installed (%s)"
	OutOfRange       = "memdev: transfer out of range (%#x, %d bytes)"
)

// the tag used for all log entries.
const logTag = "memdev"

// Config for a new Device.
type Config struct {
	// the path that is claimed by the device. the empty string means the
	// default path for the current platform
	Path string

	Cursor CursorMode
	Bounds BoundsPolicy

	// log every operation
	Trace bool
}

// session holds the cursor of one or more descriptors.
type session struct {
	cursor int64
}

// Device implements the fsext.Handler interface and claims the physical
// memory device path.
type Device struct {
	bus  lowmem.Bus
	host *fsext.Host
	cfg  Config

	// the cursor used by all descriptors in SharedCursor mode
	shared session
}

// NewDevice is the preferred method of initialisation for the Device type.
// The device does nothing until it is installed with Install().
func NewDevice(bus lowmem.Bus, cfg Config) *Device {
	if cfg.Path == "" {
		cfg.Path = DefaultPath(runtime.GOOS)
	}
	return &Device{
		bus: bus,
		cfg: cfg,
	}
}

// Install the device as an open handler of the host. It must be called before
// the program opens the device path and it may only be called once.
func (d *Device) Install(host *fsext.Host) error {
	if d.host != nil {
		return curated.Errorf(AlreadyInstalled, d.cfg.Path)
	}
	if err := host.AddOpenHandler(d); err != nil {
		return curated.Errorf("memdev: %v", err)
	}
	d.host = host
	return nil
}

// Path returns the path claimed by the device.
func (d *Device) Path() string {
	return d.cfg.Path
}

// Config returns a copy of the device's configuration.
func (d *Device) Config() Config {
	return d.cfg
}

// SetTrace turns logging of device operations on or off.
func (d *Device) SetTrace(trace bool) {
	d.cfg.Trace = trace
}

// AllowLogging implements the logger.Permission interface.
func (d *Device) AllowLogging() bool {
	return d.cfg.Trace
}

// Cursor returns the value of the shared cursor. It is not meaningful in
// PerDescriptor mode.
func (d *Device) Cursor() int64 {
	return d.shared.cursor
}

// SessionCursor returns the cursor used by the descriptor. Returns false if
// the descriptor is not open on this device.
func (d *Device) SessionCursor(fd int) (int64, bool) {
	if !d.owns(fd) {
		return 0, false
	}
	return d.session(fd).cursor, true
}

// owns returns true if the descriptor is open on this device.
func (d *Device) owns(fd int) bool {
	if d.host == nil {
		return false
	}
	return d.host.Function(fd) == fsext.Handler(d)
}

// session returns the session for the descriptor according to cursor mode.
func (d *Device) session(fd int) *session {
	if d.cfg.Cursor == PerDescriptor {
		if s, ok := d.host.Data(fd).(*session); ok {
			return s
		}

		// the descriptor has been handed to this device with SetFunction()
		// rather than by opening the device path
		s := &session{}
		_ = d.host.SetData(fd, s)
		return s
	}
	return &d.shared
}

// Handle implements the fsext.Handler interface.
func (d *Device) Handle(req fsext.Request) (fsext.Result, bool) {
	switch req := req.(type) {
	case fsext.OpenRequest:
		return d.open(req)
	case fsext.SeekRequest:
		return d.seek(req), true
	case fsext.ReadRequest:
		return d.read(req), true
	case fsext.WriteRequest:
		return d.write(req), true
	case fsext.CloseRequest:
		return d.close(req), true
	}

	logger.Logf(d, logTag, "unknown function = %v", req.Op())
	return fsext.Result{}, false
}

func (d *Device) open(req fsext.OpenRequest) (fsext.Result, bool) {
	logger.Logf(d, logTag, "open - path = %q, attrib = %#x", req.Path, req.Flags)

	if req.Path != d.cfg.Path || d.host == nil {
		return fsext.Result{}, false
	}

	fd := d.host.AllocFD(d)
	if d.cfg.Cursor == PerDescriptor {
		_ = d.host.SetData(fd, &session{})
	} else {
		d.shared.cursor = 0
	}

	return fsext.Result{Value: int64(fd)}, true
}

func (d *Device) seek(req fsext.SeekRequest) fsext.Result {
	logger.Logf(d, logTag, "llseek - fd = %d, offset = %d, whence = %v", req.FD, req.Offset, req.Whence)

	s := d.session(req.FD)

	switch req.Whence {
	case fsext.SeekSet:
		s.cursor = req.Offset
	case fsext.SeekCur:
		s.cursor += req.Offset
	case fsext.SeekEnd:
		s.cursor = lowmem.EndSentinel + req.Offset
	default:
		return fsext.Result{Value: -1, Err: curated.Errorf(fsext.InvalidArgument, req.Whence)}
	}

	return fsext.Result{Value: s.cursor}
}

// span returns the number of bytes to transfer from the cursor according to
// the bounds policy.
func (d *Device) span(cursor int64, length int) (int, error) {
	switch d.cfg.Bounds {
	case Clamp:
		if cursor < 0 || cursor >= lowmem.Size {
			return 0, nil
		}
		if rem := lowmem.Size - cursor; int64(length) > rem {
			return int(rem), nil
		}
	case Fail:
		if length == 0 {
			return 0, nil
		}
		if skip, count := lowmem.InWindow(cursor, length); skip != 0 || count != length {
			return 0, curated.Errorf(OutOfRange, cursor, length)
		}
	}
	return length, nil
}

func (d *Device) read(req fsext.ReadRequest) fsext.Result {
	logger.Logf(d, logTag, "read - fd = %d, length = %d", req.FD, len(req.Buffer))

	s := d.session(req.FD)

	n, err := d.span(s.cursor, len(req.Buffer))
	if err != nil {
		return fsext.Result{Value: -1, Err: err}
	}

	d.bus.Fetch(s.cursor, req.Buffer[:n])
	s.cursor += int64(n)

	return fsext.Result{Value: int64(n)}
}

func (d *Device) write(req fsext.WriteRequest) fsext.Result {
	logger.Logf(d, logTag, "write - fd = %d, length = %d", req.FD, len(req.Buffer))

	s := d.session(req.FD)

	n, err := d.span(s.cursor, len(req.Buffer))
	if err != nil {
		return fsext.Result{Value: -1, Err: err}
	}

	d.bus.Store(s.cursor, req.Buffer[:n])
	s.cursor += int64(n)

	return fsext.Result{Value: int64(n)}
}

func (d *Device) close(req fsext.CloseRequest) fsext.Result {
	logger.Logf(d, logTag, "close - fd = %d", req.FD)

	// the descriptor reverts to native handling before it is closed natively
	_ = d.host.SetFunction(req.FD, nil)

	if err := d.host.NativeClose(req.FD); err != nil {
		return fsext.Result{Value: -1, Err: err}
	}
	return fsext.Result{}
}
