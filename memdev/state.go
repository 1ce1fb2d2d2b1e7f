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

// SessionState is the state of a single descriptor open on the device.
type SessionState struct {
	FD     int
	Cursor int64
}

// State is a snapshot of the device, suitable for printing or for
// visualisation.
type State struct {
	Path         string
	Cursor       string
	Bounds       string
	Trace        bool
	Installed    bool
	SharedCursor int64
	Sessions     []SessionState
}

// State returns a snapshot of the device.
func (d *Device) State() State {
	st := State{
		Path:         d.cfg.Path,
		Cursor:       d.cfg.Cursor.String(),
		Bounds:       d.cfg.Bounds.String(),
		Trace:        d.cfg.Trace,
		Installed:    d.host != nil,
		SharedCursor: d.shared.cursor,
	}

	if d.host == nil {
		return st
	}

	for _, fd := range d.host.Descriptors() {
		if c, ok := d.SessionCursor(fd); ok {
			st.Sessions = append(st.Sessions, SessionState{FD: fd, Cursor: c})
		}
	}

	return st
}
