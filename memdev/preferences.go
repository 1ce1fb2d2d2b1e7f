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
	"github.com/bobertlo/dmidecode/prefs"
)

// Preferences for the memory device. The values are stored in the shared
// preferences file and may be overridden on the command line.
type Preferences struct {
	dsk *prefs.Disk

	Path   prefs.String
	Cursor prefs.String
	Bounds prefs.String
	Trace  prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file.
func NewPreferences() (*Preferences, error) {
	pth, err := prefs.DefaultPrefsPath()
	if err != nil {
		return nil, err
	}
	return NewPreferencesFromFile(pth)
}

// NewPreferencesFromFile is like NewPreferences() but with the named
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	// cursor and bounds values must parse
	p.Cursor.SetHookPre(func(v prefs.Value) error {
		_, err := ParseCursorMode(v.(string))
		return err
	})
	p.Bounds.SetHookPre(func(v prefs.Value) error {
		_, err := ParseBoundsPolicy(v.(string))
		return err
	})

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	if err := p.dsk.Add("memdev.path", &p.Path); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("memdev.cursor", &p.Cursor); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("memdev.bounds", &p.Bounds); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("memdev.trace", &p.Trace); err != nil {
		return nil, err
	}

	if err := p.dsk.Load(true); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	// the empty path means the default path for the platform
	_ = p.Path.Set("")
	_ = p.Cursor.Set(SharedCursor.String())
	_ = p.Bounds.Set(Unchecked.String())
	_ = p.Trace.Set(false)
}

// Load current preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}

// Config returns a device configuration built from the current values.
func (p *Preferences) Config() (Config, error) {
	cursor, err := ParseCursorMode(p.Cursor.String())
	if err != nil {
		return Config{}, err
	}
	bounds, err := ParseBoundsPolicy(p.Bounds.String())
	if err != nil {
		return Config{}, err
	}
	return Config{
		Path:   p.Path.String(),
		Cursor: cursor,
		Bounds: bounds,
		Trace:  p.Trace.Get().(bool),
	}, nil
}
