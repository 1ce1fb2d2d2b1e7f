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

package hexview

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/fsext"
	"github.com/bobertlo/dmidecode/hardware/memory/lowmem"
	"github.com/bobertlo/dmidecode/hardware/memory/memorymap"
	"github.com/bobertlo/dmidecode/terminal/easyterm"
)

// PageSize is the number of bytes shown on one page.
const PageSize = 256

// the number of bytes on each line of a page.
const lineSize = 16

// the address of the last page.
const lastPage = lowmem.Size - PageSize

// Viewer shows pages of the low-memory window as read through a descriptor.
type Viewer struct {
	host *fsext.Host
	fd   int
	out  io.Writer
	page int64
}

// NewViewer is the preferred method of initialisation for the Viewer type.
// The descriptor must be open on the memory device.
func NewViewer(host *fsext.Host, fd int, out io.Writer) *Viewer {
	return &Viewer{
		host: host,
		fd:   fd,
		out:  out,
	}
}

// Goto changes the current page to the page containing the address.
func (v *Viewer) Goto(address int64) {
	if address < 0 {
		address = 0
	}
	if address > lastPage {
		address = lastPage
	}
	v.page = address &^ (PageSize - 1)
}

// Page returns the address of the current page.
func (v *Viewer) Page() int64 {
	return v.page
}

// Render the current page to the output.
func (v *Viewer) Render() error {
	if _, err := v.host.Seek(v.fd, v.page, fsext.SeekSet); err != nil {
		return curated.Errorf("hexview: %v", err)
	}

	data := make([]byte, PageSize)
	n, err := v.host.Read(v.fd, data)
	if err != nil {
		return curated.Errorf("hexview: %v", err)
	}
	data = data[:n]

	s := &strings.Builder{}
	fmt.Fprintf(s, "%05x -> %05x  %s\n", v.page, v.page+PageSize-1, memorymap.MapAddress(v.page))

	for i := 0; i < len(data); i += lineSize {
		line := data[i:min(i+lineSize, len(data))]

		fmt.Fprintf(s, "%05x ", v.page+int64(i))
		for j := 0; j < lineSize; j++ {
			if j == lineSize/2 {
				s.WriteByte(' ')
			}
			if j < len(line) {
				fmt.Fprintf(s, " %02x", line[j])
			} else {
				s.WriteString("   ")
			}
		}

		s.WriteString("  |")
		for _, b := range line {
			if b < 0x20 || b > 0x7e {
				b = '.'
			}
			s.WriteByte(b)
		}
		s.WriteString("|\n")
	}

	_, err = io.WriteString(v.out, s.String())
	return err
}

// Key handles a single key press. Returns true if the key means the viewer
// should quit. The page is rendered again if it changes.
func (v *Viewer) Key(k byte) (bool, error) {
	switch k {
	case ' ', 'j', 'n':
		if v.page >= lastPage {
			return false, nil
		}
		v.page += PageSize
	case 'k', 'b', 'p':
		if v.page <= 0 {
			return false, nil
		}
		v.page -= PageSize
	case 'q', easyterm.KeyInterrupt, easyterm.KeyEndOfFile, easyterm.KeyEsc:
		return true, nil
	default:
		return false, nil
	}
	return false, v.Render()
}

// Run renders the current page and then handles key presses read from the
// input until a quit key is pressed or the input ends.
func (v *Viewer) Run(in io.Reader) error {
	if err := v.Render(); err != nil {
		return err
	}

	r := bufio.NewReader(in)
	for {
		k, err := r.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return curated.Errorf("hexview: %v", err)
		}

		quit, err := v.Key(k)
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}
