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

package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/fsext"
)

// Sentinal pattern for curated errors.
const ScriptError = "script: %v"

type harness struct {
	host *fsext.Host
	out  io.Writer
}

// Run the Lua source against the host. Output from print() is written to out.
func Run(host *fsext.Host, src string, out io.Writer) error {
	L := newState(host, out)
	defer L.Close()

	if err := L.DoString(src); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunFile is like Run() but the source is read from the named file.
func RunFile(host *fsext.Host, path string, out io.Writer) error {
	L := newState(host, out)
	defer L.Close()

	if err := L.DoFile(path); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func newState(host *fsext.Host, out io.Writer) *lua.LState {
	h := &harness{host: host, out: out}

	L := lua.NewState()

	for name, fn := range map[string]lua.LGFunction{
		"open":  h.open,
		"creat": h.creat,
		"seek":  h.seek,
		"read":  h.read,
		"write": h.write,
		"close": h.close,
		"errno": h.errno,
		"print": h.print,
	} {
		L.SetGlobal(name, L.NewFunction(fn))
	}

	for name, v := range map[string]int{
		"SEEK_SET": int(fsext.SeekSet),
		"SEEK_CUR": int(fsext.SeekCur),
		"SEEK_END": int(fsext.SeekEnd),
		"O_RDONLY": os.O_RDONLY,
		"O_WRONLY": os.O_WRONLY,
		"O_RDWR":   os.O_RDWR,
	} {
		L.SetGlobal(name, lua.LNumber(v))
	}

	return L
}

func (h *harness) open(L *lua.LState) int {
	fd, err := h.host.Open(L.CheckString(1), L.OptInt(2, os.O_RDONLY))
	if err != nil {
		L.Push(lua.LNumber(-1))
		return 1
	}
	L.Push(lua.LNumber(fd))
	return 1
}

func (h *harness) creat(L *lua.LState) int {
	fd, err := h.host.Creat(L.CheckString(1), L.OptInt(2, os.O_WRONLY))
	if err != nil {
		L.Push(lua.LNumber(-1))
		return 1
	}
	L.Push(lua.LNumber(fd))
	return 1
}

func (h *harness) seek(L *lua.LState) int {
	pos, err := h.host.Seek(L.CheckInt(1), L.CheckInt64(2), fsext.Whence(L.OptInt(3, int(fsext.SeekSet))))
	if err != nil {
		L.Push(lua.LNumber(-1))
		return 1
	}
	L.Push(lua.LNumber(pos))
	return 1
}

func (h *harness) read(L *lua.LState) int {
	n := L.CheckInt(2)
	if n < 0 {
		L.ArgError(2, "negative length")
		return 0
	}

	buf := make([]byte, n)
	n, err := h.host.Read(L.CheckInt(1), buf)
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LNumber(-1))
		return 2
	}
	L.Push(lua.LString(buf[:n]))
	L.Push(lua.LNumber(n))
	return 2
}

func (h *harness) write(L *lua.LState) int {
	n, err := h.host.Write(L.CheckInt(1), []byte(L.CheckString(2)))
	if err != nil {
		L.Push(lua.LNumber(-1))
		return 1
	}
	L.Push(lua.LNumber(n))
	return 1
}

func (h *harness) close(L *lua.LState) int {
	if err := h.host.Close(L.CheckInt(1)); err != nil {
		L.Push(lua.LNumber(-1))
		return 1
	}
	L.Push(lua.LNumber(0))
	return 1
}

func (h *harness) errno(L *lua.LState) int {
	err := h.host.Errno()
	if err == nil {
		L.Push(lua.LNil)
		return 1
	}
	L.Push(lua.LString(err.Error()))
	return 1
}

// print writes the arguments separated by tabs.
func (h *harness) print(L *lua.LState) int {
	s := make([]string, 0, L.GetTop())
	for i := 1; i <= L.GetTop(); i++ {
		s = append(s, L.ToStringMeta(L.Get(i)).String())
	}
	fmt.Fprintln(h.out, strings.Join(s, "\t"))
	return 0
}
