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

package prefs

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// overrides is one group of command line preferences.
type overrides map[string]string

var cmdline struct {
	crit  sync.Mutex
	stack []overrides
}

// SizeCommandLineStack returns the number of groups on the stack.
func SizeCommandLineStack() int {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	return len(cmdline.stack)
}

// PushCommandLineStack parses a preferences string and pushes the key/value
// pairs onto the stack as a new group. Pairs are separated by semi-colons and
// keys are separated from values by a double colon. Malformed pairs are
// ignored.
func PushCommandLineStack(prefs string) {
	grp := make(overrides)
	for _, p := range strings.Split(prefs, ";") {
		key, val, ok := strings.Cut(p, "::")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		grp[key] = strings.TrimSpace(val)
	}

	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()
	cmdline.stack = append(cmdline.stack, grp)
}

// PopCommandLineStack forgets the most recent group. Returns the unused
// preferences of the group, in the same format as accepted by
// PushCommandLineStack().
func PopCommandLineStack() string {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.stack) == 0 {
		return ""
	}

	top := cmdline.stack[len(cmdline.stack)-1]
	cmdline.stack = cmdline.stack[:len(cmdline.stack)-1]

	keys := make([]string, 0, len(top))
	for k := range top {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, k := range keys {
		s = append(s, fmt.Sprintf("%s::%s", k, top[k]))
	}

	return strings.Join(s, "; ")
}

// GetCommandLinePref returns the value for key from the top group of the
// stack. The entry is removed once returned.
func GetCommandLinePref(key string) (bool, string) {
	cmdline.crit.Lock()
	defer cmdline.crit.Unlock()

	if len(cmdline.stack) == 0 {
		return false, ""
	}

	top := cmdline.stack[len(cmdline.stack)-1]
	if v, ok := top[key]; ok {
		delete(top, key)
		return true, v
	}

	return false, ""
}
