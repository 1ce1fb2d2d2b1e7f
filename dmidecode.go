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

package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"golang.org/x/term"

	"github.com/bobertlo/dmidecode/curated"
	"github.com/bobertlo/dmidecode/dmi"
	"github.com/bobertlo/dmidecode/fsext"
	"github.com/bobertlo/dmidecode/hardware/memory/lowmem"
	"github.com/bobertlo/dmidecode/hardware/memory/memorymap"
	"github.com/bobertlo/dmidecode/hexview"
	"github.com/bobertlo/dmidecode/logger"
	"github.com/bobertlo/dmidecode/memdev"
	"github.com/bobertlo/dmidecode/modalflag"
	"github.com/bobertlo/dmidecode/prefs"
	"github.com/bobertlo/dmidecode/script"
	"github.com/bobertlo/dmidecode/statsview"
	"github.com/bobertlo/dmidecode/terminal/easyterm"
	"github.com/bobertlo/dmidecode/version"
)

// exit codes.
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch parses the arguments and runs the selected mode. Returns the exit
// code for the process.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubModes("DUMP", "PEEK", "POKE", "SCAN", "SCRIPT", "VIEW", "SELFTEST", "REGIONS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "DUMP":
		err = dump(md)
	case "PEEK":
		err = peek(md)
	case "POKE":
		err = poke(md)
	case "SCAN":
		err = scan(md)
	case "SCRIPT":
		err = runScript(md)
	case "VIEW":
		err = view(md)
	case "SELFTEST":
		err = selfTest(md)
	case "REGIONS":
		err = regions(md)
	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return 0
}

// common flags for all modes that use the memory device.
type common struct {
	image     *string
	physical  *string
	trace     *bool
	cursor    *string
	bounds    *string
	prefs     *string
	statsview *bool
	memviz    *string
}

func addCommonFlags(md *modalflag.Modes) *common {
	c := &common{
		image:    md.AddString("image", "", "ROM image to load at the top of the low-memory window"),
		physical: md.AddString("physical", "", "map the low-memory window from a memory device file (eg. /dev/mem)"),
		trace:    md.AddBool("trace", false, "echo device trace to stderr"),
		cursor:   md.AddString("cursor", "", "cursor mode: SHARED, DESCRIPTOR"),
		bounds:   md.AddString("bounds", "", "bounds policy: UNCHECKED, CLAMP, FAIL"),
		prefs:    md.AddString("prefs", "", "preference overrides (eg. \"memdev.trace::true; memdev.bounds::clamp\")"),
		memviz:   md.AddString("memviz", "", "write a graphviz rendering of the device state to file"),
	}
	if statsview.Available() {
		c.statsview = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}
	return c
}

// machine is the memory device installed over a bus.
type machine struct {
	host *fsext.Host
	dev  *memdev.Device
	bus  lowmem.Bus
	c    *common
}

// setup the machine according to the common flags. The writable argument
// applies only to physical memory.
func (c *common) setup(md *modalflag.Modes, writable bool) (*machine, error) {
	if *c.prefs != "" {
		prefs.PushCommandLineStack(*c.prefs)
		defer prefs.PopCommandLineStack()
	}

	p, err := memdev.NewPreferences()
	if err != nil {
		return nil, err
	}

	cfg, err := p.Config()
	if err != nil {
		return nil, err
	}

	// flags take priority over preferences
	var flagErr error
	md.Visit(func(f string) {
		var err error
		switch f {
		case "cursor":
			cfg.Cursor, err = memdev.ParseCursorMode(*c.cursor)
		case "bounds":
			cfg.Bounds, err = memdev.ParseBoundsPolicy(*c.bounds)
		case "trace":
			cfg.Trace = *c.trace
		}
		if err != nil && flagErr == nil {
			flagErr = err
		}
	})
	if flagErr != nil {
		return nil, flagErr
	}

	if cfg.Trace {
		logger.SetEcho(os.Stderr)
	}

	m := &machine{host: fsext.NewHost(), c: c}
	m.host.SetTrace(cfg.Trace)

	switch {
	case *c.physical != "" && *c.image != "":
		return nil, curated.Errorf("-physical and -image cannot be used together")
	case *c.physical != "":
		m.bus, err = lowmem.NewPhysical(*c.physical, writable)
		if err != nil {
			return nil, err
		}
	default:
		ram := lowmem.NewRAM()
		if *c.image != "" {
			data, err := os.ReadFile(*c.image)
			if err != nil {
				return nil, curated.Errorf("image: %v", err)
			}
			if err := ram.Load(lowmem.Size-int64(len(data)), data); err != nil {
				return nil, curated.Errorf("image: %v", err)
			}
		}
		m.bus = ram
	}

	m.dev = memdev.NewDevice(m.bus, cfg)
	if err := m.dev.Install(m.host); err != nil {
		m.close()
		return nil, err
	}

	if c.statsview != nil && *c.statsview {
		statsview.Launch(os.Stdout)
	}

	return m, nil
}

// close the machine. The memviz file is written if requested.
func (m *machine) close() error {
	var err error

	if *m.c.memviz != "" && m.dev != nil {
		st := m.dev.State()
		f, ferr := os.Create(*m.c.memviz)
		if ferr != nil {
			err = curated.Errorf("memviz: %v", ferr)
		} else {
			memviz.Map(f, &st)
			if ferr := f.Close(); ferr != nil {
				err = curated.Errorf("memviz: %v", ferr)
			}
		}
	}

	if c, ok := m.bus.(io.Closer); ok {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}

	return err
}

// open the device path through the host.
func (m *machine) open(flags int) (int, error) {
	return m.host.Open(m.dev.Path(), flags)
}

// parseAddress accepts decimal, hex (0x), octal (0o) and binary (0b)
// values. A value of the form SEGMENT:OFFSET is converted to a linear address.
func parseAddress(s string) (int64, error) {
	if seg, off, ok := strings.Cut(s, ":"); ok {
		sv, err := strconv.ParseUint(seg, 16, 16)
		if err != nil {
			return 0, curated.Errorf("address: %v", err)
		}
		ov, err := strconv.ParseUint(off, 16, 16)
		if err != nil {
			return 0, curated.Errorf("address: %v", err)
		}
		return int64(sv<<4 + ov), nil
	}

	v, err := strconv.ParseInt(s, 0, 64)
	if err != nil {
		return 0, curated.Errorf("address: %v", err)
	}
	return v, nil
}

// withMachine runs fn with a machine built from the common flags. The
// machine is closed afterwards.
func withMachine(md *modalflag.Modes, c *common, writable bool, fn func(m *machine) error) error {
	m, err := c.setup(md, writable)
	if err != nil {
		return err
	}

	err = fn(m)
	if cerr := m.close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

func dump(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommonFlags(md)
	md.AdditionalHelp("arguments: [address [length]]. default is the system BIOS area")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	origin, memtop := memorymap.Range(memorymap.BIOS)
	length := memtop - origin + 1

	switch len(md.RemainingArgs()) {
	case 2:
		length, err = parseAddress(md.GetArg(1))
		if err != nil {
			return err
		}
		fallthrough
	case 1:
		origin, err = parseAddress(md.GetArg(0))
		if err != nil {
			return err
		}
	case 0:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	return withMachine(md, c, false, func(m *machine) error {
		fd, err := m.open(os.O_RDONLY)
		if err != nil {
			return err
		}
		defer m.host.Close(fd)

		v := hexview.NewViewer(m.host, fd, md.Output)
		for page := origin &^ (hexview.PageSize - 1); page < origin+length && page < lowmem.Size; page += hexview.PageSize {
			v.Goto(page)
			if err := v.Render(); err != nil {
				return err
			}
		}
		return nil
	})
}

func peek(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommonFlags(md)
	md.AdditionalHelp("arguments: address [length]")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var address int64
	length := int64(1)

	switch len(md.RemainingArgs()) {
	case 2:
		length, err = parseAddress(md.GetArg(1))
		if err != nil {
			return err
		}
		fallthrough
	case 1:
		address, err = parseAddress(md.GetArg(0))
		if err != nil {
			return err
		}
	case 0:
		return curated.Errorf("address required for %s mode", md)
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	if length < 0 || length > lowmem.Size {
		return curated.Errorf("length out of range (%d)", length)
	}

	return withMachine(md, c, false, func(m *machine) error {
		fd, err := m.open(os.O_RDONLY)
		if err != nil {
			return err
		}
		defer m.host.Close(fd)

		if _, err := m.host.Seek(fd, address, fsext.SeekSet); err != nil {
			return err
		}

		data := make([]byte, length)
		n, err := m.host.Read(fd, data)
		if err != nil {
			return err
		}

		for i, v := range data[:n] {
			fmt.Fprintf(md.Output, "%05x: %02x\n", address+int64(i), v)
		}
		return nil
	})
}

func poke(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommonFlags(md)
	md.AdditionalHelp("arguments: address value [value...]")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) < 2 {
		return curated.Errorf("address and value required for %s mode", md)
	}

	address, err := parseAddress(md.GetArg(0))
	if err != nil {
		return err
	}

	var data []byte
	for _, a := range md.RemainingArgs()[1:] {
		v, err := strconv.ParseUint(a, 0, 8)
		if err != nil {
			return curated.Errorf("value: %v", err)
		}
		data = append(data, uint8(v))
	}

	return withMachine(md, c, true, func(m *machine) error {
		fd, err := m.open(os.O_RDWR)
		if err != nil {
			return err
		}
		defer m.host.Close(fd)

		if _, err := m.host.Seek(fd, address, fsext.SeekSet); err != nil {
			return err
		}

		n, err := m.host.Write(fd, data)
		if err != nil {
			return err
		}

		fmt.Fprintf(md.Output, "%d bytes written at %05x\n", n, address)
		return nil
	})
}

func scan(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommonFlags(md)
	limit := md.AddInt64("limit", 0, "maximum number of structures to decode (0 for no limit)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	return withMachine(md, c, false, func(m *machine) error {
		ep, err := dmi.FindEntryPoint(m.host, m.dev.Path())
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "%s\n\n", ep)

		table, err := dmi.ReadTable(m.host, m.dev.Path(), ep)
		if err != nil {
			return err
		}

		structures, err := dmi.Decode(table, int(*limit))
		for _, s := range structures {
			fmt.Fprintf(md.Output, "%s\n", s)
			for i, str := range s.Strings {
				fmt.Fprintf(md.Output, "\tString %d: %s\n", i+1, str)
			}
			fmt.Fprintln(md.Output)
		}
		return err
	})
}

func runScript(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommonFlags(md)
	md.AdditionalHelp("arguments: script file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return curated.Errorf("exactly one script file required for %s mode", md)
	}

	return withMachine(md, c, true, func(m *machine) error {
		return script.RunFile(m.host, md.GetArg(0), md.Output)
	})
}

func view(md *modalflag.Modes) error {
	md.NewMode()
	c := addCommonFlags(md)
	md.AdditionalHelp("arguments: [address]. keys: space/j/n next page, k/b/p previous page, q quit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var address int64
	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		address, err = parseAddress(md.GetArg(0))
		if err != nil {
			return err
		}
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	return withMachine(md, c, false, func(m *machine) error {
		fd, err := m.open(os.O_RDONLY)
		if err != nil {
			return err
		}
		defer m.host.Close(fd)

		v := hexview.NewViewer(m.host, fd, md.Output)
		v.Goto(address)

		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return v.Run(os.Stdin)
		}

		var pt easyterm.Terminal
		if err := pt.Initialise(os.Stdin, os.Stdout); err != nil {
			return err
		}
		if err := pt.CBreakMode(); err != nil {
			return err
		}
		defer pt.CanonicalMode()

		return v.Run(&pt)
	})
}

func regions(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	_, err = io.WriteString(md.Output, memorymap.Summary())
	return err
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	v, r, _ := version.Version()
	fmt.Fprintf(md.Output, "%s %s\n", version.ApplicationName, v)
	if *revision {
		fmt.Fprintln(md.Output, r)
	}
	return nil
}
