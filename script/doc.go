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

// Package script runs Lua scripts against an fsext.Host. The scripts see the
// host through a small set of global functions that mirror the file
// operations of the host:
//
//	fd = open(path [, flags])        -- descriptor or -1
//	fd = creat(path [, flags])       -- descriptor or -1
//	pos = seek(fd, offset, whence)   -- new position or -1
//	data, n = read(fd, length)       -- string and count, or nil and -1
//	n = write(fd, data)              -- count or -1
//	r = close(fd)                    -- 0 or -1
//	msg = errno()                    -- message of the most recent error or nil
//
// The globals SEEK_SET, SEEK_CUR and SEEK_END are the whence values and
// O_RDONLY, O_WRONLY and O_RDWR are the flags values. The print function
// writes to the output given to Run().
package script
