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

// Package logger is the central log for the program. Log entries are tagged
// with a short string identifying the part of the program that made the
// entry. Consecutive entries with identical tag and detail are folded into a
// single entry with a repeat count.
//
// Every call to Log() and Logf() takes a Permission argument. Types that can
// be switched into a "quiet" state implement the Permission interface and pass
// themselves to the logger. Code that should always log passes logger.Allow.
//
// Only a limited number of entries are kept. Older entries are discarded.
//
// The log can be echoed to an io.Writer as entries are made with SetEcho().
package logger
