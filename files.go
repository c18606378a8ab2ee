/*
 * files.go, part of gofeff.
 *
 *
 * Copyright 2026 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 * gofeff is currently developed at the Universidad de Santiago de Chile
 * (USACH)
 *
 */

package feff

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

//gzReadCloser closes both the decompressor and the underlying file.
type gzReadCloser struct {
	gz *gzip.Reader
	f  *os.File
}

func (g *gzReadCloser) Read(p []byte) (int, error) { return g.gz.Read(p) }

func (g *gzReadCloser) Close() error {
	err := g.gz.Close()
	err2 := g.f.Close()
	if err != nil {
		return err
	}
	return err2
}

//openInput opens path for reading. Files ending in .gz are decompressed
//transparently, so compressed feff.inp archives can be read directly.
func openInput(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return f, nil
	}
	gz, err := gzip.NewReader(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &gzReadCloser{gz: gz, f: f}, nil
}

//readLines reads path (possibly gzip-compressed) into a slice of lines.
//Line terminators, including any \r, are stripped.
func readLines(path string) ([]string, error) {
	in, err := openInput(path)
	if err != nil {
		return nil, err
	}
	defer in.Close()
	var lines []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		lines = append(lines, strings.TrimRight(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

//cleanLines trims every line and, if removeEmpty, drops the blank ones.
func cleanLines(lines []string, removeEmpty bool) []string {
	ret := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if removeEmpty && l == "" {
			continue
		}
		ret = append(ret, l)
	}
	return ret
}

//writeString creates path (truncating a previous file) and writes s
//plus a final newline, the way every section's WriteFile does.
func writeString(path, s string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()
	if _, err := io.WriteString(out, s+"\n"); err != nil {
		return err
	}
	return nil
}
