/*
 * archive.go, part of goDock.
 *
 * Copyright 2026 The goDock authors
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
 */

package dock

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

//ExtZstd is the suffix added to compressed files.
const ExtZstd = ".zst"

//zstd.Decoder doesn't implement io.ReadCloser the way we need it, hence this.
type zstdFile struct {
	*zstd.Decoder
	f *os.File
}

//Close releases the decoder and closes the underlying file.
func (z zstdFile) Close() error {
	z.Decoder.Close()
	return z.f.Close()
}

//OpenFile opens name for reading. Files ending in .zst are decompressed on the fly.
func OpenFile(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(name, ExtZstd) {
		return f, nil
	}
	d, err := zstd.NewReader(bufio.NewReader(f))
	if err != nil {
		f.Close()
		return nil, newError("can't start zstd decoder", name, "OpenFile", true, err)
	}
	return zstdFile{Decoder: d, f: f}, nil
}

//CompressFile writes a zstd-compressed copy of name to name+".zst" and, on
//success, removes name. It returns the name of the compressed file.
func CompressFile(name string) (string, error) {
	in, err := os.Open(name)
	if err != nil {
		return "", newError("can't open file to compress", name, "CompressFile", true, err)
	}
	defer in.Close()
	outname := name + ExtZstd
	out, err := os.Create(outname)
	if err != nil {
		return "", newError("can't create compressed file", outname, "CompressFile", true, err)
	}
	w, err := zstd.NewWriter(out, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	if err != nil {
		out.Close()
		return "", newError("can't start zstd encoder", outname, "CompressFile", true, err)
	}
	if _, err = io.Copy(w, in); err != nil {
		w.Close()
		out.Close()
		os.Remove(outname)
		return "", newError("can't compress", name, "CompressFile", true, err)
	}
	if err = w.Close(); err != nil {
		out.Close()
		os.Remove(outname)
		return "", newError("can't flush compressed data", outname, "CompressFile", true, err)
	}
	if err = out.Close(); err != nil {
		return "", newError("can't close compressed file", outname, "CompressFile", true, err)
	}
	return outname, os.Remove(name)
}
