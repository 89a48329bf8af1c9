/*
 * compress.go, part of gocube.
 *
 *
 * Copyright 2026 The gocube Authors
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
 */

package cube

import (
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression is chosen by file suffix. Anything not listed is plain text.
const (
	GzipSuffix = ".gz"
	ZstdSuffix = ".zst"
)

// zstd.Decoder has a Close method that returns nothing, so it doesn't implement io.ReadCloser.
type zstdReadCloser struct {
	*zstd.Decoder
}

func (z zstdReadCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// stackedReadCloser reads from the top of a stack of readers and closes all of them, top first.
type stackedReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (s *stackedReadCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

type stackedWriteCloser struct {
	io.Writer
	closers []io.Closer
}

func (s *stackedWriteCloser) Close() error {
	var first error
	for _, c := range s.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// OpenCompressed opens the file name for reading, decompressing it on the fly
// if its name ends in GzipSuffix or ZstdSuffix. Closing the returned reader also
// closes the file. Failures are returned as *Error with ErrIO.
func OpenCompressed(name string) (io.ReadCloser, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, ioError(err, name, "OpenCompressed")
	}
	var dec io.ReadCloser
	switch suffix(name) {
	case GzipSuffix:
		dec, err = gzip.NewReader(f)
	case ZstdSuffix:
		var d *zstd.Decoder
		d, err = zstd.NewReader(f)
		if err == nil {
			dec = zstdReadCloser{d}
		}
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, ioError(err, name, "OpenCompressed")
	}
	return &stackedReadCloser{Reader: dec, closers: []io.Closer{dec, f}}, nil
}

// CreateCompressed creates (or truncates) the file name for writing, compressing
// according to its suffix, as OpenCompressed does. The caller must Close the
// returned writer, which flushes the compressor and then closes the file.
func CreateCompressed(name string) (io.WriteCloser, error) {
	f, err := os.Create(name)
	if err != nil {
		return nil, ioError(err, name, "CreateCompressed")
	}
	var enc io.WriteCloser
	switch suffix(name) {
	case GzipSuffix:
		enc, err = gzip.NewWriterLevel(f, gzip.DefaultCompression)
	case ZstdSuffix:
		enc, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, ioError(err, name, "CreateCompressed")
	}
	return &stackedWriteCloser{Writer: enc, closers: []io.Closer{enc, f}}, nil
}

func suffix(name string) string {
	l := strings.ToLower(name)
	for _, s := range []string{GzipSuffix, ZstdSuffix} {
		if strings.HasSuffix(l, s) {
			return s
		}
	}
	return ""
}
