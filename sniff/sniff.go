// Package sniff detects and transparently unwraps compressed input files, so
// that annotation and track sources can be passed to the tool as plain text,
// gzip, zip, xz, zlib, or bzip2 without any flag telling us which.
package sniff

import (
	"bytes"
	"compress/bzip2"
	"compress/zlib"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type Encoding byte

const (
	EncodingInvalid Encoding = iota
	EncodingPlain
	EncodingGzip
	EncodingZip
	EncodingXZ
	EncodingZlib
	EncodingBZip2
)

// Magic byte signatures from https://stackoverflow.com/a/19127748/199475
var magicSigs = map[Encoding][]byte{
	EncodingGzip:  {0x1f, 0x8b, 0x08},
	EncodingZip:   {0x50, 0x4b, 0x03, 0x04},
	EncodingXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	EncodingZlib:  {0x1f, 0x9d},
	EncodingBZip2: {0x42, 0x5a, 0x68},
}

// DetectEncoding reads up to 6 bytes from r and matches them against the
// known signatures. Anything unrecognized is assumed to be plain text.
func DetectEncoding(r io.Reader) (Encoding, error) {
	buff := make([]byte, 6)
	if _, err := io.ReadAtLeast(r, buff, 1); err != nil {
		return EncodingInvalid, err
	}

	for enc, sig := range magicSigs {
		if bytes.HasPrefix(buff, sig) {
			return enc, nil
		}
	}

	return EncodingPlain, nil
}

// Open opens path and returns a reader over its decompressed contents. The
// caller must Close the result on every exit path; closing it also closes the
// underlying file.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	enc, err := DetectEncoding(f)
	if err != nil {
		f.Close()
		return nil, err
	}

	// Rewind past the sniffed bytes
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, err
	}

	switch enc {
	case EncodingGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &layered{gz, f}, nil
	case EncodingZip:
		zr := zipstream.NewReader(f)
		if _, err := zr.Next(); err != nil {
			f.Close()
			return nil, err
		}
		return &layered{io.NopCloser(zr), f}, nil
	case EncodingXZ:
		xr, err := xz.NewReader(f, 0)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &layered{io.NopCloser(xr), f}, nil
	case EncodingZlib:
		zr, err := zlib.NewReader(f)
		if err != nil {
			f.Close()
			return nil, err
		}
		return &layered{zr, f}, nil
	case EncodingBZip2:
		return &layered{io.NopCloser(bzip2.NewReader(f)), f}, nil
	}

	return f, nil
}

// layered closes both the decompressor and the file beneath it.
type layered struct {
	io.ReadCloser
	file *os.File
}

func (l *layered) Close() error {
	err := l.ReadCloser.Close()
	if ferr := l.file.Close(); err == nil {
		err = ferr
	}
	return err
}
