package utils

import (
	"archive/zip"
	"bytes"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/sevenzip"
	"github.com/google/brotli/go/cbrotli"
)

// brotliQuality is the compression level used for .br files.
const brotliQuality = 7

// LoadFile loads the given file and performs decompression if necessary.
// The compression type is asserted from the file extension, archives
// (.zip, .7z) yield their first file.
func LoadFile(filename string) ([]byte, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	return Decompress(filepath.Ext(filename), data)
}

// Decompress decodes data according to ext. Unknown extensions
// return the data as is.
func Decompress(ext string, data []byte) ([]byte, error) {
	var decoder io.Reader
	switch strings.ToLower(ext) {
	case ".gz":
		r, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("gzip: %w", err)
		}
		defer r.Close()
		decoder = r
	case ".br":
		out, err := cbrotli.Decode(data)
		if err != nil {
			return nil, fmt.Errorf("brotli: %w", err)
		}
		return out, nil
	case ".zip":
		zipReader, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("zip: %w", err)
		}
		if len(zipReader.File) == 0 {
			return nil, fmt.Errorf("zip: archive is empty")
		}

		// read the first file in the zip file
		rc, err := zipReader.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("zip: %w", err)
		}
		defer rc.Close()
		decoder = rc
	case ".7z":
		r, err := sevenzip.NewReader(bytes.NewReader(data), int64(len(data)))
		if err != nil {
			return nil, fmt.Errorf("7z: %w", err)
		}
		if len(r.File) == 0 {
			return nil, fmt.Errorf("7z: archive is empty")
		}

		// read the first file in the archive
		rc, err := r.File[0].Open()
		if err != nil {
			return nil, fmt.Errorf("7z: %w", err)
		}
		defer rc.Close()
		decoder = rc
	default:
		// return the data as is
		return data, nil
	}

	// read the decompressed data into a byte slice
	return io.ReadAll(decoder)
}

// SaveFile writes data to filename, compressing it first when
// the extension is .gz or .br.
func SaveFile(filename string, data []byte) error {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".br":
		out, err := cbrotli.Encode(data, cbrotli.WriterOptions{Quality: brotliQuality})
		if err != nil {
			return fmt.Errorf("brotli: %w", err)
		}
		data = out
	case ".gz":
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("gzip: %w", err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("gzip: %w", err)
		}
		data = buf.Bytes()
	}

	return os.WriteFile(filename, data, 0644)
}
