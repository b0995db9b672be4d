// Common package contains file helpers shared by several tools
// Exporting these functions from the Common package reduces redundant code
package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
)

type gzipFile struct {
	*gzip.Reader
	f *os.File
}

func (g gzipFile) Close() error {
	gzErr := g.Reader.Close()
	if err := g.f.Close(); err != nil {
		return err
	}
	return gzErr
}

// OpenMaybeGzip opens a file for reading and transparently decompresses it
// when it starts with the gzip magic bytes. The caller closes the result.
// Errors from os.Open are returned unwrapped so callers can test them with errors.Is.
func OpenMaybeGzip(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 2)
	n, _ := io.ReadFull(f, buf)
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to rewind %s: %w", path, err)
	}

	if n == 2 && buf[0] == 0x1F && buf[1] == 0x8B {
		gr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to open gzip reader: %w", err)
		}
		return gzipFile{Reader: gr, f: f}, nil
	}
	return f, nil
}

// FastaHandler receives one record at a time. Sequences are upper-cased.
type FastaHandler func(id string, seq string) error

// StreamFasta calls handler for every record of a plain or gzipped FASTA file.
func StreamFasta(file string, handler FastaHandler) error {
	r, err := OpenMaybeGzip(file)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer r.Close()
	return StreamFastaReader(r, handler)
}

// StreamFastaReader is StreamFasta over an already opened reader.
func StreamFastaReader(r io.Reader, handler FastaHandler) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 64*1024*1024) // long single-line contigs

	var currentID string
	var buffer []byte
	inRecord := false

	flush := func() error {
		if !inRecord {
			return nil
		}
		if err := handler(currentID, string(buffer)); err != nil {
			return fmt.Errorf("handler error (%s): %w", currentID, err)
		}
		return nil
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ">") {
			if err := flush(); err != nil {
				return err
			}
			currentID = strings.TrimPrefix(line, ">")
			buffer = buffer[:0] // reset buffer
			inRecord = true
		} else if inRecord {
			buffer = append(buffer, strings.ToUpper(line)...)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("scanner error: %w", err)
	}
	return flush()
}
