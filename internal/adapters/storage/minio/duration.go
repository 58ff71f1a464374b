package minio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

// probeMP4Duration reads the duration of an ISO BMFF (mp4/mov) file from its
// moov/mvhd box. It understands mvhd versions 0 and 1 and 64-bit box sizes.
// Non-mp4 containers come back as an error and the caller falls back to a
// zero duration.
func probeMP4Duration(path string) (float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return 0, err
	}

	moov, err := findBox(io.NewSectionReader(f, 0, info.Size()), "moov")
	if err != nil {
		return 0, err
	}
	mvhd, err := findBox(moov, "mvhd")
	if err != nil {
		return 0, err
	}
	return readMvhdDuration(mvhd)
}

// findBox scans sibling boxes in r and returns a reader over the payload of
// the first box with the given type.
func findBox(r *io.SectionReader, boxType string) (*io.SectionReader, error) {
	var offset int64
	for offset < r.Size() {
		var header [8]byte
		if _, err := r.ReadAt(header[:], offset); err != nil {
			return nil, fmt.Errorf("reading box header: %w", err)
		}

		size := int64(binary.BigEndian.Uint32(header[0:4]))
		headerLen := int64(8)
		switch size {
		case 0:
			// box extends to end of file
			size = r.Size() - offset
		case 1:
			var large [8]byte
			if _, err := r.ReadAt(large[:], offset+8); err != nil {
				return nil, fmt.Errorf("reading large box size: %w", err)
			}
			size = int64(binary.BigEndian.Uint64(large[:]))
			headerLen = 16
		}
		if size < headerLen {
			return nil, errors.New("malformed box size")
		}

		if string(header[4:8]) == boxType {
			return io.NewSectionReader(r, offset+headerLen, size-headerLen), nil
		}
		offset += size
	}
	return nil, fmt.Errorf("box %q not found", boxType)
}

func readMvhdDuration(r *io.SectionReader) (float64, error) {
	var version [1]byte
	if _, err := r.ReadAt(version[:], 0); err != nil {
		return 0, fmt.Errorf("reading mvhd version: %w", err)
	}

	// version+flags (4), then creation and modification times whose width
	// depends on the version, then timescale and duration
	switch version[0] {
	case 0:
		var fields [8]byte
		if _, err := r.ReadAt(fields[:], 12); err != nil {
			return 0, fmt.Errorf("reading mvhd fields: %w", err)
		}
		timescale := binary.BigEndian.Uint32(fields[0:4])
		duration := binary.BigEndian.Uint32(fields[4:8])
		if timescale == 0 {
			return 0, errors.New("mvhd timescale is zero")
		}
		return float64(duration) / float64(timescale), nil
	case 1:
		var fields [12]byte
		if _, err := r.ReadAt(fields[:], 20); err != nil {
			return 0, fmt.Errorf("reading mvhd fields: %w", err)
		}
		timescale := binary.BigEndian.Uint32(fields[0:4])
		duration := binary.BigEndian.Uint64(fields[4:12])
		if timescale == 0 {
			return 0, errors.New("mvhd timescale is zero")
		}
		return float64(duration) / float64(timescale), nil
	default:
		return 0, fmt.Errorf("unsupported mvhd version %d", version[0])
	}
}
