package replay

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// Format selects the on-disk encoding of a recording
type Format int

const (
	FormatJSON Format = iota
	FormatMsgpack
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	default:
		return "unknown"
	}
}

// FormatFor picks the format from the file extension: .msgpack and .mp are
// MessagePack, anything else is JSON.
func FormatFor(filename string) Format {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".msgpack", ".mp":
		return FormatMsgpack
	default:
		return FormatJSON
	}
}

// Encode writes data to w in the given format
func Encode(w io.Writer, format Format, data *ReplayData) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewEncoder(w).Encode(data); err != nil {
			return fmt.Errorf("failed to encode replay: %w", err)
		}
	default:
		return fmt.Errorf("unsupported replay format %s", format)
	}
	return nil
}

// Decode reads a recording from r
func Decode(r io.Reader, format Format) (*ReplayData, error) {
	var data ReplayData
	switch format {
	case FormatJSON:
		if err := json.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode replay: %w", err)
		}
	case FormatMsgpack:
		if err := msgpack.NewDecoder(r).Decode(&data); err != nil {
			return nil, fmt.Errorf("failed to decode replay: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported replay format %s", format)
	}
	if data.Version != Version {
		return nil, fmt.Errorf("unsupported replay version %q (want %q)", data.Version, Version)
	}
	return &data, nil
}

// Save writes data to filename, choosing the format from its extension
func Save(filename string, data *ReplayData) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if err := Encode(file, FormatFor(filename), data); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, FormatFor(filename))
}
