// Package convert holds the reference converter shipped with the driver.
package convert

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jacricelli/mdf4-converters/converter"
	"github.com/jacricelli/mdf4-converters/options"
)

const (
	ProgramName      = "mdf_dryrun"
	defaultChunkSize = 64 * 1024

	idBlockSize    = 64
	minMDF4Version = 400
)

var Version = "1.0.0"

var ErrNotMDF4 = errors.New("not an MDF4 file")

// Identification is the part of the MDF identification block the dry run
// looks at.
type Identification struct {
	FileID      string
	FormatID    string
	ProgramID   string
	Version     uint16
	Unfinalized bool
}

// DryRun checks that every input looks like an MDF4 file and reads it end
// to end, reporting progress. It never writes output.
type DryRun struct {
	converter.Base
	chunkSize       int
	skipHeaderCheck bool
}

func NewDryRun() *DryRun {
	return &DryRun{chunkSize: defaultChunkSize}
}

func (d *DryRun) ProgramName() string { return ProgramName }

func (d *DryRun) Version() string { return Version }

func (d *DryRun) UsesConfigFile() bool { return true }

func (d *DryRun) ConfigureParser(s *options.Schema) {
	s.Add(options.Switch("skip-header-check", "Do not validate the MDF identification block."))
}

func (d *DryRun) ConfigureFileParser(s *options.Schema) {
	s.Add(options.Int("chunk-size", "Number of bytes read between progress updates.").WithDefault(defaultChunkSize))
}

func (d *DryRun) ParseOptions(m *options.Map) (converter.Status, error) {
	if m.Has("chunk-size") {
		d.chunkSize = m.Int("chunk-size")
	}
	if d.chunkSize <= 0 {
		return converter.NoError, fmt.Errorf("chunk-size must be positive, got %d", d.chunkSize)
	}
	d.skipHeaderCheck = m.Bool("skip-header-check")
	return converter.NoError, nil
}

func (d *DryRun) Convert(ctx context.Context, input, outputDir string) error {
	f, err := os.Open(input)
	if err != nil {
		return err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return err
	}

	var id Identification
	if !d.skipHeaderCheck {
		id, err = ReadIdentification(f)
		if err != nil {
			return fmt.Errorf("%s: %w", input, err)
		}
		if _, err := f.Seek(0, io.SeekStart); err != nil {
			return err
		}
	}

	size := st.Size()
	chunks := int((size + int64(d.chunkSize) - 1) / int64(d.chunkSize))
	buf := make([]byte, d.chunkSize)
	for i := 1; i <= chunks; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := io.ReadFull(f, buf[:chunkLen(size, i, d.chunkSize)]); err != nil {
			return fmt.Errorf("read %s: %w", input, err)
		}
		d.ReportProgress(i, chunks)
	}

	tf := converter.LoggerLocalTime
	if d.Common != nil {
		tf = d.Common.DisplayTimeFormat
	}
	d.Logger().Info("Checked file.",
		"input", input,
		"output", outputDir,
		"version", id.Version,
		"program", id.ProgramID,
		"bytes", size,
		"modified", st.ModTime().In(tf.Location(nil)).Format("2006-01-02 15:04:05 MST"),
	)
	if id.Unfinalized {
		d.Logger().Warn("File is not finalized.", "input", input)
	}
	return nil
}

func chunkLen(size int64, i, chunkSize int) int {
	rest := size - int64(i-1)*int64(chunkSize)
	if rest < int64(chunkSize) {
		return int(rest)
	}
	return chunkSize
}

// ReadIdentification reads the 64 byte identification block at the start
// of r.
func ReadIdentification(r io.Reader) (Identification, error) {
	var raw [idBlockSize]byte
	if _, err := io.ReadFull(r, raw[:]); err != nil {
		return Identification{}, fmt.Errorf("%w: identification block: %v", ErrNotMDF4, err)
	}

	id := Identification{
		FileID:    string(raw[0:8]),
		FormatID:  strings.TrimRight(string(raw[8:16]), " \x00"),
		ProgramID: strings.TrimRight(string(raw[16:24]), " \x00"),
		Version:   binary.LittleEndian.Uint16(raw[28:30]),
	}
	switch id.FileID {
	case "MDF     ":
	case "UnFinMF ":
		id.Unfinalized = true
	default:
		return id, fmt.Errorf("%w: unexpected file identifier %q", ErrNotMDF4, id.FileID)
	}
	if id.Version < minMDF4Version {
		return id, fmt.Errorf("%w: version %d", ErrNotMDF4, id.Version)
	}
	return id, nil
}
