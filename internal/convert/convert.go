// Package convert ties decoding and rendering together for one run:
// read the whole JSON export, decode every record, write CSV. The input
// is read fully into memory first; personal call log exports are small
// enough that streaming would buy nothing.
package convert

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/evilscientress/android-call-log-converter/internal/decode"
	"github.com/evilscientress/android-call-log-converter/internal/render"
)

// Run converts the JSON export read from in and writes CSV to out.
func Run(in io.Reader, out io.Writer, loc *time.Location, opts render.Options) error {
	data, err := io.ReadAll(in)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}
	calls, err := decode.Decode(data, loc)
	if err != nil {
		return err
	}
	return render.Write(out, calls, opts)
}

// String converts a JSON document held in memory and returns the CSV
// text instead of writing it to a sink.
func String(doc []byte, loc *time.Location, opts render.Options) (string, error) {
	calls, err := decode.Decode(doc, loc)
	if err != nil {
		return "", err
	}
	return render.Render(calls, opts)
}

// OutputPath derives the default output file for an input path by
// swapping its extension for .csv.
func OutputPath(in string) string {
	ext := filepath.Ext(in)
	if ext == "" {
		return in + ".csv"
	}
	return strings.TrimSuffix(in, ext) + ".csv"
}
