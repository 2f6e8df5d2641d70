package saver

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/airenas/groq-transcriber/internal/pkg/cmdapp"
	"github.com/airenas/groq-transcriber/internal/pkg/transcription"
)

// WriterCloser keeps Writer interface and close function
type WriterCloser interface {
	io.Writer
	Close() error
}

// OpenFileFunc declares function to open file by name and return Writer
type OpenFileFunc func(fileName string) (WriterCloser, error)

// Exporter writes transcription results to local disk
type Exporter struct {
	OpenFileFunc OpenFileFunc
}

// NewExporter creates Exporter instance
func NewExporter() *Exporter {
	return &Exporter{OpenFileFunc: openFile}
}

// Export writes the result to fileName as JSON or plain text
func (e *Exporter) Export(res *transcription.Result, format transcription.Format, fileName string) error {
	if res == nil {
		return errors.New("no result provided")
	}
	content, err := content(res, format)
	if err != nil {
		return err
	}
	f, err := e.OpenFileFunc(fileName)
	if err != nil {
		return errors.Wrap(err, "can't create file "+fileName)
	}
	defer f.Close()
	if _, err := f.Write(content); err != nil {
		return errors.Wrap(err, "can't save file "+fileName)
	}
	cmdapp.Log.Infof("Saved %s", fileName)
	return nil
}

func content(res *transcription.Result, format transcription.Format) ([]byte, error) {
	if format == transcription.FormatText {
		return []byte(res.Text), nil
	}
	b, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "can't marshal result")
	}
	return b, nil
}

// ResolvePath selects the output file name.
// An empty output or a directory gets '<input base>_transcript.<ext>' appended
func ResolvePath(output, input string, format transcription.Format) string {
	if output != "" && !isDir(output) {
		return output
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(output, base+"_transcript"+extFor(format))
}

func extFor(format transcription.Format) string {
	if format == transcription.FormatText {
		return ".txt"
	}
	return ".json"
}

func isDir(path string) bool {
	st, err := os.Stat(path)
	return err == nil && st.IsDir()
}

func openFile(fileName string) (WriterCloser, error) {
	return os.OpenFile(fileName, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0666)
}
