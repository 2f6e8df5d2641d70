package transcribe

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/airenas/groq-transcriber/internal/pkg/audio"
	"github.com/airenas/groq-transcriber/internal/pkg/batch"
	"github.com/airenas/groq-transcriber/internal/pkg/cmdapp"
	"github.com/airenas/groq-transcriber/internal/pkg/saver"
	"github.com/airenas/groq-transcriber/internal/pkg/transcription"
)

// Runner processes a sequence of files
type Runner interface {
	Run(ctx context.Context, paths []string, options ...transcription.Option) []batch.Item
}

// Exporter writes one result to disk
type Exporter interface {
	Export(res *transcription.Result, format transcription.Format, fileName string) error
}

// ServiceData keeps data required for service work
type ServiceData struct {
	Validator batch.Validator
	Runner    Runner
	Exporter  Exporter

	Output       string
	Format       transcription.Format
	Model        transcription.Model
	Language     string
	ValidateOnly bool

	errWriter io.Writer
}

func runService(data *ServiceData, files []string) error {
	if len(files) == 0 {
		return errors.New("no audio files provided")
	}
	if data.errWriter == nil {
		data.errWriter = os.Stderr
	}
	if data.ValidateOnly {
		return validateFiles(data, files)
	}
	if data.Output != "" && len(files) > 1 {
		if err := os.MkdirAll(data.Output, 0755); err != nil {
			return errors.Wrap(err, "can't create output dir "+data.Output)
		}
	}

	var options []transcription.Option
	options = append(options, transcription.WithFormat(data.Format))
	if data.Model != "" {
		options = append(options, transcription.WithModel(data.Model))
	}
	if data.Language != "" {
		options = append(options, transcription.WithLanguage(data.Language))
	}

	items := data.Runner.Run(context.Background(), files, options...)
	failed := 0
	for _, it := range items {
		if it.Err != nil {
			fmt.Fprintf(data.errWriter, "error processing %s: %s\n", it.Path, it.Err)
			failed++
			continue
		}
		if data.Format == transcription.FormatVerboseJSON {
			cmdapp.Log.Infof("Detected language for %s: %s", it.Path, transcription.DetectLanguage(it.Result))
		}
		out := saver.ResolvePath(data.Output, it.Path, data.Format)
		if err := data.Exporter.Export(it.Result, data.Format, out); err != nil {
			fmt.Fprintf(data.errWriter, "error processing %s: %s\n", it.Path, err)
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("failed %d of %d file(s)", failed, len(items))
	}
	return nil
}

func validateFiles(data *ServiceData, files []string) error {
	failed := 0
	for _, f := range files {
		info, err := data.Validator.Validate(f)
		if err != nil {
			fmt.Fprintf(data.errWriter, "error processing %s: %s\n", f, err)
			failed++
			continue
		}
		logInfo(f, info)
	}
	if failed > 0 {
		return errors.Errorf("failed %d of %d file(s)", failed, len(files))
	}
	return nil
}

func logInfo(file string, info *audio.Info) {
	cmdapp.Log.Infof("Audio file details for %s:", file)
	cmdapp.Log.Infof("  File size: %.2f MB", float64(info.Size)/(1024*1024))
	if info.Decoded {
		cmdapp.Log.Infof("  Duration: %.2f s", info.Duration.Seconds())
		cmdapp.Log.Infof("  Channels: %d", info.Channels)
		if info.SampleRate > 0 {
			cmdapp.Log.Infof("  Sample rate: %d Hz", info.SampleRate)
		}
	}
}
