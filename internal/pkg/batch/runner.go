package batch

import (
	"context"
	"sync"

	"github.com/pkg/errors"

	"github.com/airenas/groq-transcriber/internal/pkg/audio"
	"github.com/airenas/groq-transcriber/internal/pkg/cmdapp"
	"github.com/airenas/groq-transcriber/internal/pkg/transcription"
)

// Validator checks a file before transcription
type Validator interface {
	Validate(path string) (*audio.Info, error)
}

// Transcriber sends one file for transcription
type Transcriber interface {
	Transcribe(ctx context.Context, req *transcription.Request) (*transcription.Result, error)
}

// Item is the outcome for one input file.
// Either Result or Err is set
type Item struct {
	Path   string
	Result *transcription.Result
	Err    error
}

// Runner applies validation and transcription to a sequence of files.
// One file's failure does not abort the remaining files
type Runner struct {
	validator   Validator
	transcriber Transcriber
	workers     int
}

// NewRunner creates Runner instance
func NewRunner(v Validator, t Transcriber, workers int) (*Runner, error) {
	if v == nil {
		return nil, errors.New("no validator provided")
	}
	if t == nil {
		return nil, errors.New("no transcriber provided")
	}
	if workers < 1 {
		workers = 1
	}
	return &Runner{validator: v, transcriber: t, workers: workers}, nil
}

// Run processes files and returns results preserving the input order
func (r *Runner) Run(ctx context.Context, paths []string, options ...transcription.Option) []Item {
	res := make([]Item, len(paths))
	if r.workers == 1 {
		for i, p := range paths {
			res[i] = r.runOne(ctx, p, options)
		}
		return res
	}
	limit := make(chan struct{}, r.workers)
	wg := &sync.WaitGroup{}
	for i, p := range paths {
		wg.Add(1)
		limit <- struct{}{}
		go func(i int, p string) {
			defer wg.Done()
			defer func() { <-limit }()
			res[i] = r.runOne(ctx, p, options)
		}(i, p)
	}
	wg.Wait()
	return res
}

func (r *Runner) runOne(ctx context.Context, path string, options []transcription.Option) Item {
	res := Item{Path: path}
	if _, err := r.validator.Validate(path); err != nil {
		res.Err = err
		return res
	}
	req, err := transcription.NewRequest(path, options...)
	if err != nil {
		res.Err = err
		return res
	}
	cmdapp.Log.Infof("Transcribing %s", path)
	res.Result, res.Err = r.transcriber.Transcribe(ctx, req)
	return res
}

// Failed counts items with errors
func Failed(items []Item) int {
	res := 0
	for _, it := range items {
		if it.Err != nil {
			res++
		}
	}
	return res
}
