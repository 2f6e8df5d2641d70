package batch

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/airenas/groq-transcriber/internal/pkg/audio"
	"github.com/airenas/groq-transcriber/internal/pkg/transcription"
)

type fakeValidator struct {
	failFor map[string]error
}

func (f *fakeValidator) Validate(path string) (*audio.Info, error) {
	if err, ok := f.failFor[path]; ok {
		return nil, err
	}
	return &audio.Info{Decoded: true}, nil
}

type fakeTranscriber struct {
	lock  sync.Mutex
	calls []string
	err   error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, req *transcription.Request) (*transcription.Result, error) {
	f.lock.Lock()
	defer f.lock.Unlock()
	f.calls = append(f.calls, req.File())
	if f.err != nil {
		return nil, f.err
	}
	return &transcription.Result{Text: "text for " + req.File()}, nil
}

func TestInit(t *testing.T) {
	r, err := NewRunner(&fakeValidator{}, &fakeTranscriber{}, 0)
	assert.Nil(t, err)
	assert.NotNil(t, r)
	assert.Equal(t, 1, r.workers)
}

func TestInit_Fails(t *testing.T) {
	_, err := NewRunner(nil, &fakeTranscriber{}, 1)
	assert.NotNil(t, err)
	_, err = NewRunner(&fakeValidator{}, nil, 1)
	assert.NotNil(t, err)
}

func TestRun_KeepsOrder(t *testing.T) {
	ft := &fakeTranscriber{}
	r, _ := NewRunner(&fakeValidator{}, ft, 1)

	items := r.Run(context.Background(), []string{"a.mp3", "b.mp3", "c.wav"})

	assert.Equal(t, 3, len(items))
	for i, p := range []string{"a.mp3", "b.mp3", "c.wav"} {
		assert.Equal(t, p, items[i].Path)
		assert.Equal(t, "text for "+p, items[i].Result.Text)
		assert.Nil(t, items[i].Err)
	}
	assert.Equal(t, []string{"a.mp3", "b.mp3", "c.wav"}, ft.calls)
}

func TestRun_ContinuesOnFailure(t *testing.T) {
	fv := &fakeValidator{failFor: map[string]error{
		"b.xyz": errors.Wrap(transcription.ErrUnsupportedExt, "'.xyz'")}}
	ft := &fakeTranscriber{}
	r, _ := NewRunner(fv, ft, 1)

	items := r.Run(context.Background(), []string{"a.mp3", "b.xyz", "c.wav"})

	assert.Equal(t, 3, len(items))
	assert.Nil(t, items[0].Err)
	assert.NotNil(t, items[1].Err)
	assert.True(t, errors.Is(items[1].Err, transcription.ErrUnsupportedExt))
	assert.Nil(t, items[1].Result)
	assert.Nil(t, items[2].Err)
	assert.Equal(t, "text for c.wav", items[2].Result.Text)
	assert.Equal(t, []string{"a.mp3", "c.wav"}, ft.calls)
	assert.Equal(t, 1, Failed(items))
}

func TestRun_TranscribeFails(t *testing.T) {
	ft := &fakeTranscriber{err: errors.New("olia")}
	r, _ := NewRunner(&fakeValidator{}, ft, 1)

	items := r.Run(context.Background(), []string{"a.mp3", "b.mp3"})

	assert.Equal(t, 2, Failed(items))
	assert.NotNil(t, items[0].Err)
	assert.NotNil(t, items[1].Err)
}

func TestRun_Parallel_KeepsOrder(t *testing.T) {
	ft := &fakeTranscriber{}
	r, _ := NewRunner(&fakeValidator{}, ft, 4)

	var paths []string
	for _, s := range strings.Split("abcdefghij", "") {
		paths = append(paths, s+".mp3")
	}
	items := r.Run(context.Background(), paths)

	assert.Equal(t, len(paths), len(items))
	for i, p := range paths {
		assert.Equal(t, p, items[i].Path)
		assert.Equal(t, "text for "+p, items[i].Result.Text)
	}
}

func TestRun_PassesOptions(t *testing.T) {
	ft := &fakeTranscriber{}
	r, _ := NewRunner(&fakeValidator{}, ft, 1)

	items := r.Run(context.Background(), []string{"a.mp3"},
		transcription.WithFormat("olia"))

	assert.NotNil(t, items[0].Err)
}
