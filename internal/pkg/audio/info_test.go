package audio

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
)

func newWavFile(t *testing.T, seconds, channels int) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(fn)
	assert.Nil(t, err)
	defer f.Close()
	const rate = 8000
	e := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: rate},
		Data:           make([]int, rate*seconds*channels),
		SourceBitDepth: 16,
	}
	assert.Nil(t, e.Write(buf))
	assert.Nil(t, e.Close())
	return fn
}

func TestProbe_Wav(t *testing.T) {
	info, err := Probe(newWavFile(t, 2, 1))
	assert.Nil(t, err)
	assert.True(t, info.Decoded)
	assert.InDelta(t, (2 * time.Second).Seconds(), info.Duration.Seconds(), 0.01)
	assert.Equal(t, 1, info.Channels)
	assert.Equal(t, 8000, info.SampleRate)
	assert.True(t, info.Size > 0)
}

func TestProbe_WavStereo(t *testing.T) {
	info, err := Probe(newWavFile(t, 1, 2))
	assert.Nil(t, err)
	assert.True(t, info.Decoded)
	assert.Equal(t, 2, info.Channels)
}

func TestProbe_BrokenWav(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.wav")
	assert.Nil(t, os.WriteFile(fn, []byte("not a wav"), 0644))
	info, err := Probe(fn)
	assert.Nil(t, err)
	assert.False(t, info.Decoded)
}

func TestProbe_BrokenMP3(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.mp3")
	assert.Nil(t, os.WriteFile(fn, []byte("not an mp3 at all"), 0644))
	info, err := Probe(fn)
	assert.Nil(t, err)
	assert.False(t, info.Decoded)
}

func TestProbe_NoDecoder(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "test.m4a")
	assert.Nil(t, os.WriteFile(fn, []byte("data"), 0644))
	info, err := Probe(fn)
	assert.Nil(t, err)
	assert.False(t, info.Decoded)
	assert.Equal(t, int64(4), info.Size)
}

func TestProbe_NoFile(t *testing.T) {
	_, err := Probe(filepath.Join(t.TempDir(), "no.mp3"))
	assert.NotNil(t, err)
}
