package config

import (
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/airenas/groq-transcriber/internal/pkg/transcription"
)

func createTempFile(t *testing.T) *os.File {
	f, err := os.CreateTemp("", "test.*.yml")
	assert.Nil(t, err)
	return f
}

func load(t *testing.T, data string) (*FileModelMap, *os.File) {
	f := createTempFile(t)
	fmt.Fprint(f, data)
	m, err := newFileModelMap(f.Name())
	assert.Nil(t, err)
	return m, f
}

func Test_Load(t *testing.T) {
	m, f := load(t, "fast: whisper-large-v3-turbo\n")
	defer os.Remove(f.Name())
	assert.NotNil(t, m)
}

func Test_Get(t *testing.T) {
	m, f := load(t, "fast: whisper-large-v3-turbo\n")
	defer os.Remove(f.Name())
	v, err := m.Get("fast")
	assert.Nil(t, err)
	assert.Equal(t, transcription.ModelWhisperLargeV3Turbo, v)
}

func Test_GetFails(t *testing.T) {
	m, f := load(t, "fast: whisper-large-v3-turbo\n")
	defer os.Remove(f.Name())
	v, err := m.Get("olia")
	assert.Equal(t, transcription.Model(""), v)
	assert.Equal(t, ErrModelNotFound, err)
	_, err = m.Get("")
	assert.Equal(t, ErrModelNotFound, err)
}

func Test_GetFails_UnknownModel(t *testing.T) {
	m, f := load(t, "fast: olia\n")
	defer os.Remove(f.Name())
	_, err := m.Get("fast")
	assert.NotNil(t, err)
}

func Test_ReturnDefault(t *testing.T) {
	m, f := load(t, "default: whisper-large-v3\n")
	defer os.Remove(f.Name())
	v, err := m.Get("")
	assert.Nil(t, err)
	assert.Equal(t, transcription.ModelWhisperLargeV3, v)
}

func Test_Reload(t *testing.T) {
	m, f := load(t, "fast: whisper-large-v3-turbo\n")
	defer os.Remove(f.Name())
	_, err := m.Get("en")
	assert.NotNil(t, err)

	fmt.Fprint(f, "en: distil-whisper-large-v3-en\n")
	time.Sleep(time.Millisecond * 20)
	v, err := m.Get("en")
	assert.Nil(t, err)
	assert.Equal(t, transcription.ModelDistilWhisperLargeV3En, v)
}

func Test_ChecksPathOnInit(t *testing.T) {
	_, err := NewFileModelMap("")
	assert.NotNil(t, err)
}
