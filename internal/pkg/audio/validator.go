package audio

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/airenas/groq-transcriber/internal/pkg/cmdapp"
	"github.com/airenas/groq-transcriber/internal/pkg/transcription"
)

const (
	// MaxFileSize is the API upload limit
	MaxFileSize = 25 * 1024 * 1024
	// MinDuration is the shortest audio the API accepts
	MinDuration = 10 * time.Millisecond
	// MinBilledDuration - shorter audio is billed as this full length
	MinBilledDuration = 10 * time.Second
)

var supportedExt = map[string]bool{".mp3": true, ".mp4": true, ".mpeg": true,
	".mpga": true, ".m4a": true, ".wav": true, ".webm": true}

// SupportedExt tests if the file extension is in the allow-list
func SupportedExt(ext string) bool {
	return supportedExt[strings.ToLower(ext)]
}

type probeFunc func(path string) (*Info, error)

// Validator checks audio files before any network call
type Validator struct {
	probe probeFunc
}

// NewValidator creates Validator instance
func NewValidator() *Validator {
	return &Validator{probe: Probe}
}

// Validate checks existence, extension, size and duration of a file.
// The returned error wraps one of the transcription validation sentinels
func (v *Validator) Validate(path string) (*Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(transcription.ErrFileMissing, path)
		}
		return nil, errors.Wrap(err, "can't access file "+path)
	}
	if st.IsDir() {
		return nil, errors.Wrap(transcription.ErrFileMissing, path+" is a directory")
	}
	ext := strings.ToLower(filepath.Ext(path))
	if !SupportedExt(ext) {
		return nil, errors.Wrapf(transcription.ErrUnsupportedExt, "'%s'", ext)
	}
	if st.Size() > MaxFileSize {
		return nil, errors.Wrapf(transcription.ErrTooLarge, "%.2f MB > 25 MB", float64(st.Size())/(1024*1024))
	}
	info, err := v.probe(path)
	if err != nil {
		return nil, err
	}
	if !info.Decoded {
		cmdapp.Log.Warnf("Can't decode duration of %s, duration check skipped", path)
		return info, nil
	}
	if info.Duration < MinDuration {
		return info, errors.Wrapf(transcription.ErrTooShort, "%.3fs < %.2fs", info.Duration.Seconds(), MinDuration.Seconds())
	}
	if info.Duration < MinBilledDuration {
		cmdapp.Log.Warnf("Audio is shorter than %v, it will be billed as full %v", MinBilledDuration, MinBilledDuration)
	}
	if info.Channels > 1 {
		cmdapp.Log.Warn("Multiple audio tracks detected, only the first track will be transcribed")
	}
	return info, nil
}
