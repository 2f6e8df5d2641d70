package transcription

import "github.com/pkg/errors"

// Validation errors are detected locally, before any network call
var (
	// ErrFileMissing - the audio file does not exist
	ErrFileMissing = errors.New("audio file not found")
	// ErrUnsupportedExt - the file extension is not in the allow-list
	ErrUnsupportedExt = errors.New("unsupported file type")
	// ErrTooLarge - the file exceeds the API size limit
	ErrTooLarge = errors.New("audio file exceeds size limit")
	// ErrTooShort - the decoded audio is below the minimum length
	ErrTooShort = errors.New("audio file too short")
)
