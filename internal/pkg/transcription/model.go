package transcription

import (
	"strings"

	"github.com/pkg/errors"
)

// Model identifies a Groq hosted Whisper variant
type Model string

const (
	// ModelWhisperLargeV3 is the multilingual whisper-large-v3 model
	ModelWhisperLargeV3 Model = "whisper-large-v3"
	// ModelWhisperLargeV3Turbo is the faster pruned whisper-large-v3 variant
	ModelWhisperLargeV3Turbo Model = "whisper-large-v3-turbo"
	// ModelDistilWhisperLargeV3En is the distilled English-only variant
	ModelDistilWhisperLargeV3En Model = "distil-whisper-large-v3-en"
)

// DefaultModel is used when no model is selected
const DefaultModel = ModelWhisperLargeV3

// Models returns all supported model identifiers
func Models() []Model {
	return []Model{ModelWhisperLargeV3, ModelWhisperLargeV3Turbo, ModelDistilWhisperLargeV3En}
}

// ParseModel resolves a string to a supported model
func ParseModel(s string) (Model, error) {
	for _, m := range Models() {
		if string(m) == s {
			return m, nil
		}
	}
	return "", errors.Errorf("unsupported model '%s', supported: %s", s, modelsString())
}

func modelsString() string {
	var sb []string
	for _, m := range Models() {
		sb = append(sb, string(m))
	}
	return strings.Join(sb, ", ")
}

// Format selects the response shape of a transcription
type Format string

const (
	// FormatJSON returns the transcript as a basic JSON object
	FormatJSON Format = "json"
	// FormatVerboseJSON returns the transcript with segments and language
	FormatVerboseJSON Format = "verbose_json"
	// FormatText returns the plain transcript only
	FormatText Format = "text"
)

// DefaultFormat is used when no response format is selected
const DefaultFormat = FormatJSON

// Formats returns all supported response formats
func Formats() []Format {
	return []Format{FormatJSON, FormatVerboseJSON, FormatText}
}

// ParseFormat resolves a string to a supported response format
func ParseFormat(s string) (Format, error) {
	for _, f := range Formats() {
		if string(f) == strings.ToLower(s) {
			return f, nil
		}
	}
	return "", errors.Errorf("unsupported response format '%s', supported: json, verbose_json, text", s)
}
