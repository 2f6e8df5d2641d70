package transcription

// Segment is one timestamped piece of the transcript
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// Result is a normalized transcription response
type Result struct {
	Text     string    `json:"text"`
	Segments []Segment `json:"segments,omitempty"`
	Language string    `json:"language,omitempty"`
	Duration float64   `json:"duration,omitempty"`
}

// UnknownLanguage is returned when a response carries no language field
const UnknownLanguage = "unknown"

// DetectLanguage returns the language declared in the response
func DetectLanguage(r *Result) string {
	if r == nil || r.Language == "" {
		return UnknownLanguage
	}
	return r.Language
}
