package transcription

import "github.com/pkg/errors"

// Request holds all parameters of one transcription call.
// It is immutable after NewRequest returns
type Request struct {
	file     string
	model    Model
	format   Format
	language string
}

// Option configures a Request
type Option func(*Request)

// WithModel sets the model for the request
func WithModel(m Model) Option {
	return func(r *Request) {
		r.model = m
	}
}

// WithFormat sets the response format for the request
func WithFormat(f Format) Option {
	return func(r *Request) {
		r.format = f
	}
}

// WithLanguage sets the optional language hint for the request
func WithLanguage(lang string) Option {
	return func(r *Request) {
		r.language = lang
	}
}

// NewRequest builds a validated transcription request for a file
func NewRequest(file string, options ...Option) (*Request, error) {
	if file == "" {
		return nil, errors.New("no file provided")
	}
	res := &Request{file: file, format: DefaultFormat}
	for _, o := range options {
		o(res)
	}
	if res.format != "" {
		if _, err := ParseFormat(string(res.format)); err != nil {
			return nil, err
		}
	}
	if res.model != "" {
		if _, err := ParseModel(string(res.model)); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// File returns the audio file path
func (r *Request) File() string {
	return r.file
}

// Model returns the selected model, may be empty for the client default
func (r *Request) Model() Model {
	return r.model
}

// Format returns the selected response format
func (r *Request) Format() Format {
	return r.format
}

// Language returns the optional language hint
func (r *Request) Language() string {
	return r.language
}
