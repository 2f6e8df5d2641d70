package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/airenas/groq-transcriber/internal/pkg/cmdapp"
	"github.com/airenas/groq-transcriber/internal/pkg/transcription"
)

// ErrModelNotFound indicates the alias maps to no known model
var ErrModelNotFound = errors.New("model not found")

// FileModelMap resolves model aliases from a yml file
type FileModelMap struct {
	Path string
	v    *viper.Viper
}

// NewFileModelMap creates FileModelMap instance
func NewFileModelMap(path string) (*FileModelMap, error) {
	cmdapp.Log.Infof("Init Model Map from: %s", path)
	if path == "" {
		return nil, errors.New("no path provided")
	}
	file := filepath.Join(path, "models.map.yml")
	return newFileModelMap(file)
}

func newFileModelMap(file string) (*FileModelMap, error) {
	if file == "" {
		return nil, errors.New("no model map file provided")
	}
	f := FileModelMap{Path: file}
	f.v = viper.New()
	f.v.SetConfigFile(file)
	f.v.SetConfigType("yml")
	err := f.v.ReadInConfig()
	if err != nil {
		return nil, errors.Wrap(err, "can't read models map file: "+file)
	}

	f.v.WatchConfig()
	f.v.OnConfigChange(func(e fsnotify.Event) {
		cmdapp.Log.Infof("Model map reloaded from: %s", file)
	})
	return &f, nil
}

// Get returns the model for an alias, or the default one for an empty alias
func (fm *FileModelMap) Get(name string) (transcription.Model, error) {
	var id string
	if name == "" {
		id = fm.v.GetString("default")
	} else {
		id = fm.v.GetString(name)
	}
	if id == "" {
		return "", ErrModelNotFound
	}
	return transcription.ParseModel(id)
}
