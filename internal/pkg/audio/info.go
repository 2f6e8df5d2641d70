package audio

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/pkg/errors"
	"github.com/tcolgate/mp3"

	"github.com/airenas/groq-transcriber/internal/pkg/cmdapp"
)

// Info keeps locally decoded audio file details
type Info struct {
	Size       int64
	Duration   time.Duration
	Channels   int
	SampleRate int
	// Decoded indicates the duration and channel info could be read locally
	Decoded bool
}

// Probe reads audio details from a local file.
// WAV and MP3/MPGA containers are decoded, other supported
// containers return size info only with Decoded = false
func Probe(path string) (*Info, error) {
	st, err := os.Stat(path)
	if err != nil {
		return nil, errors.Wrap(err, "can't stat file "+path)
	}
	res := &Info{Size: st.Size(), Channels: 1}
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".wav":
		err = probeWav(path, res)
	case ".mp3", ".mpga":
		err = probeMP3(path, res)
	default:
		cmdapp.Log.Debugf("No local decoder for '%s', duration check skipped", ext)
		return res, nil
	}
	if err != nil {
		cmdapp.Log.Warnf("Can't decode %s: %v", path, err)
	}
	return res, nil
}

func probeWav(path string, res *Info) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "can't open file "+path)
	}
	defer f.Close()
	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return errors.New("not a valid wav file")
	}
	d, err := dec.Duration()
	if err != nil {
		return errors.Wrap(err, "can't read wav duration")
	}
	res.Duration = d
	res.Channels = int(dec.NumChans)
	res.SampleRate = int(dec.SampleRate)
	res.Decoded = true
	return nil
}

func probeMP3(path string, res *Info) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "can't open file "+path)
	}
	defer f.Close()
	dec := mp3.NewDecoder(f)
	var (
		frame   mp3.Frame
		skipped int
		dur     time.Duration
		frames  int
	)
	for {
		err = dec.Decode(&frame, &skipped)
		if err == io.EOF {
			break
		}
		if err != nil {
			if frames == 0 {
				return errors.Wrap(err, "can't read mp3 frames")
			}
			break
		}
		dur += frame.Duration()
		if frames == 0 && frame.Header().ChannelMode() != mp3.SingleChannel {
			res.Channels = 2
		}
		frames++
	}
	if frames == 0 {
		return errors.New("no mp3 frames found")
	}
	res.Duration = dur
	res.Decoded = true
	return nil
}
