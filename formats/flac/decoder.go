// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"io"

	mflac "github.com/mewkiz/flac"
	"github.com/mewkiz/flac/frame"

	"github.com/ik5/asiobridge/audio"
	"github.com/ik5/asiobridge/sample"
)

// frameParser is the part of flac.Stream the source needs.
type frameParser interface {
	ParseNext() (*frame.Frame, error)
}

type source struct {
	stream     frameParser
	sampleRate int
	channels   int
	cur        *frame.Frame
	scale      float64
	pos        int // next sample index within cur
	eof        bool
}

func newSource(stream frameParser, sampleRate, channels int) *source {
	return &source{
		stream:     stream,
		sampleRate: sampleRate,
		channels:   channels,
	}
}

func (s *source) SampleRate() int { return s.sampleRate }
func (s *source) Channels() int   { return s.channels }

// Close drops the buffered frame. The reader passed to Decode belongs to
// the caller and is left open.
func (s *source) Close() error {
	s.cur = nil
	s.eof = true
	return nil
}

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	frames := len(dst) / s.channels
	written := 0

	for written < frames {
		if s.cur == nil || s.pos >= len(s.cur.Subframes[0].Samples) {
			if err := s.next(); err != nil {
				if errors.Is(err, io.EOF) {
					s.eof = true
					return written * s.channels, io.EOF
				}
				return written * s.channels, err
			}
			continue
		}

		n := min(frames-written, len(s.cur.Subframes[0].Samples)-s.pos)
		for c, sub := range s.cur.Subframes {
			for i := range n {
				dst[(written+i)*s.channels+c] = float32(float64(sub.Samples[s.pos+i]) / s.scale)
			}
		}
		written += n
		s.pos += n
	}

	return written * s.channels, nil
}

func (s *source) next() error {
	f, err := s.stream.ParseNext()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return io.EOF
		}
		return fmt.Errorf("parsing flac frame: %w", err)
	}

	if len(f.Subframes) != s.channels {
		return fmt.Errorf("%d subframes, want %d: %w", len(f.Subframes), s.channels, ErrChannelCount)
	}
	if f.BitsPerSample < 4 || f.BitsPerSample > 32 {
		return fmt.Errorf("%d bit: %w", f.BitsPerSample, ErrBitDepth)
	}

	s.cur = f
	s.pos = 0
	s.scale = sample.FullScale(int(f.BitsPerSample))
	return nil
}

// Decoder reads FLAC streams through mewkiz/flac.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	stream, err := mflac.New(r)
	if err != nil {
		return nil, fmt.Errorf("opening flac stream: %w", err)
	}

	return newSource(stream, int(stream.Info.SampleRate), int(stream.Info.NChannels)), nil
}
