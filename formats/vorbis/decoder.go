// SPDX-License-Identifier: EPL-2.0

package vorbis

import (
	"errors"
	"fmt"
	"io"

	"github.com/jfreymuth/oggvorbis"

	"github.com/ik5/asiobridge/audio"
)

// oggReader is the part of oggvorbis.Reader the source needs.
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

type source struct {
	dec oggReader
	eof bool
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return s.dec.Channels() }
func (s *source) Close() error    { return nil }

// ReadSamples keeps reading until dst holds as many whole frames as fit,
// since the decoder hands out at most one packet per call.
func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	ch := s.dec.Channels()
	want := len(dst) - len(dst)%ch

	var total int
	for total < want {
		n, err := s.dec.Read(dst[total:want])
		total += n
		if errors.Is(err, io.EOF) {
			s.eof = true
			break
		}
		if err != nil {
			return 0, fmt.Errorf("decoding vorbis: %w", err)
		}
		if n == 0 {
			break
		}
	}

	total -= total % ch
	if s.eof {
		return total, io.EOF
	}
	return total, nil
}

// Decoder reads Ogg Vorbis streams through oggvorbis. Samples come out
// already normalized.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("opening ogg vorbis stream: %w", err)
	}
	if dec.Channels() < 1 {
		return nil, ErrNoChannels
	}
	return &source{dec: dec}, nil
}
