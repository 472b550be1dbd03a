// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
	"io"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/ik5/asiobridge/audio"
	"github.com/ik5/asiobridge/sample"
)

// go-mp3 always produces interleaved stereo 16-bit little-endian PCM.
const (
	channels = 2
	pcmType  = sample.Int16LSB
)

// mp3Reader is the part of gomp3.Decoder the source needs.
type mp3Reader interface {
	io.Reader
	SampleRate() int
}

type source struct {
	dec   mp3Reader
	codec sample.Codec
	buf   []byte
	eof   bool
}

func newSource(dec mp3Reader) (*source, error) {
	codec, err := sample.NewCodec(pcmType, sample.DefaultClipCeiling)
	if err != nil {
		return nil, err
	}
	return &source{dec: dec, codec: codec}, nil
}

func (s *source) SampleRate() int { return s.dec.SampleRate() }
func (s *source) Channels() int   { return channels }
func (s *source) Close() error    { return nil }

func (s *source) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	frameBytes := channels * s.codec.Stride()
	need := len(dst) / channels * frameBytes
	if need == 0 {
		return 0, nil
	}
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}

	m, err := io.ReadFull(s.dec, s.buf[:need])
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.eof = true
	default:
		return 0, fmt.Errorf("decoding mp3: %w", err)
	}

	m -= m % frameBytes
	n := s.codec.DecodeSlice(dst, s.buf[:m])
	if s.eof {
		return n, io.EOF
	}
	return n, nil
}

// Decoder reads MPEG-1/2 Layer III streams through go-mp3.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("opening mp3 stream: %w", err)
	}
	return newSource(dec)
}
