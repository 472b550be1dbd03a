// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	gowav "github.com/go-audio/wav"

	"github.com/ik5/asiobridge/audio"
	"github.com/ik5/asiobridge/sample"
)

const (
	formatPCM        = 1
	formatFloat      = 3
	formatExtensible = 0xFFFE
)

// SampleTypeFor maps a WAV fmt chunk to the little-endian sample type that
// stores it. WAVE_FORMAT_EXTENSIBLE is read as integer PCM, so 32-bit
// extensible data is rejected since it may be float.
func SampleTypeFor(format, bits uint16) (sample.Type, error) {
	switch {
	case format == formatPCM || (format == formatExtensible && bits <= 24):
		switch bits {
		case 16:
			return sample.Int16LSB, nil
		case 24:
			return sample.Int24LSB, nil
		case 32:
			return sample.Int32LSB, nil
		}
	case format == formatFloat:
		switch bits {
		case 32:
			return sample.Float32LSB, nil
		case 64:
			return sample.Float64LSB, nil
		}
	}
	return 0, fmt.Errorf("format %#x, %d bit: %w", format, bits, ErrUnsupportedEncoding)
}

type wavSource struct {
	pcm        io.Reader
	codec      sample.Codec
	sampleRate int
	channels   int
	buf        []byte
	eof        bool
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []float32) (int, error) {
	if s.eof {
		return 0, io.EOF
	}

	frameBytes := s.channels * s.codec.Stride()
	need := len(dst) / s.channels * frameBytes
	if need == 0 {
		return 0, nil
	}
	if cap(s.buf) < need {
		s.buf = make([]byte, need)
	}

	m, err := io.ReadFull(s.pcm, s.buf[:need])
	switch {
	case err == nil:
	case errors.Is(err, io.EOF), errors.Is(err, io.ErrUnexpectedEOF):
		s.eof = true
	default:
		return 0, fmt.Errorf("reading pcm data: %w", err)
	}

	// A trailing partial frame is dropped.
	m -= m % frameBytes
	n := s.codec.DecodeSlice(dst, s.buf[:m])
	if s.eof {
		return n, io.EOF
	}
	return n, nil
}

// Decoder reads RIFF/WAVE streams holding 16, 24 or 32-bit integer PCM or
// 32 and 64-bit IEEE float samples.
type Decoder struct{}

func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading wav: %w", err)
		}
		rs = bytes.NewReader(data)
	}

	dec := gowav.NewDecoder(rs)
	err := dec.FwdToPCM()
	if dec.NumChans == 0 {
		return nil, ErrNotWavFile
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoPCMData, err)
	}
	if dec.PCMChunk == nil {
		return nil, ErrNoPCMData
	}

	typ, err := SampleTypeFor(dec.WavAudioFormat, dec.BitDepth)
	if err != nil {
		return nil, err
	}

	codec, err := sample.NewCodec(typ, sample.DefaultClipCeiling)
	if err != nil {
		return nil, err
	}

	return &wavSource{
		pcm:        dec.PCMChunk,
		codec:      codec,
		sampleRate: int(dec.SampleRate),
		channels:   int(dec.NumChans),
	}, nil
}
