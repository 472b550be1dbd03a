// SPDX-License-Identifier: EPL-2.0

package record

import (
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"

	"github.com/ik5/asiobridge/asio"
	"github.com/ik5/asiobridge/utils"
)

const wavFormatPCM = 1

// Recorder drains the active half of a set of input channels into an
// interleaved PCM WAV stream.
type Recorder struct {
	enc      *wav.Encoder
	inputs   []*asio.Channel
	bitDepth int
	half     []float32
	buf      *goaudio.IntBuffer
	frames   int64
	closed   bool
}

// NewRecorder writes a WAV with one channel per input, in input order.
// bitDepth must be 16, 24 or 32.
func NewRecorder(w io.WriteSeeker, sampleRate, bitDepth int, inputs []*asio.Channel) (*Recorder, error) {
	switch bitDepth {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%d: %w", bitDepth, ErrUnsupportedBitDepth)
	}

	if len(inputs) == 0 {
		return nil, ErrNoInputs
	}

	capacity := inputs[0].Capacity()
	for _, ch := range inputs {
		if !ch.IsInput() {
			return nil, fmt.Errorf("%v: %w", ch, ErrNotInput)
		}
		capacity = max(capacity, ch.Capacity())
	}

	format := &goaudio.Format{
		NumChannels: len(inputs),
		SampleRate:  sampleRate,
	}

	return &Recorder{
		enc:      wav.NewEncoder(w, sampleRate, bitDepth, len(inputs), wavFormatPCM),
		inputs:   inputs,
		bitDepth: bitDepth,
		half:     make([]float32, capacity),
		buf: &goaudio.IntBuffer{
			Format:         format,
			Data:           make([]int, capacity*len(inputs)),
			SourceBitDepth: bitDepth,
		},
	}, nil
}

// Drain appends the first frames samples of every input's active half.
// Call it after a buffer switch, before the next one.
func (r *Recorder) Drain(frames int) error {
	if r.closed {
		return ErrClosed
	}
	if frames == 0 {
		return nil
	}

	channels := len(r.inputs)
	for _, ch := range r.inputs {
		if frames < 0 || frames > ch.Capacity() {
			return fmt.Errorf("%d frames, %v holds %d: %w", frames, ch, ch.Capacity(), ErrFrameCount)
		}
	}

	data := r.buf.Data[:frames*channels]
	for c, ch := range r.inputs {
		ch.ReadHalf(r.half)
		for f := range frames {
			data[f*channels+c] = int(utils.Quantize(float64(r.half[f]), r.bitDepth))
		}
	}

	r.buf.Data = data
	err := r.enc.Write(r.buf)
	r.buf.Data = r.buf.Data[:cap(r.buf.Data)]
	if err != nil {
		return fmt.Errorf("writing %d frames: %w", frames, err)
	}

	r.frames += int64(frames)
	return nil
}

// Frames is the number of frames written so far.
func (r *Recorder) Frames() int64 { return r.frames }

// Close finalizes the WAV header. The underlying writer is not closed.
func (r *Recorder) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true

	if r.frames == 0 {
		// The encoder only emits its header on the first write.
		if err := r.enc.Write(&goaudio.IntBuffer{Format: r.buf.Format, SourceBitDepth: r.bitDepth}); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	if err := r.enc.Close(); err != nil {
		return fmt.Errorf("finalizing wav: %w", err)
	}
	return nil
}
