// SPDX-License-Identifier: EPL-2.0

package playback

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/asiobridge/asio"
	"github.com/ik5/asiobridge/audio"
)

// Pump copies one buffer half per cycle from a Source into output channels.
// Source channel c always lands on outputs[c]; there is no remapping.
type Pump struct {
	src     audio.Source
	outputs []*asio.Channel
	frames  int
	buf     []float32
	pending int // samples read from src but not yet written
	offset  int
	eof     bool
	err     error
	played  int64
}

// NewPump checks that src has one channel per output and that the outputs
// share a buffer size.
func NewPump(src audio.Source, outputs []*asio.Channel) (*Pump, error) {
	if len(outputs) == 0 || src.Channels() != len(outputs) {
		return nil, fmt.Errorf("%d source channels, %d outputs: %w", src.Channels(), len(outputs), ErrChannelMismatch)
	}

	frames := outputs[0].Capacity()
	for _, ch := range outputs {
		if ch.IsInput() {
			return nil, fmt.Errorf("%v: %w", ch, ErrNotOutput)
		}
		if ch.Capacity() != frames {
			return nil, fmt.Errorf("%v has %d, want %d: %w", ch, ch.Capacity(), frames, ErrCapacityMismatch)
		}
	}

	return &Pump{
		src:     src,
		outputs: outputs,
		frames:  frames,
		buf:     make([]float32, frames*len(outputs)),
	}, nil
}

// Fill writes one full half into every output's active half and returns
// how many frames came from the source. The remainder is silence. Once the
// source is drained Fill returns io.EOF; a source error is returned once
// the frames read before it have been written, and on every later call.
//
// Fill reads from the source and so may block on I/O; call it from the
// consumer side of the hand-off, not from the driver callback.
func (p *Pump) Fill() (int, error) {
	channels := len(p.outputs)
	written := 0

	for written < p.frames {
		if p.pending == 0 {
			if p.eof {
				break
			}
			p.read()
			continue
		}

		n := min(p.pending/channels, p.frames-written)
		for f := range n {
			base := p.offset + f*channels
			for c, ch := range p.outputs {
				ch.Set(written+f, p.buf[base+c])
			}
		}

		written += n
		p.offset += n * channels
		p.pending -= n * channels
	}

	p.silence(written)
	p.played += int64(written)

	if !p.eof || p.pending > 0 {
		return written, nil
	}
	if p.err != nil {
		return written, p.err
	}
	return written, io.EOF
}

// Played is the number of source frames written so far.
func (p *Pump) Played() int64 { return p.played }

func (p *Pump) read() {
	n, err := p.src.ReadSamples(p.buf)
	n -= n % len(p.outputs)

	p.offset = 0
	p.pending = n

	switch {
	case errors.Is(err, io.EOF):
		p.eof = true
	case err != nil:
		p.eof = true
		p.err = fmt.Errorf("reading source: %w", err)
	case n == 0:
		// Nothing and no error: treat as drained rather than spin.
		p.eof = true
	}
}

func (p *Pump) silence(from int) {
	for _, ch := range p.outputs {
		for i := from; i < p.frames; i++ {
			ch.Set(i, 0)
		}
	}
}
