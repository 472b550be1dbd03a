// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// Waveform yields the value of channel ch at frame f.
type Waveform func(frame, ch int) float32

// MockSource generates interleaved frames from a Waveform.
// It implements audio.Source without importing it.
type MockSource struct {
	sampleRate  int
	channels    int
	totalFrames int
	frame       int
	waveform    Waveform
	err         error
	closed      bool
}

// NewMockSource returns a source of totalFrames frames.
func NewMockSource(sampleRate, channels, totalFrames int, waveform Waveform) *MockSource {
	return &MockSource{
		sampleRate:  sampleRate,
		channels:    channels,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewRampSource produces a per-channel ramp: frame f of channel ch is
// (f % 100) / 100 offset by ch/10, which keeps every value distinct enough
// to spot misplaced samples.
func NewRampSource(sampleRate, channels, totalFrames int) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(f, ch int) float32 {
		return float32(f%100)/100 - float32(ch)/10
	})
}

// NewSineSource produces the same sine wave on every channel.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(f, _ int) float32 {
		t := float64(f) / float64(sampleRate)
		return float32(math.Sin(2 * math.Pi * frequency * t))
	})
}

// NewConstantSource produces value on every channel.
func NewConstantSource(sampleRate, channels, totalFrames int, value float32) *MockSource {
	return NewMockSource(sampleRate, channels, totalFrames, func(int, int) float32 {
		return value
	})
}

// FailAfter makes ReadSamples return err once the frames run out instead
// of io.EOF.
func (m *MockSource) FailAfter(err error) *MockSource {
	m.err = err
	return m
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }
func (m *MockSource) Closed() bool    { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Reset rewinds the source to frame zero.
func (m *MockSource) Reset() {
	m.frame = 0
}

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	end := m.err
	if end == nil {
		end = io.EOF
	}

	if m.frame >= m.totalFrames {
		return 0, end
	}

	frames := min(len(dst)/m.channels, m.totalFrames-m.frame)
	for f := range frames {
		for ch := range m.channels {
			dst[f*m.channels+ch] = m.waveform(m.frame+f, ch)
		}
	}
	m.frame += frames

	if m.frame >= m.totalFrames {
		return frames * m.channels, end
	}
	return frames * m.channels, nil
}
