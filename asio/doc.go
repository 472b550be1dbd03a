// SPDX-License-Identifier: EPL-2.0

// Package asio presents the double-buffered channels of an ASIO-style
// driver as float32 samples.
//
// A driver creates two buffer halves per channel and alternates between
// them: while the hardware plays or records one half, the application fills
// or drains the other. Each Channel keeps non-owning references to both
// halves and an active-half flag, and converts every access through a
// sample.Codec.
//
// # Building a Session
//
// Channels are only built through NewSession, from the channel list the
// driver reports after creating its buffers:
//
//	sess, err := asio.NewSession(bufferSize, []asio.ChannelInfo{
//	    {Name: "Out 1", SampleType: sample.Int32LSB, Buffers: [2][]byte{
//	        asio.NativeHalf(info.Buffers[0], bufferSize*4),
//	        asio.NativeHalf(info.Buffers[1], bufferSize*4),
//	    }},
//	}, asio.WithClipCeiling(0.98))
//
// Unknown sample types, nil or short halves and a non-positive buffer size
// fail construction.
//
// # Buffer Switch
//
// The driver callback calls Session.BufferSwitch once per cycle, then the
// consumer processes the now-active half:
//
//	sess.BufferSwitch()
//	out := sess.Outputs()[0]
//	for i := range sess.BufferSize() {
//	    out.Set(i, next())
//	}
//
// After N switches every channel addresses its starting half when N is
// even and the other half when N is odd.
//
// # Concurrency
//
// Nothing in this package blocks or locks. The active-half flag is atomic
// so a switch on the driver goroutine is visible to the consumer, but the
// caller must still ensure BufferSwitch never runs while Get, Set,
// ReadHalf or WriteHalf are in flight, typically by switching only after
// the consumer signals it has finished the previous half.
//
// # Errors
//
// An index outside [0, Capacity()) panics with an error wrapping
// ErrIndexOutOfRange: it is a caller bug and continuing would touch
// unrelated memory. Values beyond the clip ceiling are clamped, never
// rejected.
package asio
