// SPDX-License-Identifier: EPL-2.0

// Package asiobridge moves audio between Go code and the double-buffered
// channels of an ASIO style driver.
//
// A driver exposes every channel as two equally sized halves of raw
// memory in one of the driver sample formats (Int16LSB, Int24MSB,
// Float32LSB, ...). The host fills one half while the driver plays the
// other, and the driver announces each swap through a buffer switch
// callback. The subpackages split that job:
//
//	sample    sample types, their byte layouts and the float32 codec
//	asio      Channel and Session: per-sample access to the active half
//	audio     the Source interface and a decoder registry
//	formats/* WAV, AIFF, FLAC, MP3 and Ogg Vorbis decoders
//	playback  Pump: Source -> output channels, one half per cycle
//	record    Recorder: input channels -> WAV file
//
// # Quick Start
//
// RenderLoopback runs the whole pipeline against a software loopback, which
// is the quickest way to hear what a file sounds like after going through
// a given driver format:
//
//	reg := audio.NewRegistry()
//	reg.Register("wav", wav.Decoder{})
//	src, _ := reg.Open("in.wav")
//	defer src.Close()
//
//	out, _ := os.Create("as-int16.wav")
//	defer out.Close()
//
//	frames, err := asiobridge.RenderLoopback(src, sample.Int16LSB, 512, 24, out)
//
// # Real Drivers
//
// Wrap the buffer pointers a driver hands out with asio.NativeHalf, build a
// Session from them and call Session.BufferSwitch from the driver callback.
// Everything else (Pump, Recorder) runs on the consumer side, after the
// callback signals that a new half is active.
package asiobridge
