// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes AIFF files into an audio.Source.
//
// Parsing is done by github.com/go-audio/aiff. Integer samples of 8, 16, 24
// or 32 bits are normalized by the same full-scale divisor the sample
// package uses for the big-endian driver formats, so an AIFF sample and an
// Int16MSB or Int24MSB buffer holding the same bits decode to the same
// float32.
//
//	f, _ := os.Open("loop.aif")
//	src, err := aiff.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// ReadSamples always returns whole frames and reports io.EOF together with
// the last samples of the sound data chunk.
package aiff
