// SPDX-License-Identifier: EPL-2.0

// Package wav decodes RIFF/WAVE files into an audio.Source.
//
// Header and chunk parsing is delegated to github.com/go-audio/wav. Sample
// data is converted with the sample package codec that matches the fmt
// chunk, so the values a WAV file feeds into an output channel are exactly
// what a driver buffer of the same sample type would decode to.
//
// # Supported Encodings
//
//	format 1 (PCM)         16, 24, 32 bit  -> Int16LSB, Int24LSB, Int32LSB
//	format 3 (IEEE float)  32, 64 bit      -> Float32LSB, Float64LSB
//	format 0xFFFE          16, 24 bit      -> read as PCM
//
// Anything else fails with ErrUnsupportedEncoding. Input that is not a RIFF
// container fails with ErrNotWavFile.
//
// # Decoding
//
//	f, _ := os.Open("take.wav")
//	src, err := wav.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// A reader that cannot seek is buffered in memory first.
package wav
