// SPDX-License-Identifier: EPL-2.0

// Package mp3 decodes MPEG Layer III streams into an audio.Source using
// github.com/hajimehoshi/go-mp3.
//
// go-mp3 always emits 16-bit little-endian stereo, mono files included, so
// the source reports two channels and converts through the Int16LSB codec.
//
//	f, _ := os.Open("intro.mp3")
//	src, err := mp3.Decoder{}.Decode(f)
//	if err != nil {
//	    return err
//	}
//	// feed two output channels
package mp3
