// SPDX-License-Identifier: EPL-2.0

// Package audio defines the player-side stream types that feed a session.
//
// A Source yields interleaved float32 frames in [-1.0, 1.0]; the playback
// package spreads each frame across output channels, one source channel
// per output. Decoders in the formats subpackages build Sources from files.
//
// # Format Registry
//
// The registry picks a decoder by format key or file extension:
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	registry.Register("ogg", vorbis.Decoder{})
//
//	dec, ok := registry.ForPath("take1.WAV")
//
// Keys are case-insensitive and the registry is safe for concurrent use.
//
// # Reading
//
//	buf := make([]float32, 512*src.Channels())
//	for {
//	    n, err := src.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
