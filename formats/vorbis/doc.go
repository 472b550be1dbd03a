// SPDX-License-Identifier: EPL-2.0

// Package vorbis decodes Ogg Vorbis streams into an audio.Source using
// github.com/jfreymuth/oggvorbis.
//
// Vorbis decodes to float32 natively, so samples pass through unscaled.
// They may exceed [-1, 1] slightly; the output channel codec clamps them
// to its clip ceiling.
package vorbis
