// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams into an audio.Source using
// github.com/mewkiz/flac.
//
// Each frame is decoded once and handed out across as many ReadSamples
// calls as needed. Samples are normalized by the frame's bit depth, so a
// 24-bit FLAC sample maps to the same float32 as the equivalent Int24LSB
// driver sample.
package flac
