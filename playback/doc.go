// SPDX-License-Identifier: EPL-2.0

// Package playback feeds a decoded audio.Source into the output channels
// of an asio.Session, one buffer half per cycle.
//
//	pump, err := playback.NewPump(src, sess.Outputs())
//	if err != nil {
//	    return err
//	}
//
//	// after every sess.BufferSwitch():
//	if _, err := pump.Fill(); err == io.EOF {
//	    // source drained; the half was padded with silence
//	}
//
// The source must have exactly one channel per output. Mixing, routing and
// sample-rate conversion are out of scope: the source is expected to be
// in the session's rate and layout already.
package playback
