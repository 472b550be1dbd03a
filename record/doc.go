// SPDX-License-Identifier: EPL-2.0

// Package record captures input channels of an asio.Session to a PCM WAV
// file using github.com/go-audio/wav.
//
//	f, _ := os.Create("capture.wav")
//	rec, err := record.NewRecorder(f, 48000, 24, sess.Inputs())
//	if err != nil {
//	    return err
//	}
//	defer rec.Close()
//
//	// after every sess.BufferSwitch():
//	if err := rec.Drain(sess.BufferSize()); err != nil {
//	    return err
//	}
//
// Samples are read through each channel's codec, so the file holds the
// normalized values quantized to the requested bit depth regardless of the
// driver's native format.
package record
