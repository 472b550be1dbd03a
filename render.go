// SPDX-License-Identifier: EPL-2.0

package asiobridge

import (
	"errors"
	"fmt"
	"io"

	"github.com/ik5/asiobridge/asio"
	"github.com/ik5/asiobridge/audio"
	"github.com/ik5/asiobridge/playback"
	"github.com/ik5/asiobridge/record"
	"github.com/ik5/asiobridge/sample"
)

// RenderLoopback plays src through a loopback session whose channels use
// sample type t and records the matching inputs to w as a bitDepth WAV.
// Each cycle switches halves, fills the outputs and drains the inputs, so
// the file holds exactly what a driver in format t would have been handed.
//
// It returns the number of frames written. The source is not closed.
func RenderLoopback(src audio.Source, t sample.Type, bufferSize, bitDepth int, w io.WriteSeeker, opts ...asio.Option) (int64, error) {
	sess, err := asio.NewLoopbackSession(t, src.Channels(), bufferSize, opts...)
	if err != nil {
		return 0, fmt.Errorf("building loopback session: %w", err)
	}

	pump, err := playback.NewPump(src, sess.Outputs())
	if err != nil {
		return 0, err
	}

	rec, err := record.NewRecorder(w, src.SampleRate(), bitDepth, sess.Inputs())
	if err != nil {
		return 0, err
	}

	for {
		sess.BufferSwitch()

		n, fillErr := pump.Fill()
		if err := rec.Drain(n); err != nil {
			return rec.Frames(), errors.Join(err, rec.Close())
		}

		if errors.Is(fillErr, io.EOF) {
			break
		}
		if fillErr != nil {
			return rec.Frames(), errors.Join(fillErr, rec.Close())
		}
	}

	if err := rec.Close(); err != nil {
		return rec.Frames(), err
	}
	return rec.Frames(), nil
}
