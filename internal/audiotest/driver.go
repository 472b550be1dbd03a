// SPDX-License-Identifier: EPL-2.0

package audiotest

import "context"

// Switcher is the buffer-switch side of a session.
type Switcher interface {
	BufferSwitch()
}

// Driver simulates a driver thread: it switches buffers on its own
// goroutine, hands each cycle to the consumer and waits for the consumer
// to finish before the next switch. This is the hand-off contract a real
// driver callback must honour. A Driver runs once.
type Driver struct {
	sw    Switcher
	ready chan int
	done  chan struct{}
}

// NewDriver wraps sw.
func NewDriver(sw Switcher) *Driver {
	return &Driver{
		sw:    sw,
		ready: make(chan int),
		done:  make(chan struct{}),
	}
}

// Run drives cycles buffer switches and calls process for each one on the
// calling goroutine. It returns early with ctx.Err() when ctx ends, or with
// the first error from process.
func (d *Driver) Run(ctx context.Context, cycles int, process func(cycle int) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go d.loop(ctx, cycles)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case cycle, ok := <-d.ready:
			if !ok {
				return nil
			}

			if err := process(cycle); err != nil {
				return err
			}

			select {
			case d.done <- struct{}{}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}

func (d *Driver) loop(ctx context.Context, cycles int) {
	defer close(d.ready)

	for cycle := range cycles {
		d.sw.BufferSwitch()

		select {
		case d.ready <- cycle:
		case <-ctx.Done():
			return
		}

		select {
		case <-d.done:
		case <-ctx.Done():
			return
		}
	}
}
