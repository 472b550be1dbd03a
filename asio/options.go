// SPDX-License-Identifier: EPL-2.0

package asio

import "github.com/ik5/asiobridge/sample"

type config struct {
	ceiling float32
	start   Half
}

func defaultConfig() config {
	return config{
		ceiling: sample.DefaultClipCeiling,
		start:   HalfA,
	}
}

// Option configures a Session at construction.
type Option func(*config)

// WithClipCeiling sets the maximum absolute value written by Set on every
// channel of the session that does not set ChannelInfo.ClipCeiling.
// Defaults to 1.0.
func WithClipCeiling(ceiling float32) Option {
	return func(c *config) { c.ceiling = ceiling }
}

// WithStartHalf selects the half that is active before the first
// buffer switch. Defaults to HalfA.
func WithStartHalf(h Half) Option {
	return func(c *config) { c.start = h }
}
