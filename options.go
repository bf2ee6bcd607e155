package steg

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/steglsb/msg"
)

type Option func(*config) error

type config struct {
	terminator string
	msgOpts    []msg.Option
}

// WithTerminator replaces the default terminator byte sequence.
// Both embedding and extraction must be configured with the same value.
// The terminator must be non-empty ASCII so that its bytes are its code points.
func WithTerminator(t string) Option {
	return func(c *config) error {
		if t == "" {
			return errors.New("terminator must not be empty")
		}
		for _, r := range t {
			if r > 0x7F {
				return fmt.Errorf("terminator character %q is not ASCII", r)
			}
		}
		c.terminator = t
		return nil
	}
}

// WithGolay applies Golay error correction to the message bits before
// embedding. The terminator is appended uncorrected, so the extraction
// scan protocol is unchanged; extraction must use the same seed.
func WithGolay(seed int64) Option {
	return func(c *config) error {
		c.msgOpts = append(c.msgOpts, msg.WithGolay(seed))
		return nil
	}
}

// WithoutECC embeds the message bits as-is. This is the default.
func WithoutECC() Option {
	return func(c *config) error {
		c.msgOpts = append(c.msgOpts, msg.WithoutECC())
		return nil
	}
}
