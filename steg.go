// Package steg hides text messages in the least-significant bits of RGB
// pixel buffers and recovers them. Embedding appends a fixed terminator
// pattern after the message bits; extraction scans channel LSBs until the
// terminator appears. Modifying an LSB changes a channel value by at most
// one step, so the stego image is visually indistinguishable from the cover.
package steg

import (
	"errors"
	"fmt"

	"github.com/yyyoichi/steglsb/internal/bitconv"
	"github.com/yyyoichi/steglsb/internal/lsb"
	"github.com/yyyoichi/steglsb/msg"
	"github.com/yyyoichi/steglsb/pixel"
)

// Terminator marks the end of the embedded payload. It is part of the wire
// format: embedding and extraction must use the same terminator byte
// sequence or they cannot interoperate.
const Terminator = "#####END#####"

var (
	// ErrEncoding reports a message character outside the single-byte range.
	ErrEncoding = msg.ErrEncoding
	// ErrCapacity reports a message too large for the cover image.
	ErrCapacity = errors.New("message does not fit in the image")
)

// CapacityError carries the required and available capacity in bits.
// It unwraps to ErrCapacity.
type CapacityError struct {
	Required  int
	Available int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("message needs %d bits but the image holds %d", e.Required, e.Available)
}

func (e *CapacityError) Unwrap() error { return ErrCapacity }

// Embed hides message in a copy of cover with the specified options.
// This is a convenience function that creates a Steg instance and calls its
// Embed method.
func Embed(cover *pixel.Buffer, message string, opts ...Option) (*pixel.Buffer, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Embed(cover, message)
}

// Extract recovers the message hidden in stego with the specified options.
// This is a convenience function that creates a Steg instance and calls its
// Extract method.
func Extract(stego *pixel.Buffer, opts ...Option) (*Result, error) {
	s, err := New(opts...)
	if err != nil {
		return nil, err
	}
	return s.Extract(stego), nil
}

type Steg struct {
	term    []bool
	msgOpts []msg.Option
}

// New initializes a steganography codec. The terminator and the error
// correction strategy can be optionally specified; the defaults are the
// Terminator constant and no error correction.
func New(opts ...Option) (*Steg, error) {
	s := new(Steg)
	if err := s.init(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Embed hides message in a copy of cover.
//
// Process:
//  1. Converts the message to a bitstream, 8 bits per character.
//  2. Appends the terminator bit pattern.
//  3. Replaces channel LSBs in row-major R, G, B order until the
//     bitstream is exhausted; remaining channels keep the cover values.
//
// The cover buffer is never modified. Embed fails before touching any
// pixel data: with an error wrapping ErrEncoding if the message contains a
// character outside the single-byte range, or with a *CapacityError if the
// message plus terminator exceeds cover.Capacity() bits.
func (s *Steg) Embed(cover *pixel.Buffer, message string) (*pixel.Buffer, error) {
	payload, err := msg.Encode(message, s.msgOpts...)
	if err != nil {
		return nil, err
	}
	bits := make([]bool, 0, len(payload)+len(s.term))
	bits = append(bits, payload...)
	bits = append(bits, s.term...)
	if len(bits) > cover.Capacity() {
		return nil, &CapacityError{Required: len(bits), Available: cover.Capacity()}
	}
	return lsb.Write(cover, bits), nil
}

// Extract recovers the message hidden in stego.
//
// Process:
//  1. Collects channel LSBs in row-major R, G, B order, stopping as soon
//     as the accumulated bits end with the terminator pattern.
//  2. Splits off the terminator.
//  3. Converts the remaining bits back to text.
//
// Extract is total: it always returns a best-effort Result. If the scan
// reaches the end of the image without finding the terminator, everything
// captured is decoded anyway and Result.TerminatorFound is false.
func (s *Steg) Extract(stego *pixel.Buffer) *Result {
	bits, _ := lsb.Read(stego, s.term)
	payload, found := bitconv.Cut(bits, s.term)
	text, dropped := msg.Decode(payload, s.msgOpts...)
	return &Result{
		Text:            text,
		TerminatorFound: found,
		DroppedBits:     dropped,
	}
}

func (s *Steg) init(opts ...Option) error {
	c := config{terminator: Terminator}
	for _, opt := range opts {
		if err := opt(&c); err != nil {
			return err
		}
	}
	s.term = bitconv.BytesToBools([]byte(c.terminator))
	s.msgOpts = c.msgOpts
	return nil
}
