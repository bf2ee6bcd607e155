package steg

// Result is the outcome of an extraction. Extraction always yields a
// best-effort text; the flags report whether it can be trusted.
type Result struct {
	// Text is the decoded message.
	Text string
	// TerminatorFound reports whether the terminator pattern was matched.
	// When false the image most likely carries no embedded message, or a
	// truncated one; Text is whatever the full LSB scan decoded to.
	TerminatorFound bool
	// DroppedBits counts trailing bits that did not form a complete byte
	// and were discarded from Text.
	DroppedBits int
}

// Warning reports whether the result is suspect: the terminator was never
// matched or trailing bits were dropped.
func (r *Result) Warning() bool {
	return !r.TerminatorFound || r.DroppedBits > 0
}
