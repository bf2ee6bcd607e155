package msg

var (
	DefaultShuffleSeed int64 = 1234567890
)

type (
	// Option selects the error correction strategy used when converting
	// a message to bits and back.
	Option       func(*codecFactory)
	codecFactory struct {
		f strategy
	}
	strategy interface {
		encode(data []uint64, size int) ([]uint64, int)
		decode(bits []bool) (raw []byte, dropped int)
	}
)

// WithoutECC emits the message bits as-is, with no error correction.
// This is the default and the interoperable wire format.
func WithoutECC() Option {
	return func(cf *codecFactory) {
		cf.f = withoutecc{}
	}
}

// WithGolay encodes the message bits with Golay error correction and a
// deterministic shuffle. Extraction must use the same seed.
func WithGolay(seed int64) Option {
	return func(cf *codecFactory) {
		cf.f = shuffledgolay(seed)
	}
}

func newFactory(opts []Option) codecFactory {
	var cf codecFactory
	for _, opt := range opts {
		opt(&cf)
	}
	if cf.f == nil {
		cf.f = withoutecc{}
	}
	return cf
}
