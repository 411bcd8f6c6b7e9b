package codec

// DefaultMaxDepth bounds node nesting during decode. Deeper documents fail
// with a MalformedNodeError instead of exhausting the stack.
const DefaultMaxDepth = 512

type options struct {
	maxDepth int
}

// Option configures Decode.
type Option func(*options)

// WithMaxDepth sets the maximum node nesting depth accepted by Decode.
// Values below 1 are ignored.
func WithMaxDepth(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
