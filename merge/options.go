package merge

const defaultBufferSize = 64 * 1024

// options defines all configuration options for the Merger.
type options struct {
	bufferSize int // Size of each stream's read buffer in bytes
}

// Option is a function that configures the Merger options.
type Option func(*options)

// WithBufferSize sets the size of the read buffer allocated for each
// registered stream. Non-positive values fall back to the default.
func WithBufferSize(size int) Option {
	return func(o *options) {
		o.bufferSize = size
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		bufferSize: defaultBufferSize,
	}
}
