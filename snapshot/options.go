package snapshot

type options struct {
	compression Compression
}

func defaultOptions() options {
	return options{compression: CompressionNone}
}

// Option configures snapshot writing.
type Option func(*options)

// WithCompression selects the payload codec. The default is
// CompressionNone.
func WithCompression(c Compression) Option {
	return func(o *options) {
		o.compression = c
	}
}
