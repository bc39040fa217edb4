package checkpoint

import "go.uber.org/zap"

type StoreOptions struct {
	log   *zap.Logger
	codec *Codec
}

type StoreOption func(*StoreOptions)

// WithStoreLogger directs the store's diagnostics to log. By default the
// store logs nowhere.
func WithStoreLogger(log *zap.Logger) StoreOption {
	return func(o *StoreOptions) {
		o.log = log
	}
}

// WithStoreCodec overrides the codec used for states at rest.
func WithStoreCodec(codec Codec) StoreOption {
	return func(o *StoreOptions) {
		o.codec = &codec
	}
}
