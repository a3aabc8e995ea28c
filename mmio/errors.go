package mmio

import "errors"

// ErrIoError is the sentinel every error-consumer-triggered abort wraps:
// malformed banners, unsupported formats/fields/symmetries, truncated
// streams, and out-of-range indices all surface through it.
var ErrIoError = errors.New("mmio: io error")
