// Package blob is the boundary to the payment-proof object store. The rest
// of the system treats it as an opaque put/get surface keyed by path; paths
// follow the convention {orderID}/{token}{ext} so an out-of-band sweep can
// correlate files back to orders.
package blob

import "context"

type Store interface {
	Put(ctx context.Context, path string, data []byte, contentType string) error
	Get(ctx context.Context, path string) ([]byte, error)
}
