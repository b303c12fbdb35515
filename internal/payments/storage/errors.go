package storage

import "errors"

// ErrPaymentNotFound distinguishes a clean miss from a query failure. The
// reconciler relies on it for the idempotency probe.
var ErrPaymentNotFound = errors.New("payment not found")
