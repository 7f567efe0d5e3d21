// Package api
// Author: momentics <momentics@gmail.com>
//
// Public contracts for the rawbuf memory layer.
// Defines allocator and region abstractions, transfer-endpoint capability
// interfaces, byte-order selection, and the common error taxonomy shared
// by all backends and the buffer engine.
// See region.go, transfer.go, order.go, errors.go for details.
package api
