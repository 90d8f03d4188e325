package rep

// tryAllocBytes and tryAllocUint32 model an allocator that can fail.
// Go's own allocator does not return errors for ordinary sizes; these
// exist so the failure path is real code (exercised by withAllocator
// in tests) rather than an unreachable branch, and so a caller
// embedding rep in a memory-constrained environment can plug in its
// own allocator that does fail.
type allocator struct {
	allocBytes  func(n int) ([]byte, bool)
	allocUint32 func(n int) ([]uint32, bool)
}

var defaultAllocator = allocator{
	allocBytes: func(n int) ([]byte, bool) {
		return make([]byte, n), true
	},
	allocUint32: func(n int) ([]uint32, bool) {
		return make([]uint32, n), true
	},
}

var currentAllocator = defaultAllocator

func tryAllocBytes(n int) ([]byte, bool) {
	return currentAllocator.allocBytes(n)
}

func tryAllocUint32(n int) ([]uint32, bool) {
	return currentAllocator.allocUint32(n)
}

// withAllocator installs a replacement allocator for the duration of
// fn, restoring the previous one afterward. Used by tests to simulate
// allocation failure for the decoder's degraded two-segment path and
// for newEncoder/newHashTable's out-of-memory returns.
func withAllocator(a allocator, fn func()) {
	prev := currentAllocator
	currentAllocator = a
	defer func() { currentAllocator = prev }()
	fn()
}
