package pool

import "sync"

// Slice pools for efficient reuse of typed slices.
// These pools hold the per-message scratch lists the decoder accumulates
// variables into before interpolation.
var (
	int64SlicePool = sync.Pool{
		New: func() any { return &[]int64{} },
	}
	int32SlicePool = sync.Pool{
		New: func() any { return &[]int32{} },
	}
	stringSlicePool = sync.Pool{
		New: func() any { return &[]string{} },
	}
)

// GetInt64Slice retrieves an empty int64 slice from the pool.
//
// The returned slice has length zero; the caller appends to it. The caller
// must call the returned cleanup function (typically with defer) to return
// the slice's backing array to the pool.
//
// Example:
//
//	vars, cleanup := pool.GetInt64Slice()
//	defer cleanup()
//	vars = append(vars, word)
func GetInt64Slice() ([]int64, func()) {
	ptr, _ := int64SlicePool.Get().(*[]int64)
	return (*ptr)[:0], func() { int64SlicePool.Put(ptr) }
}

// GetInt32Slice retrieves an empty int32 slice from the pool.
//
// The returned slice has length zero; the caller appends to it. The caller
// must call the returned cleanup function (typically with defer) to return
// the slice's backing array to the pool.
func GetInt32Slice() ([]int32, func()) {
	ptr, _ := int32SlicePool.Get().(*[]int32)
	return (*ptr)[:0], func() { int32SlicePool.Put(ptr) }
}

// GetStringSlice retrieves an empty string slice from the pool.
//
// The returned slice has length zero; the caller appends to it. The caller
// must call the returned cleanup function (typically with defer) to return
// the slice's backing array to the pool.
func GetStringSlice() ([]string, func()) {
	ptr, _ := stringSlicePool.Get().(*[]string)
	return (*ptr)[:0], func() { stringSlicePool.Put(ptr) }
}
