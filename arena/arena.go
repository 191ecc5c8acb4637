// Package arena provides a file-backed growable byte region.
//
// An Arena maps a file read-write (via mmap on unix, a heap copy
// elsewhere) and can extend it in place. It is the failable allocator of
// this module: the OS can refuse to extend the backing file, which the
// Allocator adapter reports as exhaustion for alloc.Guard to act on.
//
// Arenas are not safe for concurrent use.
package arena

import (
	"fmt"
	"os"

	"github.com/joshuapare/memkit/alloc"
	"github.com/joshuapare/memkit/checked"
)

// Arena is a file-backed byte region.
type Arena struct {
	f      *os.File
	data   []byte
	size   int
	closed bool
}

// Create creates (or truncates) the file at path with the given size and
// maps it.
func Create(path string, size int) (*Arena, error) {
	if size < 0 {
		return nil, fmt.Errorf("arena: negative size %d", size)
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, err
	}
	a := &Arena{f: f}
	if err := a.extendFile(size); err != nil {
		f.Close()
		return nil, err
	}
	a.size = size
	if err := a.mapRegion(); err != nil {
		f.Close()
		return nil, err
	}
	return a, nil
}

// Open maps the existing file at path read-write.
func Open(path string) (*Arena, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if info.Size() > int64(^uint(0)>>1) {
		f.Close()
		return nil, fmt.Errorf("arena: file too large to map (%d bytes)", info.Size())
	}
	a := &Arena{f: f, size: int(info.Size())}
	if err := a.mapRegion(); err != nil {
		f.Close()
		return nil, err
	}
	return a, nil
}

// Bytes returns the mapped region. The slice is invalidated by Grow and
// Close; callers re-fetch it after either.
func (a *Arena) Bytes() []byte { return a.data }

// Size returns the current region size in bytes.
func (a *Arena) Size() int { return a.size }

// Grow extends the region by delta bytes. The mapping address may change;
// existing contents are preserved.
func (a *Arena) Grow(delta int) error {
	if a.closed {
		return fmt.Errorf("arena: grow after close")
	}
	if delta < 0 {
		return fmt.Errorf("arena: negative grow delta %d", delta)
	}
	if delta == 0 {
		return nil
	}
	newSize, ok := checked.Add(a.size, delta)
	if !ok {
		return fmt.Errorf("arena: size overflow: %d + %d", a.size, delta)
	}
	if err := a.unmapRegion(); err != nil {
		return err
	}
	if err := a.extendFile(newSize); err != nil {
		return err
	}
	a.size = newSize
	return a.mapRegion()
}

// Close flushes and unmaps the region and closes the backing file.
func (a *Arena) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	flushErr := a.syncRegion()
	unmapErr := a.unmapRegion()
	closeErr := a.f.Close()
	a.data = nil
	if flushErr != nil {
		return flushErr
	}
	if unmapErr != nil {
		return unmapErr
	}
	return closeErr
}

// Allocator returns an alloc.Allocator view of the arena. It is a
// single-region allocator: every Allocate or Reallocate returns the
// arena's one region, extended to at least the requested size. Blocks
// handed out earlier are invalidated by the next call. A nil return means
// the OS refused to extend the backing file.
func (a *Arena) Allocator() alloc.Allocator {
	return &regionAllocator{a: a}
}

type regionAllocator struct {
	a *Arena
}

func (r *regionAllocator) Allocate(size int) []byte {
	if r.a.closed {
		return nil
	}
	if size > r.a.size {
		if err := r.a.Grow(size - r.a.size); err != nil {
			return nil
		}
	}
	return r.a.data[:size]
}

func (r *regionAllocator) Reallocate(size int, b []byte) []byte {
	// Same region, so contents survive the grow in place.
	return r.Allocate(size)
}

func (r *regionAllocator) Free(b []byte) {}

var _ alloc.Allocator = (*regionAllocator)(nil)
