//go:build !unix

package arena

import "io"

// Without mmap the region lives on the heap and is written back to the
// file on sync.

func (a *Arena) mapRegion() error {
	data := make([]byte, a.size)
	if a.size > 0 {
		if _, err := a.f.ReadAt(data, 0); err != nil && err != io.EOF {
			return err
		}
	}
	a.data = data
	return nil
}

func (a *Arena) unmapRegion() error {
	err := a.syncRegion()
	a.data = nil
	return err
}

func (a *Arena) syncRegion() error {
	if a.data == nil {
		return nil
	}
	if _, err := a.f.WriteAt(a.data, 0); err != nil {
		return err
	}
	return a.f.Sync()
}

func (a *Arena) extendFile(size int) error {
	return a.f.Truncate(int64(size))
}
