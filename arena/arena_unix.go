//go:build unix

package arena

import "golang.org/x/sys/unix"

// mapRegion maps the backing file for a.size bytes. A zero-size region is
// represented by an empty slice; mmap rejects zero lengths.
func (a *Arena) mapRegion() error {
	if a.size == 0 {
		a.data = []byte{}
		return nil
	}
	data, err := unix.Mmap(int(a.f.Fd()), 0, a.size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return err
	}
	a.data = data
	return nil
}

func (a *Arena) unmapRegion() error {
	if len(a.data) == 0 {
		a.data = nil
		return nil
	}
	err := unix.Munmap(a.data)
	a.data = nil
	return err
}

// syncRegion flushes the mapping to disk with a synchronous msync.
func (a *Arena) syncRegion() error {
	if len(a.data) == 0 {
		return nil
	}
	return unix.Msync(a.data, unix.MS_SYNC)
}

func (a *Arena) extendFile(size int) error {
	return unix.Ftruncate(int(a.f.Fd()), int64(size))
}
