//go:build linux

package dyld

import (
	"bytes"
	"debug/elf"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

// OpenImage loads a shared library from an in-memory ELF image. The image
// is written to an anonymous memory-backed file and loaded through
// /proc/self/fd, so nothing ever appears on disk.
func OpenImage(data []byte) (*Library, error) {
	if len(data) == 0 {
		return nil, errors.New("dyld: empty library image")
	}
	if err := validateImage(data); err != nil {
		return nil, err
	}

	fd, err := createImageFD()
	if err != nil {
		return nil, fmt.Errorf("dyld: create anonymous shared object fd: %w", err)
	}
	if err := writeImage(fd, data); err != nil {
		_ = unix.Close(fd)
		return nil, err
	}

	path := fmt.Sprintf("/proc/self/fd/%d", fd)
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		_ = unix.Close(fd)
		return nil, fmt.Errorf("dyld: dlopen(%s): %w", path, err)
	}
	return &Library{handle: handle, path: path, fd: fd}, nil
}

func createImageFD() (int, error) {
	fd, err := unix.MemfdCreate("dyld-image", unix.MFD_CLOEXEC)
	if err == nil {
		return fd, nil
	}

	// Fallback for kernels without memfd_create: create under /dev/shm
	// and unlink immediately. The open fd stays usable through
	// /proc/self/fd/<n>.
	f, tmpErr := os.CreateTemp("/dev/shm", "dyld-image-*")
	if tmpErr != nil {
		return -1, errors.Join(err, tmpErr)
	}
	name := f.Name()
	if rmErr := os.Remove(name); rmErr != nil {
		_ = f.Close()
		return -1, fmt.Errorf("unlink temp shared object %s: %w", name, rmErr)
	}
	dupFD, dupErr := unix.Dup(int(f.Fd()))
	if closeErr := f.Close(); closeErr != nil && dupErr == nil {
		return -1, fmt.Errorf("close temp shared object file %s: %w", name, closeErr)
	}
	if dupErr != nil {
		return -1, fmt.Errorf("dup temp shared object fd: %w", dupErr)
	}
	return dupFD, nil
}

func writeImage(fd int, data []byte) error {
	written := 0
	for written < len(data) {
		n, err := unix.Write(fd, data[written:])
		if err != nil {
			if errors.Is(err, unix.EINTR) {
				continue
			}
			return fmt.Errorf("dyld: write shared object image: %w", err)
		}
		if n <= 0 {
			return fmt.Errorf("dyld: write shared object image: short write (%d/%d)", written, len(data))
		}
		written += n
	}
	return nil
}

func closeImageFD(fd int) {
	_ = unix.Close(fd)
}

func validateImage(data []byte) error {
	f, err := elf.NewFile(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("dyld: invalid ELF image: %w", err)
	}
	defer f.Close()

	machine, err := currentELFMachine()
	if err != nil {
		return err
	}
	if f.Machine != machine {
		return fmt.Errorf("dyld: foreign platform (provided: %s, expected: %s)", f.Machine, machine)
	}
	if f.Type != elf.ET_DYN {
		return fmt.Errorf("dyld: unsupported ELF file type: %s", f.Type)
	}
	return nil
}

func currentELFMachine() (elf.Machine, error) {
	switch runtime.GOARCH {
	case "amd64":
		return elf.EM_X86_64, nil
	case "arm64":
		return elf.EM_AARCH64, nil
	default:
		return 0, fmt.Errorf("dyld: unsupported linux architecture: %s", runtime.GOARCH)
	}
}
