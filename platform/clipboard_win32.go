package platform

import (
	"encoding/binary"
	"errors"
	"fmt"
	"runtime"

	"github.com/crafted-tech/ztdesktop/internal/logging"
)

// win32API is the part of the Win32 clipboard and global memory API the
// Windows backend calls. lock returns a view of the global memory that is
// valid until unlock.
type win32API struct {
	open     func() error
	close    func()
	empty    func() error
	getData  func(format uint32) uintptr
	setData  func(format uint32, h uintptr) error
	register func(name string) (uint32, error)
	alloc    func(size int) (uintptr, error)
	free     func(h uintptr)
	lock     func(h uintptr) ([]byte, error)
	unlock   func(h uintptr)
}

type win32Clipboard struct {
	api win32API
}

// withClipboard holds the global clipboard lock for the duration of fn.
// The clipboard belongs to the thread that opened it, so the goroutine is
// pinned until it is closed again.
func (c *win32Clipboard) withClipboard(fn func() error) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := c.api.open(); err != nil {
		return fmt.Errorf("%w: OpenClipboard: %v", ErrClipboardUnavailable, err)
	}
	defer c.api.close()

	return fn()
}

func (c *win32Clipboard) WriteText(text string) error {
	return c.PutFormats([]Format{TextFormat(text)})
}

func (c *win32Clipboard) ReadText() (string, error) {
	var text string
	err := c.withClipboard(func() error {
		h := c.api.getData(cfUnicodeText)
		if h == 0 {
			return ErrNoText
		}

		mem, err := c.api.lock(h)
		if err != nil {
			return err
		}
		defer c.api.unlock(h)

		units := make([]uint16, len(mem)/2)
		for i := range units {
			units[i] = binary.LittleEndian.Uint16(mem[i*2:])
		}

		s, ok := decodeUTF16Z(units)
		if !ok {
			return ErrInvalidText
		}
		text = s
		return nil
	})
	return text, err
}

func (c *win32Clipboard) PutFormats(formats []Format) error {
	return c.withClipboard(func() error {
		if err := c.api.empty(); err != nil {
			return fmt.Errorf("%w: EmptyClipboard: %v", ErrClipboardUnavailable, err)
		}

		var errs []error
		for _, f := range formats {
			if err := c.setFormat(f); err != nil {
				logging.Warn().Str("format", f.Identifier).Err(err).Msg("skipping clipboard format")
				errs = append(errs, &FormatError{Identifier: f.Identifier, Err: err})
			}
		}
		return errors.Join(errs...)
	})
}

func (c *win32Clipboard) setFormat(f Format) error {
	id, err := resolveFormatID(f.Identifier, c.api.register)
	if err != nil {
		return err
	}

	h, err := c.makeHandle(f)
	if err != nil {
		return err
	}

	// The clipboard owns the memory once SetClipboardData succeeds.
	if err := c.api.setData(id, h); err != nil {
		c.api.free(h)
		return err
	}
	return nil
}

// makeHandle copies the payload into movable global memory. Text is stored
// as NUL-terminated UTF-16, everything else byte for byte.
func (c *win32Clipboard) makeHandle(f Format) (uintptr, error) {
	src := f.Data
	if f.IsText() {
		src = utf16Bytes(encodeUTF16Z(string(f.Data)))
	}

	h, err := c.api.alloc(max(len(src), 1))
	if err != nil {
		return 0, err
	}

	mem, err := c.api.lock(h)
	if err != nil {
		c.api.free(h)
		return 0, err
	}
	copy(mem, src)
	c.api.unlock(h)

	return h, nil
}
