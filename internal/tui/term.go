package tui

import (
	"fmt"
	"os"
	"syscall"
	"unsafe"
)

// Size reports the terminal size in cells, falling back to 80x24.
func Size() (int, int) {
	w, h := 80, 24
	if tw, th, err := termSize(); err == nil && tw > 0 && th > 0 {
		w, h = tw, th
	}
	return w, h
}

func termSize() (int, int, error) {
	fd := int(os.Stdout.Fd())
	type winsize struct {
		Row, Col, Xpixel, Ypixel uint16
	}
	ws := &winsize{}
	_, _, errno := syscall.Syscall(syscall.SYS_IOCTL,
		uintptr(fd), uintptr(syscall.TIOCGWINSZ), uintptr(unsafe.Pointer(ws)))
	if errno != 0 {
		return 0, 0, fmt.Errorf("ioctl: %v", errno)
	}
	return int(ws.Col), int(ws.Row), nil
}
