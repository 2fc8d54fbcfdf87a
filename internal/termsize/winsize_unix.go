//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package termsize

import "golang.org/x/sys/unix"

func winsize(fd int) (rows, cols, xpixel, ypixel uint16, ok bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, 0, 0, false
	}

	return ws.Row, ws.Col, ws.Xpixel, ws.Ypixel, true
}
