//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package termsize

func winsize(fd int) (rows, cols, xpixel, ypixel uint16, ok bool) {
	return 0, 0, 0, 0, false
}
