//go:build !linux && !darwin && !dragonfly && !freebsd && !netbsd && !openbsd && !windows

package termcap

func isTerminal(fd uintptr) bool {
	return false
}
