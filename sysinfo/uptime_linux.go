//go:build linux

package sysinfo

import "golang.org/x/sys/unix"

// uptimeFallback reads the uptime straight from the kernel when the
// portable host query fails.
func uptimeFallback() (uint64, bool) {
	var info unix.Sysinfo_t
	if err := unix.Sysinfo(&info); err != nil {
		return 0, false
	}
	if info.Uptime < 0 {
		return 0, false
	}
	return uint64(info.Uptime), true
}
