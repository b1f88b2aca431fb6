//go:build !linux

package sysinfo

// uptimeFallback has no portable implementation off Linux; the caller
// keeps the zero value it already holds.
func uptimeFallback() (uint64, bool) {
	return 0, false
}
