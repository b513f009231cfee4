//go:build windows

package store

// syncDir is a no-op on Windows; directories cannot be fsynced there.
func syncDir(string) error { return nil }
