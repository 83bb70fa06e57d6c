// Package intern provides canonical display-name strings for go-argparse
// Used by the parser to build "-x" and "--name" option names for errors
package intern

import "sync"

// StringInterner hands out one canonical "--name" string per long option name
type StringInterner struct {
	strings map[string]string
	mutex   sync.RWMutex
}

// NewStringInterner creates a new string interner with optional pre-allocated capacity
func NewStringInterner(capacity int) *StringInterner {
	if capacity <= 0 {
		capacity = 32 // Default capacity
	}
	return &StringInterner{
		strings: make(map[string]string, capacity),
	}
}

// Long returns the canonical "--name" display string for a long option name
func (si *StringInterner) Long(name string) string {
	// Fast path: read lock for common case
	si.mutex.RLock()
	if interned, exists := si.strings[name]; exists {
		si.mutex.RUnlock()
		return interned
	}
	si.mutex.RUnlock()

	si.mutex.Lock()
	defer si.mutex.Unlock()

	// Double-check after acquiring write lock
	if interned, exists := si.strings[name]; exists {
		return interned
	}

	display := "--" + name
	si.strings[name] = display
	return display
}

// Len returns the number of interned names.
func (si *StringInterner) Len() int {
	si.mutex.RLock()
	defer si.mutex.RUnlock()
	return len(si.strings)
}

// Short returns the "-c" display string for a short option character.
// Alphanumerics come from a pre-built table and never allocate.
func Short(c byte) string {
	switch {
	case c >= 'a' && c <= 'z':
		return shortNames[c-'a']
	case c >= 'A' && c <= 'Z':
		return shortNames[26+c-'A']
	case c >= '0' && c <= '9':
		return shortNames[52+c-'0']
	}
	// Unknown short options may carry any byte (rare case)
	return "-" + string([]byte{c})
}

// Pre-allocated short option names
// a-z (0-25), A-Z (26-51), 0-9 (52-61)
var shortNames = [62]string{
	"-a", "-b", "-c", "-d", "-e", "-f", "-g", "-h", "-i", "-j", "-k", "-l", "-m",
	"-n", "-o", "-p", "-q", "-r", "-s", "-t", "-u", "-v", "-w", "-x", "-y", "-z",
	"-A", "-B", "-C", "-D", "-E", "-F", "-G", "-H", "-I", "-J", "-K", "-L", "-M",
	"-N", "-O", "-P", "-Q", "-R", "-S", "-T", "-U", "-V", "-W", "-X", "-Y", "-Z",
	"-0", "-1", "-2", "-3", "-4", "-5", "-6", "-7", "-8", "-9",
}

// globalInterner is the process-wide interner behind Long.
var globalInterner = NewStringInterner(64)

// Long interns a long option display name using the global interner
func Long(name string) string {
	return globalInterner.Long(name)
}
