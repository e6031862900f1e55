package util

import (
	"errors"
	"strings"
	"time"
)

// StampLayout is the timestamp embedded in stored file names.
const StampLayout = "20060102150405"

// SanitizeFileName replaces path separators, drops control characters and rejects "." and "..".
func SanitizeFileName(name string) (string, error) {
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	s = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return -1
		}
		return r
	}, s)
	if s == "" || s == "." || s == ".." {
		return "", errors.New("invalid file name")
	}
	return s, nil
}

// StampedName returns "<prefix><YYYYMMDDHHMMSS>_<sanitized name>".
func StampedName(prefix, name string, at time.Time) (string, error) {
	clean, err := SanitizeFileName(name)
	if err != nil {
		return "", err
	}
	return prefix + at.Format(StampLayout) + "_" + clean, nil
}
