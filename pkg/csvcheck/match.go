package csvcheck

import "strings"

// DefaultExtensions are the suffixes validated when none are configured.
var DefaultExtensions = []string{".csv"}

// NormalizeExtensions lowercases extensions and adds a missing leading dot.
// Empty entries are dropped.
func NormalizeExtensions(exts []string) []string {
	result := make([]string, 0, len(exts))
	for _, ext := range exts {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		result = append(result, ext)
	}
	return result
}

// HasExtension reports whether filePath ends in one of exts, ignoring case.
// exts are expected to be normalized.
func HasExtension(filePath string, exts []string) bool {
	if filePath == "" {
		return false
	}
	lower := strings.ToLower(filePath)
	for _, ext := range exts {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}
