package albums

import "strings"

const defaultContentType = "application/octet-stream"

// ContentTypeForKey resolves the content type from the extension suffix of a
// storage key. The table is closed: unknown or missing extensions are served as
// application/octet-stream. Matching is case sensitive.
func ContentTypeForKey(key string) string {
	idx := strings.LastIndexByte(key, '.')
	if idx < 0 {
		return defaultContentType
	}

	switch key[idx+1:] {
	case "png":
		return "image/png"
	case "jpg", "jpeg":
		return "image/jpeg"
	case "gif":
		return "image/gif"
	case "svg":
		return "image/svg+xml"
	default:
		return defaultContentType
	}
}

// ExtensionFromFilename returns the text after the last dot of filename, or ""
// when there is no dot. Extensions with characters other than ASCII letters and
// digits are dropped so they can never shape the storage key.
func ExtensionFromFilename(filename string) string {
	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return ""
	}

	ext := filename[idx+1:]
	for i := 0; i < len(ext); i++ {
		ch := ext[i]
		isAlnum := (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9')
		if !isAlnum {
			return ""
		}
	}
	return ext
}
