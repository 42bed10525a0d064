package utils

import (
	"crypto/md5"
	"fmt"
	"strings"
)

// GetGravatarURL returns the avatar URL of an email address, 200px when size is
// not positive. Unknown addresses get the neutral "mystery person" image.
func GetGravatarURL(email string, size int) string {
	if size <= 0 {
		size = 200
	}

	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d&d=mp", hash, size)
}
