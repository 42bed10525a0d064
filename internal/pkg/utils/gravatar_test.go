package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetGravatarURL(t *testing.T) {
	// md5("myemailaddress@example.com")
	const hash = "0bc83cb571cd1c50ba6f3e8a78ef1346"

	assert.Equal(t, "https://www.gravatar.com/avatar/"+hash+"?s=80&d=mp", GetGravatarURL("  MyEmailAddress@example.com ", 80))
	assert.Equal(t, "https://www.gravatar.com/avatar/"+hash+"?s=200&d=mp", GetGravatarURL("myemailaddress@example.com", 0))
}
