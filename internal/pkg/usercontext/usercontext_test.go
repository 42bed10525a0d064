package usercontext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recorder struct {
	kind    string
	message string
}

func (r *recorder) Success(message string) { r.kind, r.message = "success", message }
func (r *recorder) Error(message string)   { r.kind, r.message = "error", message }

func TestFlashHelpers(t *testing.T) {
	rec := &recorder{}
	uc := UserContext{UserID: 1, IsLoggedIn: true, Flash: rec}

	uc.FlashSuccess("saved")
	assert.Equal(t, "success", rec.kind)
	assert.Equal(t, "saved", rec.message)

	uc.FlashError("broken")
	assert.Equal(t, "error", rec.kind)
	assert.Equal(t, "broken", rec.message)

	// no writer, no panic
	assert.NotPanics(t, func() {
		UserContext{}.FlashSuccess("ignored")
		UserContext{}.FlashError("ignored")
	})
}
