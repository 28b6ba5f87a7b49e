package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImagePath(t *testing.T) {
	assert.Equal(t, "/static/img/cat.jpg", ImagePath(DefaultBasePath, "cat", DefaultExt))
	assert.Equal(t, "/static/img/not a pet.jpg", ImagePath(DefaultBasePath, "not a pet", DefaultExt))
	assert.Equal(t, "/pics/.png", ImagePath("/pics", "", "png"))
}

func TestValidName(t *testing.T) {
	for _, ok := range []string{"cat", "red-panda", "dog_2"} {
		assert.True(t, ValidName(ok), ok)
	}
	for _, bad := range []string{"", "../cat", "Cat", "cat.jpg", "a/b"} {
		assert.False(t, ValidName(bad), bad)
	}
}
