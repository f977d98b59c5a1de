package gcs

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtension(t *testing.T) {
	assert.Equal(t, "png", extension("image/PNG"))
	assert.Equal(t, "gif", extension("image/gif"))
	assert.Equal(t, "webp", extension("image/webp"))
	assert.Equal(t, "jpg", extension("image/jpeg"))
	assert.Equal(t, "jpg", extension("application/octet-stream"))
}

func TestObjectName(t *testing.T) {
	u := &Uploader{now: func() time.Time { return time.Unix(0, 42) }}

	name := u.objectName("medicines", "image/png")
	require.True(t, strings.HasPrefix(name, "medicines/"))
	require.True(t, strings.HasSuffix(name, "_42.png"))

	id := strings.TrimSuffix(strings.TrimPrefix(name, "medicines/"), "_42.png")
	_, err := uuid.Parse(id)
	assert.NoError(t, err)

	assert.NotEqual(t, name, u.objectName("medicines", "image/png"))
}

func TestCloseNil(t *testing.T) {
	var u *Uploader
	assert.NoError(t, u.Close())
}
