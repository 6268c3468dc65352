package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResourceResolvesRelativeImage(t *testing.T) {
	p := Product{ID: 1, Name: "Mug", Image: "products/123_abc.png"}

	r := p.Resource("http://localhost:8080")
	require.NotNil(t, r.Image)
	assert.Equal(t, "http://localhost:8080/storage/products/123_abc.png", *r.Image)

	// A trailing slash on the app URL must not double up.
	r = p.Resource("http://localhost:8080/")
	assert.Equal(t, "http://localhost:8080/storage/products/123_abc.png", *r.Image)
}

func TestResourcePassesThroughAbsoluteImage(t *testing.T) {
	p := Product{ID: 1, Name: "Mug", Image: "https://picsum.photos/400/300?random=3"}
	r := p.Resource("http://localhost:8080")
	require.NotNil(t, r.Image)
	assert.Equal(t, "https://picsum.photos/400/300?random=3", *r.Image)
}

func TestResourceNullableFields(t *testing.T) {
	p := Product{ID: 1, Name: "Mug"}
	r := p.Resource("http://localhost:8080")
	assert.Nil(t, r.Image)
	assert.Nil(t, r.Description)

	p.Description = "A ceramic mug."
	r = p.Resource("http://localhost:8080")
	require.NotNil(t, r.Description)
	assert.Equal(t, "A ceramic mug.", *r.Description)
}

func TestIsAbsoluteURL(t *testing.T) {
	assert.True(t, IsAbsoluteURL("http://example.com/a.png"))
	assert.True(t, IsAbsoluteURL("https://example.com/a.png"))
	assert.False(t, IsAbsoluteURL("products/a.png"))
	assert.False(t, IsAbsoluteURL(""))
}
