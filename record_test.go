package url

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_URL_IsSpecial(t *testing.T) {
	t.Parallel()

	assert.True(t, (&URL{Scheme: "https"}).IsSpecial())
	assert.False(t, (&URL{Scheme: "mailto"}).IsSpecial())
}

func Test_URL_clone_IsIndependentOfOriginal(t *testing.T) {
	t.Parallel()

	port := 8080
	query := "q"
	fragment := "f"

	original := &URL{
		Scheme:   "http",
		Path:     []string{"a", "b"},
		Port:     &port,
		Query:    &query,
		Fragment: &fragment,
	}

	clone := original.clone()
	clone.Path[0] = "mutated"
	*clone.Port = 9090
	*clone.Query = "mutated"
	*clone.Fragment = "mutated"

	assert.Equal(t, "a", original.Path[0])
	assert.Equal(t, 8080, *original.Port)
	assert.Equal(t, "q", *original.Query)
	assert.Equal(t, "f", *original.Fragment)
}

func Test_URL_clone_NilFieldsStayNil(t *testing.T) {
	t.Parallel()

	original := &URL{Scheme: "http"}

	clone := original.clone()

	assert.Nil(t, clone.Path)
	assert.Nil(t, clone.Port)
	assert.Nil(t, clone.Query)
	assert.Nil(t, clone.Fragment)
}
