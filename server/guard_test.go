package server

import (
	"testing"

	"github.com/blogmux/blogmux/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeOwner(t *testing.T) {
	assert.NoError(t, AuthorizeOwner("u1", "u1"))

	// denial is indistinguishable from a missing resource
	require.ErrorIs(t, AuthorizeOwner("u2", "u1"), store.ErrNotFound)
	require.ErrorIs(t, AuthorizeOwner("", "u1"), store.ErrNotFound)
	require.ErrorIs(t, AuthorizeOwner("", ""), store.ErrNotFound)
}
