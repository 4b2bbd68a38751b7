package server

import "github.com/blogmux/blogmux/store"

// AuthorizeOwner decides whether callerID may act on a resource owned by
// ownerID. Pure, no side effects. Denial surfaces as the not-found sentinel
// so that a denied caller cannot distinguish a foreign resource from a
// missing one; every mutating route and every owner-only read must call this
// before touching the resource.
func AuthorizeOwner(callerID, ownerID string) error {
	if callerID == "" || callerID != ownerID {
		return store.ErrNotFound
	}
	return nil
}
