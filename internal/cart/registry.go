package cart

import "sync"

// Registry maps session ids to carts. Carts live only as long as the
// process; a session's first touch creates an empty cart, logout and
// checkout drop it.
type Registry struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

// NewRegistry returns an empty cart registry.
func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// With runs fn against the session's cart while holding the registry lock,
// creating the cart on first touch. fn must not retain the cart.
func (r *Registry) With(sessionID string, fn func(c *Cart)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[sessionID]
	if !ok {
		c = New()
		r.carts[sessionID] = c
	}
	fn(c)
}

// Rekey moves a cart from one session id to another, so a token refresh
// does not strand the cart under the retired id. No-op when the old id
// has no cart.
func (r *Registry) Rekey(oldID, newID string) {
	if oldID == newID {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.carts[oldID]
	if !ok {
		return
	}
	delete(r.carts, oldID)
	r.carts[newID] = c
}

// Drop removes the session's cart, if any.
func (r *Registry) Drop(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.carts, sessionID)
}
