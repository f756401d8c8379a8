// Package session implements the cookie-backed visitor session that holds the
// shopping cart, the authenticated user, and transient flash notices. The
// browser cookie carries only a signed session ID; the payload lives in a
// pluggable Store (in-memory or Redis).
package session

// Data is the serialized session payload.
type Data struct {
	UserID   uint           `json:"user_id,omitempty"`
	Username string         `json:"username,omitempty"`
	Cart     map[string]int `json:"cart,omitempty"`
	Flashes  []string       `json:"flashes,omitempty"`
}

// Session is a per-request view of one visitor's state. Handlers mutate it
// through the methods below; the session middleware persists it after the
// handler returns if anything changed.
type Session struct {
	ID   string
	data Data

	fresh    bool
	modified bool
}

// Fresh reports whether this session was created during the current request.
func (s *Session) Fresh() bool {
	return s.fresh
}

// Modified reports whether the session needs to be written back to the store.
func (s *Session) Modified() bool {
	return s.modified
}

// UserID returns the authenticated user's ID, zero when anonymous.
func (s *Session) UserID() uint {
	return s.data.UserID
}

// Username returns the authenticated user's username, empty when anonymous.
func (s *Session) Username() string {
	return s.data.Username
}

// LoggedIn reports whether a user is bound to this session.
func (s *Session) LoggedIn() bool {
	return s.data.UserID != 0
}

// SetUser binds an authenticated user to the session.
func (s *Session) SetUser(id uint, username string) {
	s.data.UserID = id
	s.data.Username = username
	s.modified = true
}

// Cart returns a copy of the cart mapping (product ID string to quantity).
// Mutations go through SetCart so the session tracks modification.
func (s *Session) Cart() map[string]int {
	cart := make(map[string]int, len(s.data.Cart))
	for id, qty := range s.data.Cart {
		cart[id] = qty
	}
	return cart
}

// SetCart replaces the cart wholesale.
func (s *Session) SetCart(cart map[string]int) {
	s.data.Cart = cart
	s.modified = true
}

// ClearCart empties the cart but keeps the rest of the session intact.
func (s *Session) ClearCart() {
	s.data.Cart = map[string]int{}
	s.modified = true
}

// Flash queues a transient notice for the next rendered page.
func (s *Session) Flash(msg string) {
	s.data.Flashes = append(s.data.Flashes, msg)
	s.modified = true
}

// PopFlashes returns queued notices and clears them.
func (s *Session) PopFlashes() []string {
	if len(s.data.Flashes) == 0 {
		return nil
	}
	flashes := s.data.Flashes
	s.data.Flashes = nil
	s.modified = true
	return flashes
}

// Clear wipes the whole session, cart included. Used on logout.
func (s *Session) Clear() {
	s.data = Data{}
	s.modified = true
}
