package client

import "github.com/shoplane/catalog-service/internal/core/domain"

// State is a snapshot of the client's authentication state. Subscribers
// receive a copy on every change; mutating it has no effect on the client.
type State struct {
	Token         string
	User          *domain.User
	Authenticated bool
	Loading       bool
	// Err holds the last auth-related error message, cleared on the next
	// attempt.
	Err string
}

// setState replaces the state under lock and notifies subscribers outside of
// it, so a subscriber may call back into the client.
func (c *Client) setState(mutate func(*State)) {
	c.mu.Lock()
	mutate(&c.state)
	snapshot := c.state
	subs := make([]func(State), len(c.subs))
	copy(subs, c.subs)
	c.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot)
	}
}

// State returns a snapshot of the current auth state.
func (c *Client) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Subscribe registers fn to be called with a state snapshot after every
// state change.
func (c *Client) Subscribe(fn func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.subs = append(c.subs, fn)
}
