// Package session resolves the identity of the acting user. Authentication
// itself is owned by the surrounding application; the core only asks "who is
// asking" through the Provider interface.
package session

import "os"

// Provider reports the username of the current session, if any.
type Provider interface {
	CurrentUsername() (string, bool)
}

// EnvProvider resolves the username from an environment variable.
type EnvProvider struct {
	// Key is the environment variable to read. Defaults to VITALSCOPE_USER.
	Key string
}

func (p *EnvProvider) CurrentUsername() (string, bool) {
	key := p.Key
	if key == "" {
		key = "VITALSCOPE_USER"
	}
	v := os.Getenv(key)
	return v, v != ""
}

// Static always reports a fixed username. Used by tests and by callers that
// already resolved the user upstream.
type Static struct {
	Name string
}

func (p *Static) CurrentUsername() (string, bool) {
	return p.Name, p.Name != ""
}
