package session

import "sync"

// RenewalPolicy is the process-wide flag deciding whether an expired session
// may be renewed without an explicit renewal request. It defaults to disallowed.
type RenewalPolicy struct {
	mu      sync.Mutex
	allowed bool
}

// NewRenewalPolicy creates a policy with auto-renew disallowed.
func NewRenewalPolicy() *RenewalPolicy {
	return &RenewalPolicy{}
}

// Allow sets the policy. It persists until changed again.
func (p *RenewalPolicy) Allow(allowed bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.allowed = allowed
}

// Allowed reports whether auto-renew is currently permitted.
func (p *RenewalPolicy) Allowed() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.allowed
}
