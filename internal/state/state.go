// Package state holds the machine's subscription attachment state: the
// one piece of mutable state the pro client owns. It is read once at
// invocation start and written back at most once, at the end of a
// successful mutating action. Mutual exclusion between concurrent
// mutating invocations is the caller's concern (the packaging ships a
// lock around the CLI); this package performs plain load/save.
package state

import (
	"time"
)

// AttachmentState describes the machine's relationship with an Ubuntu Pro
// subscription.
type AttachmentState struct {
	Attached     bool      `yaml:"attached"`
	AccountName  string    `yaml:"account_name,omitempty"`
	MachineToken string    `yaml:"machine_token,omitempty"`
	Entitlements []string  `yaml:"entitlements,omitempty"`
	Enabled      []string  `yaml:"enabled_services,omitempty"`
	ExpiresAt    time.Time `yaml:"expires,omitempty"`
}

// HasEntitlement reports whether the subscription entitles the machine to
// the named service.
func (s AttachmentState) HasEntitlement(name string) bool {
	return contains(s.Entitlements, name)
}

// IsEnabled reports whether the named service is currently enabled.
func (s AttachmentState) IsEnabled(name string) bool {
	return contains(s.Enabled, name)
}

// MarkEnabled records the named service as enabled, preserving the order
// services were enabled in. Enabling twice is a no-op.
func (s *AttachmentState) MarkEnabled(name string) {
	if s.IsEnabled(name) {
		return
	}
	s.Enabled = append(s.Enabled, name)
}

// MarkDisabled removes the named service from the enabled set.
func (s *AttachmentState) MarkDisabled(name string) {
	for i, enabled := range s.Enabled {
		if enabled == name {
			s.Enabled = append(s.Enabled[:i], s.Enabled[i+1:]...)
			return
		}
	}
}

// Clone returns a deep copy. The engine works on a copy so that a partial
// batch failure never leaves a half-mutated state behind.
func (s AttachmentState) Clone() AttachmentState {
	out := s
	out.Entitlements = append([]string(nil), s.Entitlements...)
	out.Enabled = append([]string(nil), s.Enabled...)
	return out
}

func contains(list []string, name string) bool {
	for _, item := range list {
		if item == name {
			return true
		}
	}
	return false
}
