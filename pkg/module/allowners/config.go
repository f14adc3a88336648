// Copyright 2022 The jackal Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package allowners

import (
	"strings"
	"sync/atomic"

	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

// DefaultHealthCheckRoom is the node prefix of conference health-check rooms.
const DefaultHealthCheckRoom = "__jicofo-health-check"

// Config contains allowners module configuration options.
type Config struct {
	// ModeratedSubdomains lists tenants whose rooms require a valid session token for auto-promotion.
	ModeratedSubdomains []string `fig:"moderated_subdomains"`

	// ModeratedRooms lists individual room names requiring a valid session token for auto-promotion.
	ModeratedRooms []string `fig:"moderated_rooms"`

	// DisableOwnerRevoke turns off the affiliation revocation guard.
	DisableOwnerRevoke bool `fig:"disable_owner_revoke"`

	// HealthCheckRooms lists room node prefixes excluded from auto-promotion.
	HealthCheckRooms []string `fig:"health_check_rooms" default:"[__jicofo-health-check]"`
}

// ModerationSpec is an immutable snapshot of the moderation configuration.
type ModerationSpec struct {
	subdomains         map[string]struct{}
	rooms              map[string]struct{}
	healthCheckRooms   []string
	disableOwnerRevoke bool
}

// NewModerationSpec builds a moderation snapshot out of cfg.
func NewModerationSpec(cfg Config) *ModerationSpec {
	spec := &ModerationSpec{
		subdomains:         toSet(cfg.ModeratedSubdomains),
		rooms:              toSet(cfg.ModeratedRooms),
		disableOwnerRevoke: cfg.DisableOwnerRevoke,
	}
	for _, prefix := range cfg.HealthCheckRooms {
		if len(prefix) == 0 {
			continue
		}
		spec.healthCheckRooms = append(spec.healthCheckRooms, strings.ToLower(prefix))
	}
	if len(cfg.HealthCheckRooms) == 0 {
		spec.healthCheckRooms = []string{DefaultHealthCheckRoom}
	}
	return spec
}

// IsSubdomainModerated tells whether subdomain has been configured as moderated.
func (s *ModerationSpec) IsSubdomainModerated(subdomain string) bool {
	_, ok := s.subdomains[subdomain]
	return ok
}

// IsRoomModerated tells whether roomName has been configured as moderated.
func (s *ModerationSpec) IsRoomModerated(roomName string) bool {
	_, ok := s.rooms[roomName]
	return ok
}

// IsHealthCheckRoom tells whether roomJID identifies a health-check room.
func (s *ModerationSpec) IsHealthCheckRoom(roomJID *jid.JID) bool {
	node := roomJID.Node()
	for _, prefix := range s.healthCheckRooms {
		if strings.HasPrefix(node, prefix) {
			return true
		}
	}
	return false
}

// OwnerRevokeDisabled tells whether the revocation guard is turned off.
func (s *ModerationSpec) OwnerRevokeDisabled() bool {
	return s.disableOwnerRevoke
}

// SpecStore holds the current moderation snapshot.
// Readers always observe either the previous or the new snapshot in full.
type SpecStore struct {
	v atomic.Pointer[ModerationSpec]
}

// NewSpecStore returns a store initialized with the snapshot built from cfg.
func NewSpecStore(cfg Config) *SpecStore {
	s := &SpecStore{}
	s.Store(cfg)
	return s
}

// Load returns the current moderation snapshot.
func (s *SpecStore) Load() *ModerationSpec {
	return s.v.Load()
}

// Store replaces the current snapshot with the one built from cfg.
// It returns the replaced snapshot.
func (s *SpecStore) Store(cfg Config) *ModerationSpec {
	return s.v.Swap(NewModerationSpec(cfg))
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if len(item) == 0 {
			continue
		}
		set[strings.ToLower(item)] = struct{}{}
	}
	return set
}
