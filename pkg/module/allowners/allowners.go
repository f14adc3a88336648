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
	"context"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/allowners/pkg/hook"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

// ModuleName represents allowners module name.
const ModuleName = "allowners"

// AutoModeratorLimit is the highest pre-join occupant count for which a joiner gets promoted.
const AutoModeratorLimit = 3

// AllOwners represents the automatic room owner promotion module.
type AllOwners struct {
	host       string
	specs      *SpecStore
	classifier *Classifier
	tracker    *Tracker
	muc        mucService
	router     globalRouter
	hosts      hosts
	claims     claimsProvider
	hk         *hook.Hooks
	logger     kitlog.Logger

	mu      sync.Mutex
	started bool
	guardOn bool
}

// New returns a new initialized allowners instance.
func New(
	cfg Config,
	mucSvc mucService,
	router globalRouter,
	hosts hosts,
	claims claimsProvider,
	hk *hook.Hooks,
	logger kitlog.Logger,
) *AllOwners {
	specs := NewSpecStore(cfg)
	return &AllOwners{
		host:       mucSvc.Host(),
		specs:      specs,
		classifier: NewClassifier(specs),
		tracker:    NewTracker(),
		muc:        mucSvc,
		router:     router,
		hosts:      hosts,
		claims:     claims,
		hk:         hk,
		logger:     kitlog.With(logger, "module", ModuleName),
	}
}

// Name returns allowners module name.
func (m *AllOwners) Name() string { return ModuleName }

// Start starts allowners module.
func (m *AllOwners) Start(_ context.Context) error {
	m.hk.AddHook(hook.MUCOccupantPreJoin, m.onPreJoin, hook.HighPriority)
	m.hk.AddHook(hook.MUCOccupantJoined, m.onJoined, hook.DefaultPriority)
	m.hk.AddHook(hook.C2SStreamRegistered, m.onStreamRegistered, hook.DefaultPriority)

	m.mu.Lock()
	m.started = true
	m.syncGuard()
	m.mu.Unlock()

	level.Info(m.logger).Log("msg", "started allowners module", "host", m.host)
	return nil
}

// Stop stops allowners module.
func (m *AllOwners) Stop(_ context.Context) error {
	m.hk.RemoveHook(hook.MUCOccupantPreJoin, m.onPreJoin)
	m.hk.RemoveHook(hook.MUCOccupantJoined, m.onJoined)
	m.hk.RemoveHook(hook.C2SStreamRegistered, m.onStreamRegistered)

	m.mu.Lock()
	m.started = false
	m.syncGuard()
	m.mu.Unlock()

	level.Info(m.logger).Log("msg", "stopped allowners module")
	return nil
}

// ApplyConfig replaces the moderation configuration.
// Joins and admin requests in flight keep observing the configuration they started with.
func (m *AllOwners) ApplyConfig(cfg Config) {
	m.specs.Store(cfg)

	m.mu.Lock()
	m.syncGuard()
	m.mu.Unlock()

	level.Info(m.logger).Log("msg", "applied allowners configuration",
		"moderated_subdomains", len(cfg.ModeratedSubdomains),
		"moderated_rooms", len(cfg.ModeratedRooms),
		"disable_owner_revoke", cfg.DisableOwnerRevoke,
	)
}

// Classify returns the moderation class of roomJID under the current configuration.
func (m *AllOwners) Classify(roomJID *jid.JID) Classification {
	return m.classifier.Classify(roomJID)
}

// PendingCount returns the number of promotions waiting for their occupant to join.
func (m *AllOwners) PendingCount() int {
	return m.tracker.Len()
}

// syncGuard registers or removes the revocation guard to match the current configuration.
// m.mu must be held.
func (m *AllOwners) syncGuard() {
	want := m.started && !m.specs.Load().OwnerRevokeDisabled()
	switch {
	case want && !m.guardOn:
		m.hk.AddHook(hook.MUCAdminAffiliationSet, m.onAdminAffiliationSet, hook.HighPriority)
	case !want && m.guardOn:
		m.hk.RemoveHook(hook.MUCAdminAffiliationSet, m.onAdminAffiliationSet)
	}
	m.guardOn = want
}
