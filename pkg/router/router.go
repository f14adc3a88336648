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

package router

import (
	"context"
	"sync"

	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

// Router defines global router interface.
type Router interface {
	// Route routes a stanza applying server rules for handling XML stanzas.
	// (https://xmpp.org/rfcs/rfc3921.html#rules)
	Route(ctx context.Context, stanza stravaganza.Stanza) (targets []jid.JID, err error)
}

// C2SRouter defines local C2S router interface.
type C2SRouter interface {
	Route(ctx context.Context, stanza stravaganza.Stanza) (targets []jid.JID, err error)
	Start(ctx context.Context) error
	Stop(ctx context.Context) error
}

// ConferenceService defines a MUC service reachable through the router.
type ConferenceService interface {
	ProcessStanza(ctx context.Context, stanza stravaganza.Stanza) error
}

// GlobalRouter routes stanzas to the local C2S router or to the MUC service.
type GlobalRouter struct {
	hosts hosts
	c2s   C2SRouter

	mu  sync.RWMutex
	muc ConferenceService
}

// New creates a new router instance given a set of hosts and a C2S router.
func New(hosts hosts, c2sRouter C2SRouter) *GlobalRouter {
	return &GlobalRouter{
		hosts: hosts,
		c2s:   c2sRouter,
	}
}

// SetConferenceService sets the MUC service stanzas addressed to conference hosts are delivered to.
func (r *GlobalRouter) SetConferenceService(svc ConferenceService) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.muc = svc
}

// Route satisfies Router interface.
func (r *GlobalRouter) Route(ctx context.Context, stanza stravaganza.Stanza) ([]jid.JID, error) {
	toJID := stanza.ToJID()
	if toJID == nil {
		return nil, ErrRemoteServerNotFound
	}
	switch domain := toJID.Domain(); {
	case r.hosts.IsConferenceHost(domain):
		r.mu.RLock()
		svc := r.muc
		r.mu.RUnlock()

		if svc == nil {
			return nil, ErrRemoteServerNotFound
		}
		if err := svc.ProcessStanza(ctx, stanza); err != nil {
			return nil, err
		}
		return []jid.JID{*toJID}, nil

	case r.hosts.IsLocalHost(domain):
		return r.c2s.Route(ctx, stanza)
	}
	return nil, ErrRemoteServerNotFound
}

// Start starts global router subsystem.
func (r *GlobalRouter) Start(ctx context.Context) error {
	return r.c2s.Start(ctx)
}

// Stop stops global router subsystem.
func (r *GlobalRouter) Stop(ctx context.Context) error {
	return r.c2s.Stop(ctx)
}
