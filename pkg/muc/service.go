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

package muc

import (
	"context"
	"errors"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/allowners/pkg/hook"
	mucmodel "github.com/jackal-xmpp/allowners/pkg/model/muc"
	xmpputil "github.com/jackal-xmpp/allowners/pkg/util/xmpp"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

var (
	// ErrRoomNotFound is returned when the referenced room does not exist.
	ErrRoomNotFound = errors.New("muc: room not found")

	// ErrForbidden is returned when the actor lacks the privileges to perform an operation.
	ErrForbidden = errors.New("muc: forbidden")
)

// Service represents a multi-user chat service bound to a single conference host.
type Service struct {
	cfg    Config
	router globalRouter
	hk     *hook.Hooks
	logger kitlog.Logger

	mu    sync.RWMutex
	rooms map[string]*mucmodel.Room
}

// New returns a new initialized MUC service.
func New(cfg Config, router globalRouter, hk *hook.Hooks, logger kitlog.Logger) *Service {
	return &Service{
		cfg:    cfg,
		router: router,
		hk:     hk,
		logger: kitlog.With(logger, "module", "muc", "host", cfg.Host),
		rooms:  make(map[string]*mucmodel.Room),
	}
}

// Host returns the conference domain served by the service.
func (s *Service) Host() string {
	return s.cfg.Host
}

// Start starts MUC service.
func (s *Service) Start(_ context.Context) error {
	level.Info(s.logger).Log("msg", "started MUC service")
	return nil
}

// Stop stops MUC service.
func (s *Service) Stop(_ context.Context) error {
	level.Info(s.logger).Log("msg", "stopped MUC service")
	return nil
}

// ProcessStanza processes a stanza addressed to the conference host or to any of its rooms.
func (s *Service) ProcessStanza(ctx context.Context, stanza stravaganza.Stanza) error {
	if stanza.FromJID() == nil || stanza.ToJID() == nil {
		return nil
	}
	switch stz := stanza.(type) {
	case *stravaganza.Presence:
		return s.processPresence(ctx, stz)
	case *stravaganza.IQ:
		return s.processIQ(ctx, stz)
	case *stravaganza.Message:
		return s.processMessage(ctx, stz)
	}
	return nil
}

// OccupantsCount returns the number of occupants present in the room identified by roomJID.
func (s *Service) OccupantsCount(roomJID *jid.JID) (int, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room := s.rooms[roomJID.ToBareJID().String()]
	if room == nil {
		return 0, false
	}
	return room.OccupantsCount(), true
}

// Occupants returns a copy of the occupants present in the room identified by roomJID, sorted by nick.
func (s *Service) Occupants(roomJID *jid.JID) []mucmodel.Occupant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room := s.rooms[roomJID.ToBareJID().String()]
	if room == nil {
		return nil
	}
	var ret []mucmodel.Occupant
	for _, occ := range room.SortedOccupants() {
		ret = append(ret, *occ)
	}
	return ret
}

// Affiliation returns the affiliation userJID holds in the room identified by roomJID.
func (s *Service) Affiliation(roomJID, userJID *jid.JID) (mucmodel.Affiliation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	room := s.rooms[roomJID.ToBareJID().String()]
	if room == nil {
		return mucmodel.NoAffiliation, ErrRoomNotFound
	}
	return room.GetAffiliation(userJID), nil
}

// SetAffiliation sets userJID affiliation within the room identified by roomJID.
// Privileged calls skip actor permission checks.
// Present occupants get their role recomputed and a fresh presence broadcast. Outcasts are removed from the room.
func (s *Service) SetAffiliation(
	ctx context.Context,
	roomJID *jid.JID,
	privileged bool,
	actor *jid.JID,
	userJID *jid.JID,
	aff mucmodel.Affiliation,
) error {
	var outbox []stravaganza.Stanza
	var destroyed bool

	s.mu.Lock()
	roomKey := roomJID.ToBareJID().String()
	room := s.rooms[roomKey]
	if room == nil {
		s.mu.Unlock()
		return ErrRoomNotFound
	}
	if !privileged {
		if actor == nil || !mucmodel.CanChangeAffiliation(room.GetAffiliation(actor), room.GetAffiliation(userJID), aff) {
			s.mu.Unlock()
			return ErrForbidden
		}
	}
	room.SetAffiliation(userJID, aff)

	includeJID := room.Config.NonAnonymous
	targets := room.OccupantsByBareJID(userJID)
	for _, occ := range targets {
		occ.Affiliation = aff
		if aff == mucmodel.Outcast {
			room.RemoveOccupant(occ.Nick())
			occ.Role = mucmodel.NoRole
			outbox = append(outbox, occupantPresence(occ, occ.UserJID, stravaganza.UnavailableType, includeJID, StatusSelfPresence, StatusBanned))
			continue
		}
		occ.Role = mucmodel.DefaultRole(aff, room.Config.Moderated)
	}
	recipients := room.SortedOccupants()
	for _, occ := range targets {
		for _, rcp := range recipients {
			switch {
			case aff == mucmodel.Outcast:
				outbox = append(outbox, occupantPresence(occ, rcp.UserJID, stravaganza.UnavailableType, includeJID, StatusBanned))
			case rcp == occ:
				outbox = append(outbox, occupantPresence(occ, rcp.UserJID, "", includeJID, StatusSelfPresence))
			default:
				outbox = append(outbox, occupantPresence(occ, rcp.UserJID, "", includeJID))
			}
		}
	}
	if room.OccupantsCount() == 0 && !room.Config.Persistent {
		delete(s.rooms, roomKey)
		destroyed = true
	}
	s.mu.Unlock()

	s.routeAll(ctx, outbox)
	reportAffiliationChange(aff.String(), privileged)

	level.Info(s.logger).Log("msg", "room affiliation changed",
		"room", roomKey,
		"jid", userJID.ToBareJID().String(),
		"affiliation", aff.String(),
		"privileged", privileged,
	)
	_, err := s.hk.Run(hook.MUCAffiliationChanged, &hook.ExecutionContext{
		Info: &hook.MUCAffiliationInfo{
			RoomJID:     roomJID.ToBareJID(),
			UserJID:     userJID.ToBareJID(),
			Affiliation: aff.String(),
			Privileged:  privileged,
		},
		Sender:  s,
		Context: ctx,
	})
	if err != nil {
		return err
	}
	if destroyed {
		return s.runRoomDestroyed(ctx, roomJID)
	}
	return nil
}

func (s *Service) processMessage(ctx context.Context, msg *stravaganza.Message) error {
	toJID := msg.ToJID()
	if msg.Attribute(stravaganza.Type) != groupChatType || len(toJID.Node()) == 0 {
		s.routeError(ctx, msg, stanzaerror.FeatureNotImplemented)
		return nil
	}
	var outbox []stravaganza.Stanza

	s.mu.RLock()
	room := s.rooms[toJID.ToBareJID().String()]
	if room == nil {
		s.mu.RUnlock()
		s.routeError(ctx, msg, stanzaerror.ItemNotFound)
		return nil
	}
	senders := room.OccupantsByBareJID(msg.FromJID())
	if len(senders) == 0 || senders[0].Role == mucmodel.Visitor {
		s.mu.RUnlock()
		s.routeError(ctx, msg, stanzaerror.Forbidden)
		return nil
	}
	sender := senders[0]
	for _, occ := range room.SortedOccupants() {
		m, _ := stravaganza.NewBuilderFromElement(msg).
			WithAttribute(stravaganza.From, sender.OccupantJID.String()).
			WithAttribute(stravaganza.To, occ.UserJID.String()).
			BuildMessage()
		outbox = append(outbox, m)
	}
	s.mu.RUnlock()

	s.routeAll(ctx, outbox)
	return nil
}

func (s *Service) runRoomDestroyed(ctx context.Context, roomJID *jid.JID) error {
	level.Info(s.logger).Log("msg", "room destroyed", "room", roomJID.ToBareJID().String())

	_, err := s.hk.Run(hook.MUCRoomDestroyed, &hook.ExecutionContext{
		Info: &hook.MUCRoomInfo{
			RoomJID: roomJID.ToBareJID(),
		},
		Sender:  s,
		Context: ctx,
	})
	return err
}

func (s *Service) routeAll(ctx context.Context, stanzas []stravaganza.Stanza) {
	for _, stanza := range stanzas {
		if _, err := s.router.Route(ctx, stanza); err != nil {
			level.Warn(s.logger).Log("msg", "failed to route stanza", "err", err, "to", stanza.ToJID().String())
		}
	}
}

func (s *Service) routeError(ctx context.Context, stanza stravaganza.Stanza, reason stanzaerror.Reason) {
	s.routeAll(ctx, []stravaganza.Stanza{xmpputil.MakeErrorStanza(stanza, reason)})
}
