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

	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/allowners/pkg/hook"
	mucmodel "github.com/jackal-xmpp/allowners/pkg/model/muc"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
)

func (s *Service) processPresence(ctx context.Context, pr *stravaganza.Presence) error {
	switch {
	case pr.IsUnavailable():
		return s.leaveRoom(ctx, pr)
	case pr.IsAvailable():
		return s.enterRoom(ctx, pr)
	}
	return nil
}

func (s *Service) enterRoom(ctx context.Context, pr *stravaganza.Presence) error {
	occJID := pr.ToJID()
	userJID := pr.FromJID()
	if len(occJID.Node()) == 0 || len(occJID.Resource()) == 0 {
		s.routeError(ctx, pr, stanzaerror.JIDMalformed)
		return nil
	}
	roomJID := occJID.ToBareJID()
	roomKey := roomJID.String()

	s.mu.Lock()
	room := s.rooms[roomKey]
	if room != nil {
		if occ := room.Occupant(occJID.Resource()); occ != nil {
			sameUser := occ.UserJID.String() == userJID.String()
			s.mu.Unlock()

			if sameUser {
				return s.updatePresence(ctx, pr)
			}
			reportJoinError("conflict")
			s.routeError(ctx, pr, stanzaerror.Conflict)
			return nil
		}
	}
	var count int
	if room != nil {
		count = room.OccupantsCount()
	}
	s.mu.Unlock()

	// run pre-join hook
	halted, err := s.hk.Run(hook.MUCOccupantPreJoin, &hook.ExecutionContext{
		Info: &hook.MUCOccupantInfo{
			RoomJID:        roomJID,
			OccupantJID:    occJID,
			UserJID:        userJID,
			OccupantsCount: count,
			Presence:       pr,
		},
		Sender:  s,
		Context: ctx,
	})
	if err != nil {
		return err
	}
	if halted {
		return nil
	}
	var outbox []stravaganza.Stanza

	s.mu.Lock()
	created := false
	room = s.rooms[roomKey]
	if room == nil {
		room = mucmodel.NewRoom(roomJID, s.cfg.RoomDefaults)
		created = true
	}
	aff := room.GetAffiliation(userJID)

	var errReason stanzaerror.Reason
	var rejectLabel string
	switch {
	case room.Occupant(occJID.Resource()) != nil:
		errReason, rejectLabel = stanzaerror.Conflict, "conflict"
	case aff == mucmodel.Outcast:
		errReason, rejectLabel = stanzaerror.Forbidden, "banned"
	case room.IsFull() && !aff.IsPrivileged():
		errReason, rejectLabel = stanzaerror.ServiceUnavailable, "room_full"
	case len(room.Config.Password) > 0 && joinPassword(pr) != room.Config.Password:
		errReason, rejectLabel = stanzaerror.NotAuthorized, "password"
	}
	if len(rejectLabel) > 0 {
		s.mu.Unlock()

		reportJoinError(rejectLabel)
		level.Debug(s.logger).Log("msg", "room join rejected", "room", roomKey, "jid", userJID.String(), "reason", rejectLabel)

		s.routeError(ctx, pr, errReason)
		return nil
	}
	if created {
		s.rooms[roomKey] = room
	}
	occ := &mucmodel.Occupant{
		OccupantJID: occJID,
		UserJID:     userJID,
		Affiliation: aff,
		Role:        mucmodel.DefaultRole(aff, room.Config.Moderated),
	}
	includeJID := room.Config.NonAnonymous

	// existing occupants to the joiner, joiner to existing occupants
	for _, other := range room.SortedOccupants() {
		outbox = append(outbox, occupantPresence(other, userJID, "", includeJID))
		outbox = append(outbox, occupantPresence(occ, other.UserJID, "", includeJID))
	}
	room.AddOccupant(occ)
	newCount := room.OccupantsCount()

	// self-presence goes last
	statuses := []string{StatusSelfPresence}
	if includeJID {
		statuses = append(statuses, StatusNonAnonymous)
	}
	if created {
		statuses = append(statuses, StatusRoomCreated)
	}
	outbox = append(outbox, occupantPresence(occ, userJID, "", includeJID, statuses...))
	s.mu.Unlock()

	s.routeAll(ctx, outbox)
	reportJoin()

	level.Info(s.logger).Log("msg", "occupant joined room", "room", roomKey, "jid", userJID.String(), "nick", occJID.Resource())

	// run joined hook
	_, err = s.hk.Run(hook.MUCOccupantJoined, &hook.ExecutionContext{
		Info: &hook.MUCOccupantInfo{
			RoomJID:        roomJID,
			OccupantJID:    occJID,
			UserJID:        userJID,
			OccupantsCount: newCount,
			Presence:       pr,
		},
		Sender:  s,
		Context: ctx,
	})
	return err
}

func (s *Service) updatePresence(ctx context.Context, pr *stravaganza.Presence) error {
	var outbox []stravaganza.Stanza

	s.mu.RLock()
	room := s.rooms[pr.ToJID().ToBareJID().String()]
	if room == nil {
		s.mu.RUnlock()
		return nil
	}
	occ := room.Occupant(pr.ToJID().Resource())
	if occ == nil {
		s.mu.RUnlock()
		return nil
	}
	includeJID := room.Config.NonAnonymous
	for _, rcp := range room.SortedOccupants() {
		b := stravaganza.NewBuilderFromElement(pr).
			WithAttribute(stravaganza.From, occ.OccupantJID.String()).
			WithAttribute(stravaganza.To, rcp.UserJID.String())

		statuses := []string(nil)
		if rcp == occ {
			statuses = append(statuses, StatusSelfPresence)
		}
		upd, _ := b.WithChild(newUserElement(occ, includeJID, statuses...)).BuildPresence()
		outbox = append(outbox, upd)
	}
	s.mu.RUnlock()

	s.routeAll(ctx, outbox)
	return nil
}

func (s *Service) leaveRoom(ctx context.Context, pr *stravaganza.Presence) error {
	occJID := pr.ToJID()
	userJID := pr.FromJID()
	roomJID := occJID.ToBareJID()
	roomKey := roomJID.String()

	var outbox []stravaganza.Stanza

	s.mu.Lock()
	room := s.rooms[roomKey]
	if room == nil {
		s.mu.Unlock()
		return nil
	}
	occ := room.Occupant(occJID.Resource())
	if occ == nil || occ.UserJID.String() != userJID.String() {
		s.mu.Unlock()
		return nil
	}
	room.RemoveOccupant(occ.Nick())
	occ.Role = mucmodel.NoRole

	includeJID := room.Config.NonAnonymous
	outbox = append(outbox, occupantPresence(occ, userJID, stravaganza.UnavailableType, includeJID, StatusSelfPresence))
	for _, rcp := range room.SortedOccupants() {
		outbox = append(outbox, occupantPresence(occ, rcp.UserJID, stravaganza.UnavailableType, includeJID))
	}
	count := room.OccupantsCount()

	var destroyed bool
	if count == 0 && !room.Config.Persistent {
		delete(s.rooms, roomKey)
		destroyed = true
	}
	s.mu.Unlock()

	s.routeAll(ctx, outbox)
	reportLeave()

	level.Info(s.logger).Log("msg", "occupant left room", "room", roomKey, "jid", userJID.String(), "nick", occJID.Resource())

	_, err := s.hk.Run(hook.MUCOccupantLeft, &hook.ExecutionContext{
		Info: &hook.MUCOccupantInfo{
			RoomJID:        roomJID,
			OccupantJID:    occJID,
			UserJID:        userJID,
			OccupantsCount: count,
			Presence:       pr,
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
