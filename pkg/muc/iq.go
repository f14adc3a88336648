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

	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/allowners/pkg/hook"
	mucmodel "github.com/jackal-xmpp/allowners/pkg/model/muc"
	xmpputil "github.com/jackal-xmpp/allowners/pkg/util/xmpp"
	"github.com/jackal-xmpp/stravaganza/v2"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

func (s *Service) processIQ(ctx context.Context, iq *stravaganza.IQ) error {
	q := iq.ChildNamespace("query", AdminNamespace)
	if q == nil {
		if iq.IsGet() || iq.IsSet() {
			s.routeError(ctx, iq, stanzaerror.ServiceUnavailable)
		}
		return nil
	}
	switch {
	case iq.IsSet():
		return s.setAffiliations(ctx, iq, q)
	case iq.IsGet():
		s.getAffiliations(ctx, iq, q)
	}
	return nil
}

func (s *Service) setAffiliations(ctx context.Context, iq *stravaganza.IQ, q stravaganza.Element) error {
	roomJID := iq.ToJID().ToBareJID()

	// give modules the chance to intercept the request
	halted, err := s.hk.Run(hook.MUCAdminAffiliationSet, &hook.ExecutionContext{
		Info: &hook.MUCAdminInfo{
			RoomJID: roomJID,
			IQ:      iq,
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
	if len(roomJID.Node()) == 0 {
		s.routeError(ctx, iq, stanzaerror.BadRequest)
		return nil
	}
	type change struct {
		jd  *jid.JID
		aff mucmodel.Affiliation
	}
	var changes []change
	for _, item := range q.Children("item") {
		itemJID, err := jid.NewWithString(item.Attribute("jid"), false)
		if err != nil || len(item.Attribute("jid")) == 0 {
			s.routeError(ctx, iq, stanzaerror.BadRequest)
			return nil
		}
		aff, err := mucmodel.ParseAffiliation(item.Attribute("affiliation"))
		if err != nil {
			s.routeError(ctx, iq, stanzaerror.BadRequest)
			return nil
		}
		changes = append(changes, change{jd: itemJID, aff: aff})
	}
	if len(changes) == 0 {
		s.routeError(ctx, iq, stanzaerror.BadRequest)
		return nil
	}
	for _, ch := range changes {
		err := s.SetAffiliation(ctx, roomJID, false, iq.FromJID(), ch.jd, ch.aff)
		switch {
		case err == nil:
			continue
		case errors.Is(err, ErrRoomNotFound):
			s.routeError(ctx, iq, stanzaerror.ItemNotFound)
			return nil
		case errors.Is(err, ErrForbidden):
			s.routeError(ctx, iq, stanzaerror.NotAllowed)
			return nil
		default:
			level.Error(s.logger).Log("msg", "failed to set room affiliation", "err", err, "room", roomJID.String())
			s.routeError(ctx, iq, stanzaerror.InternalServerError)
			return nil
		}
	}
	s.routeAll(ctx, []stravaganza.Stanza{xmpputil.MakeResultIQ(iq, nil)})
	return nil
}

func (s *Service) getAffiliations(ctx context.Context, iq *stravaganza.IQ, q stravaganza.Element) {
	roomJID := iq.ToJID().ToBareJID()

	item := q.Child("item")
	if item == nil || len(roomJID.Node()) == 0 {
		s.routeError(ctx, iq, stanzaerror.BadRequest)
		return
	}
	aff, err := mucmodel.ParseAffiliation(item.Attribute("affiliation"))
	if err != nil || aff == mucmodel.NoAffiliation {
		s.routeError(ctx, iq, stanzaerror.BadRequest)
		return
	}
	s.mu.RLock()
	room := s.rooms[roomJID.String()]
	if room == nil {
		s.mu.RUnlock()
		s.routeError(ctx, iq, stanzaerror.ItemNotFound)
		return
	}
	if !room.GetAffiliation(iq.FromJID()).IsPrivileged() {
		s.mu.RUnlock()
		s.routeError(ctx, iq, stanzaerror.Forbidden)
		return
	}
	jds := room.AffiliatedJIDs(aff)
	s.mu.RUnlock()

	b := stravaganza.NewBuilder("query").
		WithAttribute(stravaganza.Namespace, AdminNamespace)
	for _, jd := range jds {
		b.WithChild(
			stravaganza.NewBuilder("item").
				WithAttribute("affiliation", aff.String()).
				WithAttribute("jid", jd).
				Build(),
		)
	}
	s.routeAll(ctx, []stravaganza.Stanza{xmpputil.MakeResultIQ(iq, b.Build())})
}
