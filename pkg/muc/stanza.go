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
	"github.com/google/uuid"
	mucmodel "github.com/jackal-xmpp/allowners/pkg/model/muc"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

const (
	// Namespace is the MUC join namespace.
	Namespace = "http://jabber.org/protocol/muc"

	// UserNamespace is the MUC room-user extension namespace.
	UserNamespace = "http://jabber.org/protocol/muc#user"

	// AdminNamespace is the MUC administration namespace.
	AdminNamespace = "http://jabber.org/protocol/muc#admin"
)

const groupChatType = "groupchat"

// Room presence status codes.
const (
	StatusNonAnonymous = "100"
	StatusSelfPresence = "110"
	StatusRoomCreated  = "201"
	StatusBanned       = "301"
)

func newItemElement(occ *mucmodel.Occupant, includeJID bool) stravaganza.Element {
	b := stravaganza.NewBuilder("item").
		WithAttribute("affiliation", occ.Affiliation.String()).
		WithAttribute("role", occ.Role.String())
	if includeJID {
		b.WithAttribute("jid", occ.UserJID.String())
	}
	return b.Build()
}

func newStatusElement(code string) stravaganza.Element {
	return stravaganza.NewBuilder("status").
		WithAttribute("code", code).
		Build()
}

func newUserElement(occ *mucmodel.Occupant, includeJID bool, statuses ...string) stravaganza.Element {
	b := stravaganza.NewBuilder("x").
		WithAttribute(stravaganza.Namespace, UserNamespace).
		WithChild(newItemElement(occ, includeJID))
	for _, st := range statuses {
		b.WithChild(newStatusElement(st))
	}
	return b.Build()
}

// occupantPresence returns the presence announcing occ to the to address.
func occupantPresence(occ *mucmodel.Occupant, to *jid.JID, typ string, includeJID bool, statuses ...string) stravaganza.Stanza {
	b := stravaganza.NewPresenceBuilder().
		WithAttribute(stravaganza.ID, uuid.New().String()).
		WithAttribute(stravaganza.From, occ.OccupantJID.String()).
		WithAttribute(stravaganza.To, to.String())
	if len(typ) > 0 {
		b.WithAttribute(stravaganza.Type, typ)
	}
	pr, _ := b.WithChild(newUserElement(occ, includeJID, statuses...)).
		BuildPresence()
	return pr
}

func joinPassword(pr *stravaganza.Presence) string {
	x := pr.ChildNamespace("x", Namespace)
	if x == nil {
		return ""
	}
	pwd := x.Child("password")
	if pwd == nil {
		return ""
	}
	return pwd.Text()
}
