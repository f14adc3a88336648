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

package mucmodel

import (
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

// Occupant represents a room occupant.
type Occupant struct {
	// OccupantJID is the room@service/nick address.
	OccupantJID *jid.JID

	// UserJID is the occupant real full JID.
	UserJID *jid.JID

	Affiliation Affiliation
	Role        Role
}

// Nick returns occupant nickname.
func (o *Occupant) Nick() string {
	return o.OccupantJID.Resource()
}

// BareJID returns occupant real bare JID.
func (o *Occupant) BareJID() *jid.JID {
	return o.UserJID.ToBareJID()
}

// IsModerator tells whether the occupant holds the moderator role.
func (o *Occupant) IsModerator() bool {
	return o.Role == Moderator
}

// CanChangeAffiliation tells whether an actor holding affiliation actor can set target
// affiliation to a user currently affiliated as current.
func CanChangeAffiliation(actor, current, target Affiliation) bool {
	switch actor {
	case Owner:
		return true
	case Admin:
		if current.IsPrivileged() {
			return false
		}
		return target == Member || target == NoAffiliation || target == Outcast
	}
	return false
}
