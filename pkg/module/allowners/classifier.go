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

	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

// Classification is the moderation class of a room.
type Classification struct {
	// Moderated tells whether joins to the room require an authorized session.
	Moderated bool

	// RoomName is the room name with any tenant prefix stripped.
	RoomName string

	// Subdomain is the room tenant. Empty when the room has none.
	Subdomain string
}

// Classifier tells moderated rooms apart based on the current moderation snapshot.
type Classifier struct {
	specs *SpecStore
}

// NewClassifier returns a classifier reading from specs.
func NewClassifier(specs *SpecStore) *Classifier {
	return &Classifier{specs: specs}
}

// Classify returns the moderation class of roomJID.
// Addresses without node part are never moderated.
func (c *Classifier) Classify(roomJID *jid.JID) Classification {
	if roomJID == nil || len(roomJID.Node()) == 0 {
		return Classification{}
	}
	roomName, subdomain := decodeRoomNode(roomJID.Node())

	cls := Classification{RoomName: roomName, Subdomain: subdomain}

	spec := c.specs.Load()
	switch {
	case len(subdomain) > 0:
		// tenant rooms are moderated by tenant only
		cls.Moderated = spec.IsSubdomainModerated(subdomain)
	case strings.HasPrefix(roomName, "["):
		// malformed tenant prefix
	default:
		cls.Moderated = spec.IsRoomModerated(roomName)
	}
	return cls
}

// decodeRoomNode splits a "[subdomain]room" node into its room name and subdomain.
// Nodes not following that shape are returned unchanged as room name.
func decodeRoomNode(node string) (roomName, subdomain string) {
	if !strings.HasPrefix(node, "[") {
		return node, ""
	}
	end := strings.IndexByte(node, ']')
	if end < 2 || end == len(node)-1 {
		return node, ""
	}
	return node[end+1:], node[1:end]
}
