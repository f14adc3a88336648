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

	c2smodel "github.com/jackal-xmpp/allowners/pkg/model/c2s"
	mucmodel "github.com/jackal-xmpp/allowners/pkg/model/muc"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

//go:generate moq -out hosts.mock_test.go . hosts
type hosts interface {
	IsAdmin(j *jid.JID, h string) bool
}

//go:generate moq -out claims_provider.mock_test.go . claimsProvider
type claimsProvider interface {
	Claims(j *jid.JID) (*c2smodel.SessionClaims, bool)
}

//go:generate moq -out muc_service.mock_test.go . mucService
type mucService interface {
	Host() string
	SetAffiliation(ctx context.Context, roomJID *jid.JID, privileged bool, actor *jid.JID, userJID *jid.JID, aff mucmodel.Affiliation) error
}

//go:generate moq -out router.mock_test.go . globalRouter:routerMock
type globalRouter interface {
	Route(ctx context.Context, stanza stravaganza.Stanza) ([]jid.JID, error)
}
