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
	"errors"

	c2smodel "github.com/jackal-xmpp/allowners/pkg/model/c2s"
)

var (
	// ErrMissingToken is returned when the session carries no token.
	ErrMissingToken = errors.New("allowners: session has no token")

	// ErrRoomMismatch is returned when the session room claim does not cover the room.
	ErrRoomMismatch = errors.New("allowners: room claim mismatch")

	// ErrSubdomainMismatch is returned when the session subdomain claim differs from the room subdomain.
	ErrSubdomainMismatch = errors.New("allowners: subdomain claim mismatch")
)

// Authorize checks whether a session holding claims may be promoted in roomName under subdomain.
// The wildcard room claim matches any room. Subdomains must be equal, including both being empty.
func Authorize(claims *c2smodel.SessionClaims, roomName, subdomain string) error {
	if !claims.HasToken() {
		return ErrMissingToken
	}
	if !claims.MatchesRoom(roomName) {
		return ErrRoomMismatch
	}
	if claims.Subdomain != subdomain {
		return ErrSubdomainMismatch
	}
	return nil
}
