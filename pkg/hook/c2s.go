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

package hook

import (
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
)

const (
	// C2SStreamRegistered hook runs when a C2S stream is registered into the local router.
	// Handlers receive the stream as execution context sender and may install outbound filters on it.
	C2SStreamRegistered = "c2s.stream.registered"

	// C2SStreamUnregistered hook runs when a C2S stream is unregistered from the local router.
	C2SStreamUnregistered = "c2s.stream.unregistered"

	// C2SStreamElementSent hook runs when an XMPP element is sent over a C2S stream.
	C2SStreamElementSent = "c2s.stream.element_sent"

	// C2SStreamElementFiltered hook runs when an outbound element is dropped by a stream filter.
	C2SStreamElementFiltered = "c2s.stream.element_filtered"
)

// C2SStreamInfo contains all info associated to a C2S stream event.
type C2SStreamInfo struct {
	// ID is the event stream identifier.
	ID string

	// JID represents the event associated JID.
	JID *jid.JID

	// Element is the event associated XMPP element.
	Element stravaganza.Element
}
