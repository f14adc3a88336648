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
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/allowners/pkg/hook"
	mucmodel "github.com/jackal-xmpp/allowners/pkg/model/muc"
	"github.com/jackal-xmpp/allowners/pkg/muc"
	xmpputil "github.com/jackal-xmpp/allowners/pkg/util/xmpp"
	stanzaerror "github.com/jackal-xmpp/stravaganza/v2/errors/stanza"
)

// onAdminAffiliationSet rejects affiliation downgrades in rooms that are not moderated.
func (m *AllOwners) onAdminAffiliationSet(execCtx *hook.ExecutionContext) error {
	inf := execCtx.Info.(*hook.MUCAdminInfo)

	if m.specs.Load().OwnerRevokeDisabled() {
		return nil
	}
	if m.classifier.Classify(inf.RoomJID).Moderated {
		return nil
	}
	q := inf.IQ.ChildNamespace("query", muc.AdminNamespace)
	if q == nil {
		return nil
	}
	item := q.Child("item")
	if item == nil {
		return nil
	}
	if !isRevocation(mucmodel.Affiliation(item.Attribute("affiliation"))) {
		return nil
	}
	reportRevocationRejected()
	level.Debug(m.logger).Log("msg", "affiliation revocation rejected",
		"room", inf.RoomJID.String(),
		"from", inf.IQ.Attribute("from"),
		"affiliation", item.Attribute("affiliation"),
	)
	_, _ = m.router.Route(execCtx.Context, xmpputil.MakeErrorStanza(inf.IQ, stanzaerror.Forbidden))
	return hook.ErrStopped
}

func isRevocation(aff mucmodel.Affiliation) bool {
	switch aff {
	case mucmodel.NoAffiliation, mucmodel.Outcast, mucmodel.Member:
		return true
	default:
		return false
	}
}
