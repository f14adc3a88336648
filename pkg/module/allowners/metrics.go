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

	"github.com/prometheus/client_golang/prometheus"
)

const (
	suppressedSelfPresence = "self_presence"
	suppressedBroadcast    = "broadcast"
)

var (
	promotions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "allowners",
			Name:      "promotions_total",
			Help:      "The total number of occupants automatically promoted to owner.",
		},
	)
	presencesSuppressed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "allowners",
			Name:      "presences_suppressed_total",
			Help:      "The total number of outbound presences dropped while a promotion was pending.",
		},
		[]string{"reason"},
	)
	stalePendingCleared = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "allowners",
			Name:      "stale_pending_cleared_total",
			Help:      "The total number of pending promotions cleared by an error presence.",
		},
	)
	revocationsRejected = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "allowners",
			Name:      "revocations_rejected_total",
			Help:      "The total number of affiliation downgrades rejected in non-moderated rooms.",
		},
	)
	authorizationsDenied = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "allowners",
			Name:      "authorizations_denied_total",
			Help:      "The total number of moderated room joins left unpromoted.",
		},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(promotions)
	prometheus.MustRegister(presencesSuppressed)
	prometheus.MustRegister(stalePendingCleared)
	prometheus.MustRegister(revocationsRejected)
	prometheus.MustRegister(authorizationsDenied)
}

func reportPromotion() {
	promotions.Inc()
}

func reportPresenceSuppressed(reason string) {
	presencesSuppressed.With(prometheus.Labels{"reason": reason}).Inc()
}

func reportStalePendingCleared() {
	stalePendingCleared.Inc()
}

func reportRevocationRejected() {
	revocationsRejected.Inc()
}

func reportAuthorizationDenied(err error) {
	var reason string
	switch {
	case errors.Is(err, ErrMissingToken):
		reason = "missing_token"
	case errors.Is(err, ErrRoomMismatch):
		reason = "room_mismatch"
	case errors.Is(err, ErrSubdomainMismatch):
		reason = "subdomain_mismatch"
	default:
		reason = "unknown"
	}
	authorizationsDenied.With(prometheus.Labels{"reason": reason}).Inc()
}
