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
	"github.com/prometheus/client_golang/prometheus"
)

var (
	mucOccupantJoins = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jackal",
			Subsystem: "muc",
			Name:      "occupant_joins_total",
			Help:      "The total number of room joins.",
		},
	)
	mucOccupantLeaves = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jackal",
			Subsystem: "muc",
			Name:      "occupant_leaves_total",
			Help:      "The total number of room leaves.",
		},
	)
	mucJoinErrors = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jackal",
			Subsystem: "muc",
			Name:      "join_errors_total",
			Help:      "The total number of rejected room joins.",
		},
		[]string{"reason"},
	)
	mucAffiliationChanges = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jackal",
			Subsystem: "muc",
			Name:      "affiliation_changes_total",
			Help:      "The total number of room affiliation changes.",
		},
		[]string{"affiliation", "privileged"},
	)
)

func init() {
	prometheus.MustRegister(mucOccupantJoins)
	prometheus.MustRegister(mucOccupantLeaves)
	prometheus.MustRegister(mucJoinErrors)
	prometheus.MustRegister(mucAffiliationChanges)
}

func reportJoin() {
	mucOccupantJoins.Inc()
}

func reportLeave() {
	mucOccupantLeaves.Inc()
}

func reportJoinError(reason string) {
	mucJoinErrors.With(prometheus.Labels{"reason": reason}).Inc()
}

func reportAffiliationChange(aff string, privileged bool) {
	lbl := "false"
	if privileged {
		lbl = "true"
	}
	mucAffiliationChanges.With(prometheus.Labels{
		"affiliation": aff,
		"privileged":  lbl,
	}).Inc()
}
