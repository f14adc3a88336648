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

package c2s

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	c2sConnectionRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jackal",
			Subsystem: "c2s",
			Name:      "connection_registered",
			Help:      "The total number of register operations.",
		},
	)
	c2sConnectionUnregistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "jackal",
			Subsystem: "c2s",
			Name:      "connection_unregistered",
			Help:      "The total number of unregister operations.",
		},
	)
	c2sOutgoingRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jackal",
			Subsystem: "c2s",
			Name:      "outgoing_requests_total",
			Help:      "The total number of outgoing stanza requests.",
		},
		[]string{"name", "type"},
	)
	c2sFilteredElements = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "jackal",
			Subsystem: "c2s",
			Name:      "filtered_elements_total",
			Help:      "The total number of outgoing elements dropped by a stream filter.",
		},
		[]string{"filter"},
	)
)

func init() {
	prometheus.MustRegister(c2sConnectionRegistered)
	prometheus.MustRegister(c2sConnectionUnregistered)
	prometheus.MustRegister(c2sOutgoingRequests)
	prometheus.MustRegister(c2sFilteredElements)
}

func reportOutgoingRequest(name, typ string) {
	c2sOutgoingRequests.With(prometheus.Labels{
		"name": name,
		"type": typ,
	}).Inc()
}

func reportFilteredElement(filter string) {
	c2sFilteredElements.With(prometheus.Labels{
		"filter": filter,
	}).Inc()
}

func reportConnectionRegistered() {
	c2sConnectionRegistered.Inc()
}

func reportConnectionUnregistered() {
	c2sConnectionUnregistered.Inc()
}
