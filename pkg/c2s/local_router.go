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
	"context"
	"fmt"
	"sync"

	kitlog "github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/jackal-xmpp/allowners/pkg/hook"
	c2smodel "github.com/jackal-xmpp/allowners/pkg/model/c2s"
	"github.com/jackal-xmpp/allowners/pkg/router"
	"github.com/jackal-xmpp/stravaganza/v2"
	"github.com/jackal-xmpp/stravaganza/v2/jid"
	"golang.org/x/sync/errgroup"
)

var errAlreadyRegistered = func(j *jid.JID) error {
	return fmt.Errorf("c2s: stream with jid %s already registered", j.String())
}

// LocalRouter represents a local C2S router.
type LocalRouter struct {
	verifier tokenVerifier
	hk       *hook.Hooks
	logger   kitlog.Logger

	mu     sync.RWMutex
	bndRes map[string]*resources
}

// NewLocalRouter returns a new initialized local router.
func NewLocalRouter(verifier tokenVerifier, hk *hook.Hooks, logger kitlog.Logger) *LocalRouter {
	return &LocalRouter{
		verifier: verifier,
		hk:       hk,
		logger:   kitlog.With(logger, "module", "c2s"),
		bndRes:   make(map[string]*resources),
	}
}

// Bind creates and registers a stream bound to full JID jd.
// A non-empty session token is verified and its claims attached to the stream.
// An empty token yields a stream without claims.
func (r *LocalRouter) Bind(ctx context.Context, jd *jid.JID, sess session, tkn string) (*Stream, error) {
	var claims *c2smodel.SessionClaims
	if len(tkn) > 0 {
		cl, err := r.verifier.Verify(tkn)
		if err != nil {
			level.Debug(r.logger).Log("msg", "session token rejected", "jid", jd.String(), "err", err)
			return nil, err
		}
		claims = cl
	}
	stm := NewStream(jd, sess, claims, r.hk, r.logger)
	if err := r.Register(ctx, stm); err != nil {
		return nil, err
	}
	return stm, nil
}

// Register registers a bound stream and runs the stream registered hook,
// giving modules the chance to assemble the stream outbound filter chain.
func (r *LocalRouter) Register(ctx context.Context, stm *Stream) error {
	r.mu.Lock()
	username := stm.Username()
	rs := r.bndRes[username]
	if rs == nil {
		rs = &resources{}
		r.bndRes[username] = rs
	}
	ok := rs.bind(stm)
	r.mu.Unlock()

	if !ok {
		return errAlreadyRegistered(stm.JID())
	}
	reportConnectionRegistered()

	level.Info(r.logger).Log("msg", "registered C2S stream", "id", stm.ID(), "jid", stm.JID().String())

	_, err := r.hk.Run(hook.C2SStreamRegistered, &hook.ExecutionContext{
		Info: &hook.C2SStreamInfo{
			ID:  stm.ID(),
			JID: stm.JID(),
		},
		Sender:  stm,
		Context: ctx,
	})
	return err
}

// Unregister unregisters a previously registered stream.
func (r *LocalRouter) Unregister(ctx context.Context, stm *Stream) error {
	r.mu.Lock()
	username := stm.Username()
	rs := r.bndRes[username]
	if rs == nil {
		r.mu.Unlock()
		return nil
	}
	rs.unbind(stm.Resource())
	if rs.len() == 0 {
		delete(r.bndRes, username)
	}
	r.mu.Unlock()

	reportConnectionUnregistered()

	level.Info(r.logger).Log("msg", "unregistered C2S stream", "id", stm.ID(), "jid", stm.JID().String())

	_, err := r.hk.Run(hook.C2SStreamUnregistered, &hook.ExecutionContext{
		Info: &hook.C2SStreamInfo{
			ID:  stm.ID(),
			JID: stm.JID(),
		},
		Sender:  stm,
		Context: ctx,
	})
	return err
}

// Route delivers a stanza to its destination local streams.
// Stanzas addressed to a bare JID are delivered to every bound resource.
func (r *LocalRouter) Route(ctx context.Context, stanza stravaganza.Stanza) ([]jid.JID, error) {
	toJID := stanza.ToJID()

	r.mu.RLock()
	rs := r.bndRes[toJID.Node()]
	r.mu.RUnlock()

	if rs == nil {
		return nil, router.ErrUserNotAvailable
	}
	stms := rs.targets(toJID.Resource())
	if len(stms) == 0 {
		return nil, router.ErrResourceNotFound
	}
	targets := make([]jid.JID, 0, len(stms))
	for _, stm := range stms {
		if err := stm.SendElement(ctx, stanza); err != nil {
			level.Warn(r.logger).Log("msg", "failed to send element", "err", err, "jid", stm.JID().String())
			continue
		}
		targets = append(targets, *stm.JID())
	}
	return targets, nil
}

// Stream returns the stream bound to full JID j.
func (r *LocalRouter) Stream(j *jid.JID) *Stream {
	r.mu.RLock()
	rs := r.bndRes[j.Node()]
	r.mu.RUnlock()

	if rs == nil {
		return nil
	}
	return rs.stream(j.Resource())
}

// Claims returns the session claims of the stream bound to full JID j.
func (r *LocalRouter) Claims(j *jid.JID) (*c2smodel.SessionClaims, bool) {
	stm := r.Stream(j)
	if stm == nil {
		return nil, false
	}
	claims := stm.Claims()
	return claims, claims != nil
}

// StreamCount returns the number of registered streams.
func (r *LocalRouter) StreamCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var n int
	for _, rs := range r.bndRes {
		n += rs.len()
	}
	return n
}

// Start starts local router.
func (r *LocalRouter) Start(_ context.Context) error {
	return nil
}

// Stop disconnects all registered streams.
func (r *LocalRouter) Stop(ctx context.Context) error {
	// grab all active streams
	var stms []*Stream

	r.mu.RLock()
	for _, rs := range r.bndRes {
		stms = append(stms, rs.all()...)
	}
	r.mu.RUnlock()

	eg, egCtx := errgroup.WithContext(ctx)
	for _, s := range stms {
		stm := s
		eg.Go(func() error {
			return stm.Disconnect(egCtx)
		})
	}
	return eg.Wait()
}
