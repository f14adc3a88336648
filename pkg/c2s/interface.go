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

	c2smodel "github.com/jackal-xmpp/allowners/pkg/model/c2s"
	"github.com/jackal-xmpp/stravaganza/v2"
)

//go:generate moq -out session.mock_test.go . session
type session interface {
	Send(ctx context.Context, element stravaganza.Element) error
	Close(ctx context.Context) error
}

//go:generate moq -out token_verifier.mock_test.go . tokenVerifier:tokenVerifierMock
type tokenVerifier interface {
	Verify(tkn string) (*c2smodel.SessionClaims, error)
}
