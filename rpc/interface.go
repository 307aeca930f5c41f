/*
 * MIT License
 *
 * Copyright (c) 2023 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package rpc implements the RPC Engine: it builds a request envelope,
// attaches the session ticket or an OAuth auth block, synthesizes a signed
// signal log, awaits the hash oracle, posts the envelope through the
// transport pool, and demultiplexes the response into named subresponses —
// looping locally on an expired auth token or a server-directed redirect.
package rpc

import (
	"context"

	"github.com/sabouaram/pogoclient/auth"
	"github.com/sabouaram/pogoclient/crypt"
	"github.com/sabouaram/pogoclient/hash"
	"github.com/sabouaram/pogoclient/logger"
	"github.com/sabouaram/pogoclient/rpcstate"
	"github.com/sabouaram/pogoclient/transport"
)

// Position is the caller's player position; Lat and Lon must both be set
// (non-zero) or Call fails with ErrorNoPlayerPosition before any network
// traffic.
type Position struct {
	Latitude  float64
	Longitude float64
	Altitude  *float64
}

// SubrequestSpec is one entry of a call()'s subrequest list: either a bare
// request-type tag (Args == nil) or a (tag, arguments) pair.
type SubrequestSpec struct {
	Type int32
	Args map[string]interface{}
}

// NamedResponse is one decoded subresponse, keyed by the request type's name.
type NamedResponse struct {
	Name string
	Data map[string]interface{}
}

// DeviceInfo is the caller-supplied device profile, carried verbatim into the
// signal log's device_info block.
type DeviceInfo struct {
	Fields    map[string]string
	IsAppleOS bool
}

// Engine is Component D: one instance is bound to one logical session (one
// Rpc State, one Auth Provider).
type Engine struct {
	pool    transport.Pool
	hashCli hash.Client
	authP   auth.Auth
	state   *rpcstate.State
	cryptor crypt.Encryptor

	encryptVersion int32
	device         DeviceInfo

	log logger.Logger

	endpoint string
}

// New builds an Engine bound to the given endpoint and collaborators.
func New(endpoint string, pool transport.Pool, hashCli hash.Client, authP auth.Auth, state *rpcstate.State, cryptor crypt.Encryptor, device DeviceInfo, encryptVersion int32, log logger.Logger) *Engine {
	if log == nil {
		log = logger.Default()
	}
	return &Engine{
		pool:           pool,
		hashCli:        hashCli,
		authP:          authP,
		state:          state,
		cryptor:        cryptor,
		device:         device,
		encryptVersion: encryptVersion,
		log:            log,
		endpoint:       endpoint,
	}
}

// Endpoint returns the engine's current RPC endpoint, which may have been
// updated by a prior status-53 redirect.
func (e *Engine) Endpoint() string {
	return e.endpoint
}

// Call is the public request pipeline entry point: build -> post -> parse ->
// dispatch-on-status, looping at most once on an expired auth token and at
// most once on a redirect before propagating any remaining error.
func (e *Engine) Call(ctx context.Context, subrequests []SubrequestSpec, pos Position) ([]NamedResponse, error) {
	if pos.Latitude == 0 || pos.Longitude == 0 {
		return nil, ErrorNoPlayerPosition.Error()
	}

	redirected := false
	refreshed := false

	for {
		reqEnv, sig, err := e.buildEnvelope(ctx, subrequests, pos)
		if err != nil {
			return nil, err
		}

		raw := reqEnv.Marshal()
		headers := map[string]string{"Content-Type": "application/octet-stream"}
		resp, err := e.pool.Post(ctx, e.endpoint, headers, raw, "")
		if err != nil {
			return nil, err
		}

		responses, err := e.handleResponse(resp.Body, subrequests)
		if err == nil {
			_ = sig
			return responses, nil
		}

		if err == errAuthTokenExpired {
			if refreshed {
				return nil, ErrorUnexpected.Error(err)
			}
			refreshed = true
			if _, authErr := e.authP.GetAccessToken(ctx, true); authErr != nil {
				return nil, authErr
			}
			continue
		}

		if redir, ok := err.(*errRedirect); ok {
			if redirected {
				return nil, ErrorUnexpected.Error(err)
			}
			redirected = true
			e.endpoint = redir.endpoint
			continue
		}

		return nil, err
	}
}
