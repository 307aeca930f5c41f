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

package auth

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/sabouaram/pogoclient/logger"
)

const (
	googleLoginURL   = "https://android.clients.google.com/auth"
	googleAndroidID  = "9774d56d682e549c"
	googleService    = "audience:server:client_id:848232511240-7so421jotr2609rmqakceuu1luuq0ttb.apps.googleusercontent.com"
	googleApp        = "com.nianticlabs.pokemongo"
	googleSignature  = "321187995bc7cdc2b5fc91b11a96e2baa8602c62"
	googleDefaultTTL = 7200 * time.Second
)

type googleAuth struct {
	*ticketCache

	username string
	password string

	loginURL string

	httpClient *http.Client
	log        logger.Logger

	mu           sync.Mutex
	refreshToken string
	accessToken  string
	expirySec    int64
}

// NewGoogle builds an Auth backed by Google's device-login master-login flow:
// username/password are exchanged once for a long-lived refresh token, which is
// then exchanged for short-lived access tokens on every subsequent call.
func NewGoogle(username, password string, httpClient *http.Client, log logger.Logger) Auth {
	return newGoogle(username, password, googleLoginURL, httpClient, log)
}

func newGoogle(username, password, loginURL string, httpClient *http.Client, log logger.Logger) *googleAuth {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = logger.Default()
	}
	return &googleAuth{
		ticketCache: newTicketCache(nil),
		username:    username,
		password:    password,
		loginURL:    loginURL,
		httpClient:  httpClient,
		log:         log,
	}
}

func (g *googleAuth) Provider() Provider { return ProviderGoogle }

func (g *googleAuth) GetAccessToken(ctx context.Context, forceRefresh bool) (string, error) {
	g.mu.Lock()
	valid := !forceRefresh && g.accessToken != "" && time.Now().Unix() < g.expirySec
	tok := g.accessToken
	hasRefresh := g.refreshToken != ""
	g.mu.Unlock()

	if valid {
		return tok, nil
	}

	if !hasRefresh {
		if err := g.masterLogin(ctx); err != nil {
			return "", err
		}
	}

	if err := g.refresh(ctx); err != nil {
		return "", err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.accessToken, nil
}

// masterLogin performs the password exchange as a blocking HTTP call on the
// caller's goroutine; GetAccessToken calls it directly when no refresh token
// is held yet.
func (g *googleAuth) masterLogin(ctx context.Context) error {
	form := url.Values{}
	form.Set("accountType", "HOSTED_OR_GOOGLE")
	form.Set("Email", g.username)
	form.Set("has_permission", "1")
	form.Set("Passwd", g.password)
	form.Set("service", "ac2dm")
	form.Set("source", "android")
	form.Set("androidId", googleAndroidID)
	form.Set("app", googleApp)
	form.Set("client_sig", googleSignature)
	form.Set("device_country", "us")
	form.Set("operatorCountry", "us")
	form.Set("lang", "en")
	form.Set("sdk_version", "17")

	raw, err := g.post(ctx, form)
	if err != nil {
		return err
	}

	values := parseGoogleKV(raw)
	token, ok := values["Token"]
	if !ok {
		return ErrorInvalidCredentials.Error()
	}

	g.mu.Lock()
	g.refreshToken = token
	g.mu.Unlock()
	return nil
}

func (g *googleAuth) refresh(ctx context.Context) error {
	g.mu.Lock()
	rt := g.refreshToken
	g.mu.Unlock()

	form := url.Values{}
	form.Set("accountType", "HOSTED_OR_GOOGLE")
	form.Set("Email", g.username)
	form.Set("has_permission", "1")
	form.Set("EncryptedPasswd", rt)
	form.Set("service", googleService)
	form.Set("source", "android")
	form.Set("androidId", googleAndroidID)
	form.Set("app", googleApp)
	form.Set("client_sig", googleSignature)
	form.Set("device_country", "us")
	form.Set("operatorCountry", "us")
	form.Set("lang", "en")
	form.Set("sdk_version", "17")

	op := func() error {
		raw, err := g.post(ctx, form)
		if err != nil {
			return err
		}
		values := parseGoogleKV(raw)
		tok, ok := values["Auth"]
		if !ok {
			return backoff.Permanent(ErrorUnexpectedAuth.Error())
		}

		expirySec := time.Now().Add(googleDefaultTTL).Unix()
		if exp, ok := values["Expiry"]; ok {
			var e json.Number
			_ = json.Unmarshal([]byte(exp), &e)
			if n, err := e.Int64(); err == nil {
				expirySec = n
			}
		}

		g.mu.Lock()
		g.accessToken = tok
		g.expirySec = expirySec
		g.mu.Unlock()
		return nil
	}

	bo := backoff.WithMaxRetries(backoff.NewConstantBackOff(time.Second), 1)
	return backoff.Retry(op, backoff.WithContext(bo, ctx))
}

func (g *googleAuth) post(ctx context.Context, form url.Values) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", ErrorAuthConnection.Error(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return "", ErrorAuthConnection.Error(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", ErrorAuthConnection.Error(err)
	}
	return string(raw), nil
}

// parseGoogleKV decodes the Google auth endpoint's line-oriented Key=Value body.
func parseGoogleKV(body string) map[string]string {
	out := make(map[string]string)
	for _, line := range strings.Split(body, "\n") {
		parts := strings.SplitN(line, "=", 2)
		if len(parts) == 2 {
			out[parts[0]] = parts[1]
		}
	}
	return out
}
