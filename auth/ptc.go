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
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/sabouaram/pogoclient/logger"
)

const (
	ptcLoginURL   = "https://sso.pokemon.com/sso/login"
	ptcAuthorize  = "https://sso.pokemon.com/sso/oauth2.0/authorize"
	ptcClientID   = "mobile-app_pokemon-go"
	ptcRedirect   = "https://www.nianticlabs.com/pokemongo/error"
	ptcOAuthToken = "https://sso.pokemon.com/sso/oauth2.0/accessToken"

	// accessTokenTTL is fixed per the spec rather than read from the server.
	accessTokenTTL = 7195 * time.Second
)

type ptcAuthorizeResponse struct {
	Lt        string `json:"lt"`
	Execution string `json:"execution"`
}

type ptcErrorResponse struct {
	ErrorCode string   `json:"error_code"`
	Errors    []string `json:"errors"`
}

type ptcAuth struct {
	*ticketCache

	username string
	password string
	locale   string

	authorizeURL string
	loginURL     string

	httpClient *http.Client
	log        logger.Logger

	mu          sync.Mutex
	accessToken string
	expirySec   int64
}

// NewPTC builds an Auth backed by the PTC web-OAuth CAS flow.
func NewPTC(username, password, locale string, httpClient *http.Client, log logger.Logger) Auth {
	return newPTC(username, password, locale, ptcAuthorize, ptcLoginURL, httpClient, log)
}

func newPTC(username, password, locale, authorizeURL, loginURL string, httpClient *http.Client, log logger.Logger) *ptcAuth {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	if log == nil {
		log = logger.Default()
	}
	return &ptcAuth{
		ticketCache:  newTicketCache(nil),
		username:     username,
		password:     password,
		locale:       locale,
		authorizeURL: authorizeURL,
		loginURL:     loginURL,
		httpClient:   httpClient,
		log:          log,
	}
}

func (p *ptcAuth) Provider() Provider { return ProviderPtc }

func (p *ptcAuth) GetAccessToken(ctx context.Context, forceRefresh bool) (string, error) {
	p.mu.Lock()
	valid := !forceRefresh && p.accessToken != "" && time.Now().Unix() < p.expirySec
	tok := p.accessToken
	p.mu.Unlock()

	if valid {
		return tok, nil
	}

	if err := p.login(ctx); err != nil {
		return "", err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.accessToken, nil
}

func (p *ptcAuth) login(ctx context.Context) error {
	authorizeURL := fmt.Sprintf("%s?client_id=%s&redirect_uri=%s",
		p.authorizeURL, ptcClientID, url.QueryEscape(ptcRedirect))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, authorizeURL, nil)
	if err != nil {
		return ErrorAuthConnection.Error(err)
	}
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return ErrorAuthConnection.Error(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrorAuthConnection.Error(err)
	}

	var meta ptcAuthorizeResponse
	if err := json.Unmarshal(raw, &meta); err != nil {
		return ErrorUnexpectedAuth.Error(err)
	}

	form := url.Values{}
	form.Set("lt", meta.Lt)
	form.Set("execution", meta.Execution)
	form.Set("_eventId", "submit")
	form.Set("username", p.username)
	form.Set("password", p.password)
	if p.locale != "" {
		form.Set("locale", p.locale)
	}

	postReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.loginURL, strings.NewReader(form.Encode()))
	if err != nil {
		return ErrorAuthConnection.Error(err)
	}
	postReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	noRedirectClient := *p.httpClient
	noRedirectClient.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		return http.ErrUseLastResponse
	}

	postResp, err := noRedirectClient.Do(postReq)
	if err != nil {
		return ErrorAuthConnection.Error(err)
	}
	defer postResp.Body.Close()

	for _, c := range postResp.Cookies() {
		if c.Name == "CASTGC" {
			p.mu.Lock()
			p.accessToken = c.Value
			p.expirySec = time.Now().Add(accessTokenTTL).Unix()
			p.mu.Unlock()
			p.log.Info("auth: ptc login succeeded")
			return nil
		}
	}

	body, _ := io.ReadAll(postResp.Body)
	var perr ptcErrorResponse
	_ = json.Unmarshal(body, &perr)

	if perr.ErrorCode == "users.login.activation_required" {
		return ErrorActivationRequired.Error()
	}
	if len(perr.Errors) > 0 {
		if strings.Contains(strings.ToLower(perr.Errors[0]), "unexpected error") {
			return ErrorUnexpectedAuth.Error()
		}
		return ErrorAuth.Errorf("%s", perr.Errors[0])
	}
	return ErrorInvalidCredentials.Error()
}
