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

// Package config loads the options recognized by the RPC engine and its
// collaborators, scaled down from the teacher's pluggable-component lifecycle
// manager to a single viper-backed decode plus struct-tag validation, matching
// the table of recognized configuration in the specification.
package config

import "time"

// Options is every knob the engine and its components read at startup.
type Options struct {
	Proxy      string            `mapstructure:"proxy" validate:"omitempty,url"`
	DeviceInfo map[string]string `mapstructure:"device_info"`
	Locale     string            `mapstructure:"locale" validate:"omitempty,bcp47_language_tag"`
	Timeout    time.Duration     `mapstructure:"timeout"`

	HashTokens []string `mapstructure:"hash_tokens" validate:"omitempty,dive,required"`
	ConnLimit  int      `mapstructure:"conn_limit" validate:"omitempty,min=1"`

	APIVersion float64 `mapstructure:"api_version" validate:"omitempty,gt=0"`

	Endpoint     string `mapstructure:"endpoint" validate:"omitempty,url"`
	HashEndpoint string `mapstructure:"hash_endpoint" validate:"omitempty,url"`

	Username string `mapstructure:"username"`
	Password string `mapstructure:"password" validate:"omitempty"`
}

const (
	DefaultEndpoint     = "https://pgorelease.nianticlabs.com/plfe/rpc"
	DefaultHashEndpoint = "https://pokehash.buddyauth.com/api/v127_4/hash"
	DefaultConnLimit    = 300
	DefaultTimeout      = 10 * time.Second
)

// EncryptVersion restores the api_version/encrypt_version coupling the distillation
// dropped: once APIVersion climbs past 0.45 the newer encrypt version is used.
func (o Options) EncryptVersion() int32 {
	if o.APIVersion > 0.45 {
		return 3
	}
	return 1
}

// WithDefaults fills zero-valued fields with the package defaults.
func (o Options) WithDefaults() Options {
	if o.Endpoint == "" {
		o.Endpoint = DefaultEndpoint
	}
	if o.HashEndpoint == "" {
		o.HashEndpoint = DefaultHashEndpoint
	}
	if o.ConnLimit <= 0 {
		o.ConnLimit = DefaultConnLimit
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultTimeout
	}
	return o
}
