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

package config

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/sabouaram/pogoclient/duration"
	liberr "github.com/sabouaram/pogoclient/errors"
)

const (
	ErrorConfigRead = liberr.MinPkgConfig + iota
	ErrorConfigDecode
	ErrorConfigValidate
)

func init() {
	liberr.RegisterMessages(ErrorConfigRead, func(code liberr.CodeError) string {
		switch code {
		case ErrorConfigRead:
			return "cannot read configuration file"
		case ErrorConfigDecode:
			return "cannot decode configuration into Options"
		case ErrorConfigValidate:
			return "configuration failed validation"
		default:
			return liberr.UnknownMessage
		}
	})
}

var validate = validator.New()

// Load reads path (any format viper supports: yaml, json, toml) into Options,
// applies defaults, and validates the result.
func Load(path string) (Options, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return Options{}, ErrorConfigRead.Error(err)
	}

	normalizeTimeout(v)

	var o Options
	if err := v.Unmarshal(&o); err != nil {
		return Options{}, ErrorConfigDecode.Error(err)
	}

	o = o.WithDefaults()

	if err := validate.Struct(o); err != nil {
		return Options{}, ErrorConfigValidate.Error(err)
	}

	return o, nil
}

// normalizeTimeout lets a config file's "timeout" be either a bare integer of
// seconds or anything time.ParseDuration accepts, before the raw value reaches
// Unmarshal's strict time.Duration field.
func normalizeTimeout(v *viper.Viper) {
	raw := v.GetString("timeout")
	if raw == "" {
		return
	}
	if d, err := duration.Parse(raw); err == nil {
		v.Set("timeout", d)
	}
}

// LoadMap decodes opts directly, skipping the file read — used by tests and by
// callers that already hold configuration in memory (e.g. from a secrets store).
func LoadMap(opts map[string]interface{}) (Options, error) {
	v := viper.New()
	for k, val := range opts {
		v.Set(strings.ToLower(k), val)
	}
	normalizeTimeout(v)

	var o Options
	if err := v.Unmarshal(&o); err != nil {
		return Options{}, ErrorConfigDecode.Error(err)
	}

	o = o.WithDefaults()

	if err := validate.Struct(o); err != nil {
		return Options{}, ErrorConfigValidate.Error(err)
	}

	return o, nil
}
