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

// Command pogoclient is a thin, example-grade front end over the engine: enough
// to exercise a login and a single map-objects call from a terminal, not a
// feature-complete trainer client.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	spfcbr "github.com/spf13/cobra"

	"github.com/sabouaram/pogoclient/auth"
	libcbr "github.com/sabouaram/pogoclient/cobra"
	"github.com/sabouaram/pogoclient/config"
	"github.com/sabouaram/pogoclient/crypt"
	"github.com/sabouaram/pogoclient/hash"
	"github.com/sabouaram/pogoclient/logger"
	"github.com/sabouaram/pogoclient/requests"
	"github.com/sabouaram/pogoclient/rpc"
	"github.com/sabouaram/pogoclient/rpcstate"
	"github.com/sabouaram/pogoclient/transport"
)

var (
	buildVersion = "dev"
	cfgPath      string
	provider     string
	lat, lon     float64
)

func main() {
	app := libcbr.New("pogoclient", "asynchronous game-protocol RPC client")
	app.SetVersion(buildVersion)
	app.AddFlagString(true, &cfgPath, "config", "c", "pogoclient.yaml", "configuration file (yaml/json/toml)")
	app.AddFlagString(true, &provider, "provider", "p", "ptc", "auth provider: ptc or google")
	app.AddFlagFloat64(true, &lat, "lat", "", 0, "player latitude")
	app.AddFlagFloat64(true, &lon, "lon", "", 0, "player longitude")

	app.AddCommand(loginCmd())
	app.AddCommand(callCmd())

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildEngine(opts config.Options) (*rpc.Engine, error) {
	log := logger.Default()

	pool := transport.New(transport.DefaultOptions(), log)
	hashPool := transport.New(transport.HashOptions(), log)
	hashCli := hash.New(hashPool, opts.HashEndpoint, opts.HashTokens, log)

	var authP auth.Auth
	switch provider {
	case "google":
		authP = auth.NewGoogle(opts.Username, opts.Password, nil, log)
	default:
		authP = auth.NewPTC(opts.Username, opts.Password, opts.Locale, nil, log)
	}

	st, err := rpcstate.New()
	if err != nil {
		return nil, err
	}

	key, err := crypt.GenKey()
	if err != nil {
		return nil, err
	}
	enc, err := crypt.New(key)
	if err != nil {
		return nil, err
	}

	device := rpc.DeviceInfo{Fields: opts.DeviceInfo}
	return rpc.New(opts.Endpoint, pool, hashCli, authP, st, enc, device, opts.EncryptVersion(), log), nil
}

func loginCmd() *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "login",
		Short: "authenticate with a GET_PLAYER call and print \"login ok\"",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			opts, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()

			e, err := buildEngine(opts)
			if err != nil {
				return err
			}

			_, err = e.Call(ctx, []rpc.SubrequestSpec{{Type: requests.TypeGetPlayer}}, rpc.Position{Latitude: lat, Longitude: lon})
			if err != nil {
				return err
			}

			fmt.Println("login ok")
			return nil
		},
	}
}

func callCmd() *spfcbr.Command {
	c := &spfcbr.Command{
		Use:   "call",
		Short: "issue a GET_MAP_OBJECTS call at the given coordinates",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			opts, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.Timeout)
			defer cancel()

			e, err := buildEngine(opts)
			if err != nil {
				return err
			}

			nowMs := time.Now().UnixMilli()
			responses, err := e.Call(ctx, []rpc.SubrequestSpec{
				{Type: requests.TypeGetMapObjects, Args: map[string]interface{}{
					"cell_id":            []interface{}{int64(0)},
					"since_timestamp_ms": []interface{}{nowMs},
					"latitude":           lat,
					"longitude":          lon,
				}},
			}, rpc.Position{Latitude: lat, Longitude: lon})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(responses, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}
	return c
}

func init() {
	spfcbr.EnablePrefixMatching = true
}
