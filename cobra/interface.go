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

// Package cobra is a small instance-based wrapper around spf13/cobra for the
// command-line front end: one App per process, built up with setters instead
// of package-level cobra.Command globals, so tests can construct a fresh App
// per case without state leaking between them.
package cobra

import (
	spfcbr "github.com/spf13/cobra"

	"github.com/sabouaram/pogoclient/logger"
)

// FuncInit runs once, after flag parsing and before any subcommand's RunE.
type FuncInit func() error

// App is the CLI entry point: a root command plus the shared setup every
// subcommand needs (a logger, a one-shot init hook).
type App interface {
	SetVersion(v string)
	SetFuncInit(fct FuncInit)
	SetLogger(log logger.Logger)

	AddFlagString(persistent bool, p *string, name, shorthand, value, usage string)
	AddFlagBool(persistent bool, p *bool, name, shorthand string, value bool, usage string)
	AddFlagFloat64(persistent bool, p *float64, name, shorthand string, value float64, usage string)

	AddCommand(cmd *spfcbr.Command)
	Root() *spfcbr.Command

	Execute() error
}

// New builds an App whose root command is named use.
func New(use, short string) App {
	c := &app{
		log: logger.Default(),
	}
	c.root = &spfcbr.Command{
		Use:              use,
		Short:            short,
		TraverseChildren: true,
		SilenceUsage:     true,
	}
	return c
}
