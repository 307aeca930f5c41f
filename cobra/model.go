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

package cobra

import (
	spfcbr "github.com/spf13/cobra"

	"github.com/sabouaram/pogoclient/logger"
)

type app struct {
	root *spfcbr.Command
	vers string
	init FuncInit
	log  logger.Logger
}

func (a *app) SetVersion(v string) {
	a.vers = v
	a.root.Version = v
}

func (a *app) SetFuncInit(fct FuncInit) {
	a.init = fct
	a.root.PersistentPreRunE = func(_ *spfcbr.Command, _ []string) error {
		if a.init == nil {
			return nil
		}
		return a.init()
	}
}

func (a *app) SetLogger(log logger.Logger) {
	if log != nil {
		a.log = log
	}
}

func (a *app) AddFlagString(persistent bool, p *string, name, shorthand, value, usage string) {
	if persistent {
		a.root.PersistentFlags().StringVarP(p, name, shorthand, value, usage)
	} else {
		a.root.Flags().StringVarP(p, name, shorthand, value, usage)
	}
}

func (a *app) AddFlagBool(persistent bool, p *bool, name, shorthand string, value bool, usage string) {
	if persistent {
		a.root.PersistentFlags().BoolVarP(p, name, shorthand, value, usage)
	} else {
		a.root.Flags().BoolVarP(p, name, shorthand, value, usage)
	}
}

func (a *app) AddFlagFloat64(persistent bool, p *float64, name, shorthand string, value float64, usage string) {
	if persistent {
		a.root.PersistentFlags().Float64VarP(p, name, shorthand, value, usage)
	} else {
		a.root.Flags().Float64VarP(p, name, shorthand, value, usage)
	}
}

func (a *app) AddCommand(cmd *spfcbr.Command) {
	a.root.AddCommand(cmd)
}

func (a *app) Root() *spfcbr.Command {
	return a.root
}

func (a *app) Execute() error {
	return a.root.Execute()
}
