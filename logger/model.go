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

package logger

import "github.com/sirupsen/logrus"

type logWrap struct {
	l *logrus.Logger
}

type entryWrap struct {
	e *logrus.Entry
}

// New builds a standalone Logger instance backed by its own logrus.Logger, for callers
// that want isolation from the package default (e.g. per-session log correlation).
func New() Logger {
	l := logrus.New()
	l.SetLevel(logrus.InfoLevel)
	return &logWrap{l: l}
}

func (w *logWrap) SetLevel(l Level) { w.l.SetLevel(l.logrus()) }

func (w *logWrap) WithFields(f Fields) Entry {
	return &entryWrap{e: w.l.WithFields(logrus.Fields(f))}
}

func (w *logWrap) Debug(args ...interface{}) { w.l.Debug(args...) }
func (w *logWrap) Info(args ...interface{})  { w.l.Info(args...) }
func (w *logWrap) Warn(args ...interface{})  { w.l.Warn(args...) }
func (w *logWrap) Error(args ...interface{}) { w.l.Error(args...) }

func (w *entryWrap) Debug(args ...interface{}) { w.e.Debug(args...) }
func (w *entryWrap) Info(args ...interface{})  { w.e.Info(args...) }
func (w *entryWrap) Warn(args ...interface{})  { w.e.Warn(args...) }
func (w *entryWrap) Error(args ...interface{}) { w.e.Error(args...) }

func (w *entryWrap) WithFields(f Fields) Entry {
	return &entryWrap{e: w.e.WithFields(logrus.Fields(f))}
}
