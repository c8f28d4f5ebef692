// Copyright 2025 walteh LLC
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

package log

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// TimestampFormat is the layout used for the bracketed diagnostic prefix
const TimestampFormat = "2006-01-02 15:04:05"

// 📢 Sink accepts diagnostic messages from the parser and the renamer
type Sink interface {
	Log(msg string)
}

// 🎯 Logger writes timestamped diagnostics to a console and mirrors them to zerolog at debug level
type Logger struct {
	zlog    zerolog.Logger
	console io.Writer
	now     func() time.Time
	mu      sync.Mutex
}

// 🏭 New creates a new logger
func New(console io.Writer, zlog zerolog.Logger) *Logger {
	return &Logger{
		zlog:    zlog,
		console: console,
		now:     time.Now,
	}
}

// WithClock replaces the time source, mostly for tests
func (l *Logger) WithClock(now func() time.Time) *Logger {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
	return l
}

// 📝 Log writes "[timestamp] msg" to the console
func (l *Logger) Log(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.console != nil {
		fmt.Fprintf(l.console, "[%s] %s\n", l.now().Format(TimestampFormat), msg)
	}
	l.zlog.Debug().Msg(msg)
}

// 🎙️ Recorder keeps every message in memory
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// NewRecorder creates an empty recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Log(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
}

// Messages returns a copy of the recorded messages in arrival order
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}

// Discard drops every message
var Discard Sink = discard{}

type discard struct{}

func (discard) Log(string) {}

// 🔑 contextKey is the type for context values
type contextKey struct{}

// 🎯 FromContext gets the sink from context, falling back to Discard
func FromContext(ctx context.Context) Sink {
	sink, ok := ctx.Value(contextKey{}).(Sink)
	if !ok {
		return Discard
	}
	return sink
}

// 🎯 NewContext adds the sink to context
func NewContext(ctx context.Context, s Sink) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}
