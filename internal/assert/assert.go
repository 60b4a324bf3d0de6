// Copyright 2026 go-pixcore Authors
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

// Package assert reports contract violations: preconditions whose failure
// is a programming error rather than a recoverable condition.
package assert

import (
	"fmt"
	"runtime/debug"
)

// Violation is the panic value raised by That.
type Violation struct {
	Msg   string
	Stack []byte
}

// Error implements error so recovered values can be matched with errors.As.
func (v *Violation) Error() string {
	return "contract violation: " + v.Msg
}

// That panics with a *Violation carrying the formatted message and the
// current goroutine stack when cond is false.
func That(cond bool, format string, args ...any) {
	if cond {
		return
	}
	panic(&Violation{
		Msg:   fmt.Sprintf(format, args...),
		Stack: debug.Stack(),
	})
}
