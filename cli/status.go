/*
Copyright © 2021 CELLA, Inc.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
)

const windowsOS = "windows"

// Colors of term style.
var (
	Green = color.New(color.FgHiGreen, color.Bold).SprintFunc()
	Red   = color.New(color.FgHiRed, color.Bold).SprintFunc()
	Cyan  = color.New(color.FgCyan, color.Bold).SprintFunc()
)

var logAsJSON bool

// SuccessStatusEvent reports on a success event.
func SuccessStatusEvent(w io.Writer, fmtstr string, a ...any) {
	statusEvent(w, "success", "✅ ", Green, fmtstr, a...)
}

// FailureStatusEvent reports on a failure event.
func FailureStatusEvent(w io.Writer, fmtstr string, a ...any) {
	statusEvent(w, "failure", "❌ ", Red, fmtstr, a...)
}

// InfoStatusEvent reports status information on an event.
func InfoStatusEvent(w io.Writer, fmtstr string, a ...any) {
	statusEvent(w, "info", "ℹ️  ", Cyan, fmtstr, a...)
}

func statusEvent(w io.Writer, status, icon string, paint func(a ...any) string, fmtstr string, a ...any) {
	msg := fmt.Sprintf(fmtstr, a...)
	switch {
	case logAsJSON:
		logJSON(w, status, msg)
	case runtime.GOOS == windowsOS:
		fmt.Fprintln(w, msg)
	default:
		fmt.Fprintf(w, "%s %s\n", icon, paint(msg))
	}
}

// Spinner spins while a remote call is pending, the returned func stops it
// and reports the outcome.
func Spinner(w io.Writer, fmtstr string, a ...any) func(ok bool) {
	msg := fmt.Sprintf(fmtstr, a...)
	var once sync.Once
	var s *spinner.Spinner

	if !logAsJSON && runtime.GOOS != windowsOS {
		s = spinner.New(spinner.CharSets[14], 100*time.Millisecond)
		s.Writer = w
		s.Suffix = "  " + msg
		s.Start()
	}

	return func(ok bool) {
		once.Do(func() {
			if s != nil {
				s.Stop()
			}
			if ok {
				SuccessStatusEvent(w, msg)
			} else {
				FailureStatusEvent(w, msg)
			}
		})
	}
}

func logJSON(w io.Writer, status, message string) {
	l := struct {
		Time    time.Time `json:"time"`
		Status  string    `json:"status"`
		Message string    `json:"msg"`
	}{
		Time:    time.Now().UTC(),
		Status:  status,
		Message: message,
	}
	buf, err := json.Marshal(&l)
	if err != nil {
		fmt.Fprintln(w, message)
		return
	}
	fmt.Fprintln(w, string(buf))
}
