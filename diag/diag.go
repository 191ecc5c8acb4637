// Package diag prints program diagnostics to an error stream.
//
// A Reporter renders messages as "program: message" (optionally followed
// by ": <cause>") and tracks how many messages it has emitted. A non-zero
// status makes the report terminal: the Reporter invokes its termination
// primitive with that status after printing.
//
// Reporters are plain values passed to the code that needs them; there is
// no package-level state. They are not safe for concurrent use.
package diag

import (
	"fmt"
	"io"
	"os"
)

// Reporter writes diagnostics for one program.
type Reporter struct {
	// Program is the name prefixed to every message.
	Program string

	// Sink receives the rendered diagnostics. Defaults to os.Stderr.
	Sink io.Writer

	// Exit is invoked with the status of a terminal report. Defaults to
	// os.Exit. It must not return.
	Exit func(int)

	// OnePerLine suppresses repeated ReportAt messages for the same
	// file and line.
	OnePerLine bool

	count    uint64
	lastFile string
	lastLine int
}

// New returns a Reporter for program writing to os.Stderr.
func New(program string) *Reporter {
	return &Reporter{Program: program}
}

func (r *Reporter) sink() io.Writer {
	if r.Sink != nil {
		return r.Sink
	}
	return os.Stderr
}

func (r *Reporter) exit(status int) {
	if r.Exit != nil {
		r.Exit(status)
	} else {
		os.Exit(status)
	}
	// A termination primitive that returns is a contract violation.
	panic("diag: Exit returned")
}

// Report prints "program: message" to the sink, appending ": <err>" when
// err is non-nil. When status is non-zero the report is terminal.
func (r *Reporter) Report(status int, err error, format string, args ...any) {
	r.emit("", 0, err, format, args...)
	if status != 0 {
		r.exit(status)
	}
}

// ReportAt is Report with a "file:line:" location between the program name
// and the message. With OnePerLine set, consecutive reports for the same
// location are suppressed.
func (r *Reporter) ReportAt(status int, err error, file string, line int, format string, args ...any) {
	if r.OnePerLine && file == r.lastFile && line == r.lastLine {
		if status != 0 {
			r.exit(status)
		}
		return
	}
	r.lastFile, r.lastLine = file, line
	r.emit(file, line, err, format, args...)
	if status != 0 {
		r.exit(status)
	}
}

// Count returns the number of messages emitted so far.
func (r *Reporter) Count() uint64 { return r.count }

func (r *Reporter) emit(file string, line int, err error, format string, args ...any) {
	r.count++
	w := r.sink()
	if file != "" {
		fmt.Fprintf(w, "%s:%s:%d: ", r.Program, file, line)
	} else {
		fmt.Fprintf(w, "%s: ", r.Program)
	}
	fmt.Fprintf(w, format, args...)
	if err != nil {
		fmt.Fprintf(w, ": %v", err)
	}
	fmt.Fprintln(w)
}
