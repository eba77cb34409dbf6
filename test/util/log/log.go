package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	logrus_test "github.com/sirupsen/logrus/hooks/test"
)

// ExpectedLogEntry contains a log message and log level which is expected to be
// emitted by the logging system.
type ExpectedLogEntry struct {
	// The message to be matched exactly. Conflicts with MessageRegex.
	Message string

	// The message to be matched as regex. Conflicts with Message.
	MessageRegex string

	// The logging level to be matched.
	Level logrus.Level

	// Fields, when set, must be present on the entry with equal values.
	// Other fields on the entry are ignored.
	Fields logrus.Fields
}

// assertMatches compares the expected entry with an actual Entry. An error is
// returned if they do not match.
func (ex ExpectedLogEntry) assertMatches(e logrus.Entry) string {
	if ex.Message != "" && ex.MessageRegex != "" {
		return "ExpectedLogEntry has both Message and MessageRegex set!"
	}

	if e.Level != ex.Level {
		return fmt.Sprintf("level: found %s, expected %s", e.Level, ex.Level)
	}

	for k, want := range ex.Fields {
		got, ok := e.Data[k]
		if !ok {
			return fmt.Sprintf("field %s: missing", k)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			return fmt.Sprintf("field %s: %s", k, diff)
		}
	}

	switch {
	case ex.Message != "":
		if e.Message != ex.Message {
			return fmt.Sprintf("message: found `%s`, expected `%s`", e.Message, ex.Message)
		}
	case ex.MessageRegex != "":
		matched, err := regexp.MatchString(ex.MessageRegex, e.Message)
		if err != nil {
			return err.Error()
		}
		if !matched {
			return fmt.Sprintf("message: found `%s`, expected to match `%s`", e.Message, ex.MessageRegex)
		}
	default:
		return "ExpectedLogEntry has neither Message or MessageRegex set!"
	}

	return ""
}

// NewCapturingLogger creates a logging hook and entry suitable for passing to
// functions and asserting on.
func NewCapturingLogger() (*logrus_test.Hook, *logrus.Entry) {
	logger, h := logrus_test.NewNullLogger()
	log := logrus.NewEntry(logger)
	return h, log
}

// AssertLoggingOutput compares the logs on `h` with the expected entries in
// `expected`. It returns an error describing every mismatch, or nil if the
// logs match.
func AssertLoggingOutput(h *logrus_test.Hook, expected []ExpectedLogEntry) error {
	entries := h.AllEntries()

	if len(entries) != len(expected) {
		return fmt.Errorf("got %d logs, expected %d", len(entries), len(expected))
	}

	var msgs []string
	for i, e := range entries {
		errText := expected[i].assertMatches(*e)
		if errText != "" {
			msgs = append(msgs, fmt.Sprintf("log #%d - %s", i, errText))
		}
	}

	if len(msgs) > 0 {
		return errors.New(strings.Join(msgs, "\n"))
	}
	return nil
}

// AssertContainsEntry checks that at least one entry on `h` matches `expected`,
// regardless of ordering. Concurrent code logs in no particular order.
func AssertContainsEntry(h *logrus_test.Hook, expected ExpectedLogEntry) error {
	for _, e := range h.AllEntries() {
		if expected.assertMatches(*e) == "" {
			return nil
		}
	}
	return fmt.Errorf("no log entry matched %+v", expected)
}
