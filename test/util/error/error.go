package error

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"regexp"
	"testing"
)

// AssertErrorMessage asserts that err.Error() is equal to wantMsg. An empty
// wantMsg asserts that err is nil.
func AssertErrorMessage(t *testing.T, err error, wantMsg string) {
	t.Helper()

	if err == nil && wantMsg != "" {
		t.Errorf("did not get an error, but wanted error '%v'", wantMsg)
	}

	if err != nil && err.Error() != wantMsg {
		t.Errorf("got error '%v', but wanted error '%v'", err, wantMsg)
	}
}

// AssertErrorMatchesRegex asserts that err.Error() matches wantRegex. An empty
// wantRegex asserts that err is nil.
func AssertErrorMatchesRegex(t *testing.T, err error, wantRegex string) {
	t.Helper()

	if wantRegex == "" {
		if err != nil {
			t.Errorf("got error '%v', but wanted no error", err)
		}
		return
	}

	if err == nil {
		t.Errorf("did not get an error, but wanted error matching '%v'", wantRegex)
		return
	}

	if !regexp.MustCompile(wantRegex).MatchString(err.Error()) {
		t.Errorf("got error '%v', but wanted error matching '%v'", err, wantRegex)
	}
}
