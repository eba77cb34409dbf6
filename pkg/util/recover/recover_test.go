package recover

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/sirupsen/logrus"

	utilerror "github.com/Azure/azure-mgmt-samples/test/util/error"
	testlog "github.com/Azure/azure-mgmt-samples/test/util/log"
)

var expectedPanicLogs = []testlog.ExpectedLogEntry{
	{
		Message: "random error",
		Level:   logrus.ErrorLevel,
	},
	{
		MessageRegex: `runtime/debug\.Stack`,
		Level:        logrus.InfoLevel,
	},
}

func TestPanic(t *testing.T) {
	h, log := testlog.NewCapturingLogger()

	func() {
		defer Panic(log)
		panic("random error")
	}()

	err := testlog.AssertLoggingOutput(h, expectedPanicLogs)
	if err != nil {
		t.Error(err)
	}
}

func TestError(t *testing.T) {
	h, log := testlog.NewCapturingLogger()

	var err error
	func() {
		defer Error(log, &err)
		panic("random error")
	}()

	utilerror.AssertErrorMessage(t, err, "panic: random error")

	if err := testlog.AssertLoggingOutput(h, expectedPanicLogs); err != nil {
		t.Error(err)
	}
}

func TestErrorWithoutPanic(t *testing.T) {
	h, log := testlog.NewCapturingLogger()

	var err error
	func() {
		defer Error(log, &err)
	}()

	if err != nil {
		t.Error(err)
	}
	if len(h.AllEntries()) != 0 {
		t.Errorf("got %d logs, expected none", len(h.AllEntries()))
	}
}
