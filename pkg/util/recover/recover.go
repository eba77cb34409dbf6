package recover

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"runtime/debug"

	"github.com/sirupsen/logrus"
)

// Panic recovers a panic, logging it along with the stack. Use it as
// `defer recover.Panic(log)` at the top of a goroutine.
func Panic(log *logrus.Entry) {
	if e := recover(); e != nil {
		log.Error(e)
		log.Info(string(debug.Stack()))
	}
}

// Error behaves like Panic and additionally stores the recovered value in
// *err, so the goroutine's caller sees it as a failure.
func Error(log *logrus.Entry, err *error) {
	if e := recover(); e != nil {
		log.Error(e)
		log.Info(string(debug.Stack()))
		*err = fmt.Errorf("panic: %v", e)
	}
}
