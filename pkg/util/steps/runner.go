package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"reflect"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"k8s.io/utils/clock"
)

// friendlyName returns a "friendly" stringified name of the given func.
func friendlyName(f interface{}) string {
	return runtime.FuncForPC(reflect.ValueOf(f).Pointer()).Name()
}

// Step is the interface for steps that Runner can execute.
type Step interface {
	run(ctx context.Context, log *logrus.Entry) error
	String() string
	MetricsTopic() string
}

// Run executes the provided steps in order until one fails or all steps
// are completed. Errors from failed steps are returned directly.
// The time taken by each step, in seconds, is returned keyed by its metrics
// topic.
func Run(ctx context.Context, log *logrus.Entry, steps []Step) (map[string]int64, error) {
	return runWithClock(ctx, log, clock.RealClock{}, steps)
}

func runWithClock(ctx context.Context, log *logrus.Entry, c clock.PassiveClock, steps []Step) (map[string]int64, error) {
	stepTimeRun := make(map[string]int64)
	for _, step := range steps {
		log.Infof("running step %s", step)
		startTime := c.Now()
		err := step.run(ctx, log)

		if err != nil {
			log.Errorf("step %s encountered error: %s", step, err.Error())
			return stepTimeRun, err
		}
		stepTimeRun[step.MetricsTopic()] = int64(c.Since(startTime).Seconds())
	}
	return stepTimeRun, nil
}
