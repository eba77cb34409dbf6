package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	clocktesting "k8s.io/utils/clock/testing"

	testlog "github.com/Azure/azure-mgmt-samples/test/util/log"
	utilerror "github.com/Azure/azure-mgmt-samples/test/util/error"
)

func successfulFunc(context.Context) error { return nil }
func failingFunc(context.Context) error    { return errors.New("oh no!") }

func TestStepRunner(t *testing.T) {
	for _, tt := range []struct {
		name        string
		steps       func(*[]string) []Step
		wantRun     []string
		wantEntries []testlog.ExpectedLogEntry
		wantErr     string
	}{
		{
			name: "All successful Actions will have a successful run",
			steps: func(ran *[]string) []Step {
				return []Step{
					Action(successfulFunc),
					NamedAction("create", func(context.Context) error { *ran = append(*ran, "create"); return nil }),
					NamedAction("delete", func(context.Context) error { *ran = append(*ran, "delete"); return nil }),
				}
			},
			wantRun: []string{"create", "delete"},
			wantEntries: []testlog.ExpectedLogEntry{
				{
					Message: "running step [Action github.com/Azure/azure-mgmt-samples/pkg/util/steps.successfulFunc]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "running step [Action create]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "running step [Action delete]",
					Level:   logrus.InfoLevel,
				},
			},
		},
		{
			name: "A failing Action will fail the run",
			steps: func(ran *[]string) []Step {
				return []Step{
					NamedAction("create", func(context.Context) error { *ran = append(*ran, "create"); return nil }),
					Action(failingFunc),
					NamedAction("delete", func(context.Context) error { *ran = append(*ran, "delete"); return nil }),
				}
			},
			wantRun: []string{"create"},
			wantEntries: []testlog.ExpectedLogEntry{
				{
					Message: "running step [Action create]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "running step [Action github.com/Azure/azure-mgmt-samples/pkg/util/steps.failingFunc]",
					Level:   logrus.InfoLevel,
				},
				{
					Message: "step [Action github.com/Azure/azure-mgmt-samples/pkg/util/steps.failingFunc] encountered error: oh no!",
					Level:   logrus.ErrorLevel,
				},
			},
			wantErr: "oh no!",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			h, log := testlog.NewCapturingLogger()

			var ran []string
			_, err := Run(context.Background(), log, tt.steps(&ran))
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			assert.Equal(t, tt.wantRun, ran)

			err = testlog.AssertLoggingOutput(h, tt.wantEntries)
			if err != nil {
				t.Error(err)
			}
		})
	}
}

func TestStepTimes(t *testing.T) {
	fakeClock := clocktesting.NewFakeClock(time.Unix(0, 0))

	steps := []Step{
		NamedAction("create", func(context.Context) error {
			fakeClock.Step(3*time.Second + 900*time.Millisecond)
			return nil
		}),
		Action(successfulFunc),
	}

	_, log := testlog.NewCapturingLogger()
	times, err := runWithClock(context.Background(), log, fakeClock, steps)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, map[string]int64{
		"action.create":         3,
		"action.successfulfunc": 0,
	}, times)
}

func TestMetricsTopic(t *testing.T) {
	for _, tt := range []struct {
		name string
		step Step
		want string
	}{
		{
			name: "named action",
			step: NamedAction("startWithTelemetry", successfulFunc),
			want: "action.startwithtelemetry",
		},
		{
			name: "function action",
			step: Action(failingFunc),
			want: "action.failingfunc",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.step.MetricsTopic())
		})
	}
}
