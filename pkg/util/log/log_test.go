package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"runtime"
	"testing"

	"github.com/sirupsen/logrus"

	utilerror "github.com/Azure/azure-mgmt-samples/test/util/error"
	testlog "github.com/Azure/azure-mgmt-samples/test/util/log"
)

func TestRelativeFilePathPrettier(t *testing.T) {
	pc := make([]uintptr, 1)
	runtime.Callers(1, pc)
	currentFrames := runtime.CallersFrames(pc)
	currentFunc, _ := currentFrames.Next()
	currentFunc.Line = 11 // so it's not too fragile
	tests := []struct {
		name  string
		f     *runtime.Frame
		want1 string
		want2 string
	}{
		{
			name:  "current function",
			f:     &currentFunc,
			want1: "log.TestRelativeFilePathPrettier()",
			want2: " pkg/util/log/log_test.go:11",
		},
		{
			name:  "empty",
			f:     &runtime.Frame{},
			want1: "()",
			want2: " :0",
		},
		{
			name: "provisioner",
			f: &runtime.Frame{
				Function: "github.com/Azure/azure-mgmt-samples/pkg/provisioner.(*Provisioner).CreateAll",
				File:     repopath + "pkg/provisioner/batch.go",
				Line:     42,
			},
			want1: "provisioner.(*Provisioner).CreateAll()",
			want2: " pkg/provisioner/batch.go:42",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got1, got2 := RelativeFilePathPrettier(tt.f)
			if got1 != tt.want1 {
				t.Errorf("RelativeFilePathPrettier() got1 = %v, want %v", got1, tt.want1)
			}
			if got2 != tt.want2 {
				t.Errorf("RelativeFilePathPrettier() got2 = %v, want %v", got2, tt.want2)
			}
		})
	}
}

func TestSetLevel(t *testing.T) {
	for _, tt := range []struct {
		name      string
		level     string
		wantLevel logrus.Level
		wantErr   string
	}{
		{
			name:      "empty leaves level alone",
			wantLevel: logrus.InfoLevel,
		},
		{
			name:      "debug",
			level:     "debug",
			wantLevel: logrus.DebugLevel,
		},
		{
			name:      "warning",
			level:     "WARN",
			wantLevel: logrus.WarnLevel,
		},
		{
			name:      "invalid",
			level:     "loud",
			wantLevel: logrus.InfoLevel,
			wantErr:   `not a valid logrus Level: "loud"`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			_, log := testlog.NewCapturingLogger()
			log.Logger.SetLevel(logrus.InfoLevel)

			err := SetLevel(log, tt.level)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			if log.Logger.GetLevel() != tt.wantLevel {
				t.Errorf("got level %s, wanted %s", log.Logger.GetLevel(), tt.wantLevel)
			}
		})
	}
}
