package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"testing"
	"time"
)

func TestElapsedSeconds(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	for _, tt := range []struct {
		name     string
		complete time.Time
		want     int64
	}{
		{
			name:     "whole seconds",
			complete: start.Add(2 * time.Second),
			want:     2,
		},
		{
			name:     "sub-second precision is truncated",
			complete: start.Add(2*time.Second + 999*time.Millisecond),
			want:     2,
		},
		{
			name:     "under a second",
			complete: start.Add(400 * time.Millisecond),
			want:     0,
		},
		{
			name:     "never negative",
			complete: start.Add(-time.Second),
			want:     0,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			r := &ProvisionRecord{StartedAt: start, CompletedAt: tt.complete}
			if got := r.ElapsedSeconds(); got != tt.want {
				t.Error(got)
			}
		})
	}
}

func TestParseOperationStatus(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want OperationStatus
	}{
		{in: "Succeeded", want: StatusSucceeded},
		{in: "succeeded", want: StatusSucceeded},
		{in: "Failed", want: StatusFailed},
		{in: "Canceled", want: StatusCanceled},
		{in: "Cancelled", want: StatusCanceled},
		{in: "Running", want: StatusInProgress},
		{in: "", want: StatusInProgress},
	} {
		t.Run(tt.in, func(t *testing.T) {
			got := ParseOperationStatus(tt.in)
			if got != tt.want {
				t.Error(got)
			}
			if got.Terminal() != (tt.want != StatusInProgress) {
				t.Error(got.Terminal())
			}
		})
	}
}

func TestRecordFailed(t *testing.T) {
	for _, tt := range []struct {
		name   string
		record ProvisionRecord
		want   bool
	}{
		{
			name:   "succeeded",
			record: ProvisionRecord{Status: StatusSucceeded},
		},
		{
			name:   "failed status",
			record: ProvisionRecord{Status: StatusFailed},
			want:   true,
		},
		{
			name:   "still in progress",
			record: ProvisionRecord{Status: StatusInProgress},
			want:   true,
		},
		{
			name:   "error recorded",
			record: ProvisionRecord{Status: StatusSucceeded, Err: errors.New("oops")},
			want:   true,
		},
		{
			name:   "read back failure does not fail the start",
			record: ProvisionRecord{Status: StatusSucceeded, VerifyErr: errors.New("oops")},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.record.Failed(); got != tt.want {
				t.Error(got)
			}
		})
	}
}
