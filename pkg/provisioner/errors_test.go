package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	utilerror "github.com/Azure/azure-mgmt-samples/test/util/error"
)

func TestOperationError(t *testing.T) {
	for _, tt := range []struct {
		name    string
		err     *OperationError
		wantErr string
	}{
		{
			name:    "terminal status without detail",
			err:     &OperationError{Op: opStart, Name: "a", Status: StatusCanceled},
			wantErr: "start a: operation ended with status Canceled",
		},
		{
			name:    "with detail",
			err:     &OperationError{Op: opStop, Name: "a", Status: StatusInProgress, Err: ErrOperationTimeout},
			wantErr: "stop a: timed out waiting for operation",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			utilerror.AssertErrorMessage(t, tt.err, tt.wantErr)
		})
	}
}

func TestNewBatchError(t *testing.T) {
	names := []string{"r1", "r2", "r3", "r4"}

	t.Run("no failures", func(t *testing.T) {
		if be := newBatchError(opCreate, names, make([]error, len(names))); be != nil {
			t.Fatal(be)
		}
	})

	t.Run("every failure is kept in input order", func(t *testing.T) {
		errs := []error{
			nil,
			&OperationError{Op: opCreate, Name: "r2", Err: errors.New("quota exceeded")},
			nil,
			&OperationError{Op: opCreate, Name: "r4", Err: context.Canceled},
		}

		err := &BatchCreateError{newBatchError(opCreate, names, errs)}

		utilerror.AssertErrorMessage(t, err, "failed to create 2 of 4 resources: create r2: quota exceeded; create r4: context canceled")
		assert.Equal(t, []string{"r2", "r4"}, err.Names())
		assert.ErrorIs(t, err, context.Canceled)

		var opErr *OperationError
		if assert.ErrorAs(t, err, &opErr) {
			assert.Equal(t, "r2", opErr.Name)
		}
	})
}

func TestDeletionError(t *testing.T) {
	err := &DeletionError{Group: "rg", Err: context.DeadlineExceeded}

	utilerror.AssertErrorMessage(t, err, "failed to delete resource group rg: context deadline exceeded")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
