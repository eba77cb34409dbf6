package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// ErrOperationTimeout is returned when an operation does not reach a terminal
// status within the configured timeout.
var ErrOperationTimeout = errors.New("timed out waiting for operation")

// OperationError is the failure of a single long-running operation on a
// single resource.
type OperationError struct {
	Op     string
	Name   string
	Status OperationStatus
	Err    error
}

func (e *OperationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s %s: operation ended with status %s", e.Op, e.Name, e.Status)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Name, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// batchError aggregates the per-resource failures of one phase.
type batchError struct {
	op    string
	total int
	names []string
	err   *multierror.Error
}

func newBatchError(op string, names []string, errs []error) *batchError {
	var failed []string
	var merr *multierror.Error

	for i, err := range errs {
		if err == nil {
			continue
		}
		failed = append(failed, names[i])
		merr = multierror.Append(merr, err)
	}

	if merr == nil {
		return nil
	}

	merr.ErrorFormat = func(es []error) string {
		msgs := make([]string, 0, len(es))
		for _, err := range es {
			msgs = append(msgs, err.Error())
		}
		return strings.Join(msgs, "; ")
	}

	return &batchError{
		op:    op,
		total: len(names),
		names: failed,
		err:   merr,
	}
}

func (e *batchError) Error() string {
	return fmt.Sprintf("failed to %s %d of %d resources: %s", e.op, len(e.names), e.total, e.err.Error())
}

// BatchCreateError is returned by CreateAll when one or more creations fail.
// Resources which were created are left in place.
type BatchCreateError struct {
	*batchError
}

// Names returns the failed resource names in input order.
func (e *BatchCreateError) Names() []string {
	return e.names
}

func (e *BatchCreateError) Unwrap() []error {
	return e.err.Errors
}

// BatchStopError is returned by StopAll when one or more stops fail.
type BatchStopError struct {
	*batchError
}

// Names returns the failed resource names in input order.
func (e *BatchStopError) Names() []string {
	return e.names
}

func (e *BatchStopError) Unwrap() []error {
	return e.err.Errors
}

// DeletionError is returned by DeleteAll when the resource group could not be
// deleted.
type DeletionError struct {
	Group string
	Err   error
}

func (e *DeletionError) Error() string {
	return fmt.Sprintf("failed to delete resource group %s: %v", e.Group, e.Err)
}

func (e *DeletionError) Unwrap() error {
	return e.Err
}
