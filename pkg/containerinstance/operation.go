package containerinstance

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"net/http"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"

	"github.com/Azure/azure-mgmt-samples/pkg/provisioner"
	azuresdkerrors "github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/errors"
)

// pollerOperation adapts an SDK poller to provisioner.Operation. Each call to
// Poll issues at most one request.
type pollerOperation[T any] struct {
	poller *runtime.Poller[T]
	last   *http.Response
}

func newPollerOperation[T any](poller *runtime.Poller[T]) *pollerOperation[T] {
	return &pollerOperation[T]{poller: poller}
}

func (o *pollerOperation[T]) Poll(ctx context.Context) (provisioner.OperationStatus, error) {
	if !o.poller.Done() {
		resp, err := o.poller.Poll(ctx)
		if resp != nil {
			o.last = resp
		}

		// a failed poll of an operation which has not ended yet
		if !o.poller.Done() {
			return provisioner.StatusInProgress, err
		}
	}

	_, err := o.poller.Result(ctx)
	switch {
	case err == nil:
		return provisioner.StatusSucceeded, nil
	case statusFromResponse(o.last) == provisioner.StatusCanceled, azuresdkerrors.IsCanceledError(err):
		return provisioner.StatusCanceled, err
	default:
		return provisioner.StatusFailed, err
	}
}

// statusFromResponse reads the status field of an Azure-AsyncOperation
// polling response. Responses without one report InProgress.
func statusFromResponse(resp *http.Response) provisioner.OperationStatus {
	if resp == nil {
		return provisioner.StatusInProgress
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := runtime.UnmarshalAsJSON(resp, &body); err != nil {
		return provisioner.StatusInProgress
	}

	return provisioner.ParseOperationStatus(body.Status)
}

// completedOperation is an operation which finished before it was returned.
type completedOperation struct {
	status provisioner.OperationStatus
	err    error
}

func (o completedOperation) Poll(context.Context) (provisioner.OperationStatus, error) {
	return o.status, o.err
}
