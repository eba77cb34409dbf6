package errors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

func TestClassification(t *testing.T) {
	for _, tt := range []struct {
		name         string
		err          error
		wantNotFound bool
		wantCanceled bool
		wantCode     string
	}{
		{
			name: "nil",
		},
		{
			name: "not an azure error",
			err:  errors.New("boom"),
		},
		{
			name:         "404",
			err:          &azcore.ResponseError{StatusCode: http.StatusNotFound},
			wantNotFound: true,
		},
		{
			name:         "wrapped resource group not found",
			err:          fmt.Errorf("deleting: %w", &azcore.ResponseError{StatusCode: http.StatusBadRequest, ErrorCode: "ResourceGroupNotFound"}),
			wantNotFound: true,
			wantCode:     "ResourceGroupNotFound",
		},
		{
			name:     "conflict",
			err:      &azcore.ResponseError{StatusCode: http.StatusConflict, ErrorCode: "AnotherOperationInProgress"},
			wantCode: "AnotherOperationInProgress",
		},
		{
			name:         "canceled operation",
			err:          &azcore.ResponseError{StatusCode: http.StatusOK, ErrorCode: "OperationCanceled"},
			wantCanceled: true,
			wantCode:     "OperationCanceled",
		},
		{
			name:     "failed operation",
			err:      &azcore.ResponseError{StatusCode: http.StatusOK, ErrorCode: "ContainerGroupDeploymentFailed"},
			wantCode: "ContainerGroupDeploymentFailed",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNotFoundError(tt.err); got != tt.wantNotFound {
				t.Errorf("IsNotFoundError() = %v, want %v", got, tt.wantNotFound)
			}
			if got := IsCanceledError(tt.err); got != tt.wantCanceled {
				t.Errorf("IsCanceledError() = %v, want %v", got, tt.wantCanceled)
			}
			if got := ErrorCode(tt.err); got != tt.wantCode {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.wantCode)
			}
		})
	}
}
