package errors

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
)

var notFoundCodes = []string{
	"ResourceNotFound",
	"ResourceGroupNotFound",
	"NotFound",
}

// ErrorCode returns the ARM error code carried by err, or an empty string if
// err is not an error from azure SDK.
func ErrorCode(err error) string {
	var azErr *azcore.ResponseError
	if errors.As(err, &azErr) {
		return azErr.ErrorCode
	}
	return ""
}

// IsNotFoundError checks if the error is an error from azure SDK and 404 NotFound error.
func IsNotFoundError(err error) bool {
	var azErr *azcore.ResponseError
	if !errors.As(err, &azErr) {
		return false
	}

	if azErr.StatusCode == http.StatusNotFound {
		return true
	}

	for _, code := range notFoundCodes {
		if azErr.ErrorCode == code {
			return true
		}
	}
	return false
}

// IsCanceledError checks if the error reports a long-running operation which
// was canceled rather than failed.
func IsCanceledError(err error) bool {
	code := strings.ToLower(ErrorCode(err))
	return strings.Contains(code, "cancel")
}
