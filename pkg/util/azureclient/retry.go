package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"net/http"
	"strings"
	"time"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/go-autorest/autorest"
)

// RetryOptions are the retry settings shared by every ARM client.
var RetryOptions = policy.RetryOptions{
	MaxRetries:  6,
	RetryDelay:  4 * time.Second,
	ShouldRetry: isRetriable,
}

// retriableBodyContents are substrings of error responses which are worth a
// retry although their status code is not: credential and role assignment
// propagation is eventually consistent.
var retriableBodyContents = []string{
	"AADSTS7000215",
	"AADSTS7000216",
	"AuthorizationFailed",
}

// isRetriable checks if the response is retriable.
func isRetriable(resp *http.Response, err error) bool {
	if err != nil {
		return false
	}
	// Don't retry if successful
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return false
	}
	// Retry if the status code is retriable
	for _, sc := range autorest.StatusCodesForRetry {
		if resp.StatusCode == sc {
			return true
		}
	}

	// Check if the body contains the certain strings that can be retried.
	b, err := runtime.Payload(resp)
	if err != nil {
		return false
	}
	body := string(b)
	for _, s := range retriableBodyContents {
		if strings.Contains(body, s) {
			return true
		}
	}
	return false
}
