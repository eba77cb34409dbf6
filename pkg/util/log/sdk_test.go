package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/sirupsen/logrus"

	testlog "github.com/Azure/azure-mgmt-samples/test/util/log"
)

type okTransport struct{}

func (okTransport) Do(req *http.Request) (*http.Response, error) {
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     http.Header{},
		Body:       io.NopCloser(strings.NewReader("{}")),
		Request:    req,
	}, nil
}

func TestEnableSDKLogging(t *testing.T) {
	hook, log := testlog.NewCapturingLogger()
	log.Logger.SetLevel(logrus.DebugLevel)

	EnableSDKLogging(log)
	defer DisableSDKLogging()

	pl := runtime.NewPipeline("samples", "v0.0.0", runtime.PipelineOptions{}, &policy.ClientOptions{
		Transport: okTransport{},
	})

	req, err := runtime.NewRequest(context.Background(), http.MethodGet, "https://management.azure.com/subscriptions")
	if err != nil {
		t.Fatal(err)
	}

	if _, err := pl.Do(req); err != nil {
		t.Fatal(err)
	}

	var sawRequest bool
	for _, e := range hook.AllEntries() {
		if e.Level != logrus.DebugLevel || e.Data["source"] != "azure-sdk" {
			t.Errorf("unexpected entry %v", e)
		}
		if e.Data["event"] == "Request" {
			sawRequest = true
		}
	}

	if !sawRequest {
		t.Error("expected a Request event to be forwarded")
	}
}
