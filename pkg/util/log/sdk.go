package log

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	azlog "github.com/Azure/azure-sdk-for-go/sdk/azcore/log"
	"github.com/sirupsen/logrus"
)

// sdkEvents are the Azure SDK log events forwarded to logrus. Request and
// response events include headers; bodies are never logged by the SDK.
var sdkEvents = []azlog.Event{
	azlog.EventRequest,
	azlog.EventResponse,
	azlog.EventResponseError,
	azlog.EventRetryPolicy,
	azlog.EventLRO,
}

// EnableSDKLogging forwards the Azure SDK's HTTP pipeline logging to log at
// debug level.
func EnableSDKLogging(log *logrus.Entry) {
	log = log.WithField("source", "azure-sdk")

	azlog.SetListener(func(event azlog.Event, msg string) {
		log.WithField("event", string(event)).Debug(msg)
	})
	azlog.SetEvents(sdkEvents...)
}

// DisableSDKLogging stops forwarding Azure SDK logging.
func DisableSDKLogging() {
	azlog.SetListener(nil)
}
