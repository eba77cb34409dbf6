package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-mgmt-samples/pkg/env"
	"github.com/Azure/azure-mgmt-samples/pkg/metrics"
	"github.com/Azure/azure-mgmt-samples/pkg/metrics/noop"
	"github.com/Azure/azure-mgmt-samples/pkg/metrics/prometheus"
	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/azcore"
	utillog "github.com/Azure/azure-mgmt-samples/pkg/util/log"
)

type emitter interface {
	metrics.Interface
	Close() error
}

// newCredential returns the credential used by every ARM client. See
// https://learn.microsoft.com/en-us/azure/developer/go/azure-sdk-authentication
// for the environment variables it reads.
func newCredential(log *logrus.Entry, c *env.Config) (azcore.TokenCredential, error) {
	log.Infof("authenticating against %s (%s) for subscription %s", c.Environment.ActualCloudName, c.Environment.ResourceManagerEndpoint, c.SubscriptionID)

	credential, err := azidentity.NewDefaultAzureCredential(c.Environment.DefaultAzureCredentialOptions())
	if err != nil {
		return nil, errors.Wrap(err, "authenticating")
	}

	return credential, nil
}

func newEmitter(log *logrus.Entry, c *env.Config) emitter {
	if c.MetricsTextfile == "" {
		return &noop.Noop{}
	}

	return prometheus.New(log, c.MetricsTextfile)
}

func closeEmitter(log *logrus.Entry, m emitter) {
	if err := m.Close(); err != nil {
		log.Warnf("writing metrics: %v", err)
	}
}

// sdkLogger turns SDK logging on when configured and returns the logger ARM
// clients should log requests to, or nil.
func sdkLogger(log *logrus.Entry, c *env.Config) *logrus.Entry {
	if !c.SDKLogging {
		return nil
	}

	utillog.EnableSDKLogging(log)
	return log.WithField("source", "arm")
}
