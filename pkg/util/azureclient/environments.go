package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/sirupsen/logrus"
)

// Environment contains the cloud-specific information needed by the samples.
type Environment struct {
	azure.Environment
	ActualCloudName string
	Cloud           cloud.Configuration
}

var (
	// PublicCloud contains information for the public Azure cloud environment.
	PublicCloud = Environment{
		Environment:     azure.PublicCloud,
		ActualCloudName: "AzureCloud",
		Cloud:           cloud.AzurePublic,
	}

	// USGovernmentCloud contains information for the US Gov cloud environment.
	USGovernmentCloud = Environment{
		Environment:     azure.USGovernmentCloud,
		ActualCloudName: "AzureUSGovernment",
		Cloud:           cloud.AzureGovernment,
	}

	// ChinaCloud contains information for the Azure China cloud environment.
	ChinaCloud = Environment{
		Environment:     azure.ChinaCloud,
		ActualCloudName: "AzureChinaCloud",
		Cloud:           cloud.AzureChina,
	}
)

// EnvironmentFromName returns the Environment corresponding to the common name specified.
func EnvironmentFromName(name string) (Environment, error) {
	switch strings.ToUpper(name) {
	case "AZUREPUBLICCLOUD":
		return PublicCloud, nil
	case "AZUREUSGOVERNMENTCLOUD":
		return USGovernmentCloud, nil
	case "AZURECHINACLOUD":
		return ChinaCloud, nil
	}
	return Environment{}, fmt.Errorf("cloud environment %q is unsupported", name)
}

// ArmClientOptions returns an arm.ClientOptions to be passed in when instantiating
// Azure SDK for Go clients. When log is not nil every outgoing request is
// logged.
func (e *Environment) ArmClientOptions(log *logrus.Entry) *arm.ClientOptions {
	options := &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
			Retry: RetryOptions,
		},
	}

	if log != nil {
		options.PerRetryPolicies = []policy.Policy{NewLoggingPolicy(log)}
	}

	return options
}

func (e *Environment) DefaultAzureCredentialOptions() *azidentity.DefaultAzureCredentialOptions {
	return &azidentity.DefaultAzureCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}
