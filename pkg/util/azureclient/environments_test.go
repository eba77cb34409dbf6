package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/stretchr/testify/assert"

	utilerror "github.com/Azure/azure-mgmt-samples/test/util/error"
	testlog "github.com/Azure/azure-mgmt-samples/test/util/log"
)

func TestEnvironmentFromName(t *testing.T) {
	for _, tt := range []struct {
		name      string
		wantCloud cloud.Configuration
		wantName  string
		wantErr   string
	}{
		{
			name:      "AzurePublicCloud",
			wantCloud: cloud.AzurePublic,
			wantName:  "AzureCloud",
		},
		{
			name:      "AZUREUSGOVERNMENTCLOUD",
			wantCloud: cloud.AzureGovernment,
			wantName:  "AzureUSGovernment",
		},
		{
			name:      "azurechinacloud",
			wantCloud: cloud.AzureChina,
			wantName:  "AzureChinaCloud",
		},
		{
			name:    "AzureGermanCloud",
			wantErr: `cloud environment "AzureGermanCloud" is unsupported`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			env, err := EnvironmentFromName(tt.name)
			utilerror.AssertErrorMessage(t, err, tt.wantErr)

			if tt.wantErr != "" {
				return
			}

			assert.Equal(t, tt.wantName, env.ActualCloudName)
			assert.Equal(t, tt.wantCloud, env.Cloud)
		})
	}
}

func TestArmClientOptions(t *testing.T) {
	env := PublicCloud

	options := env.ArmClientOptions(nil)
	assert.Equal(t, cloud.AzurePublic, options.Cloud)
	assert.Equal(t, int32(6), options.Retry.MaxRetries)
	assert.Empty(t, options.PerRetryPolicies)

	_, log := testlog.NewCapturingLogger()
	options = env.ArmClientOptions(log)
	assert.Len(t, options.PerRetryPolicies, 1)
}
