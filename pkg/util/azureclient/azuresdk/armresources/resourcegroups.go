package armresources

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"

	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/azcore"
)

// ResourceGroupsClient is a minimal interface for azure ResourceGroupsClient
type ResourceGroupsClient interface {
	CreateOrUpdate(ctx context.Context, resourceGroupName string, parameters armresources.ResourceGroup, options *armresources.ResourceGroupsClientCreateOrUpdateOptions) (armresources.ResourceGroupsClientCreateOrUpdateResponse, error)
	ResourceGroupsClientAddons
}

type resourceGroupsClient struct {
	*armresources.ResourceGroupsClient
}

var _ ResourceGroupsClient = &resourceGroupsClient{}

// NewResourceGroupsClient creates a new ResourceGroupsClient
func NewResourceGroupsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (ResourceGroupsClient, error) {
	client, err := armresources.NewResourceGroupsClient(subscriptionID, credential, options)

	return &resourceGroupsClient{client}, err
}
