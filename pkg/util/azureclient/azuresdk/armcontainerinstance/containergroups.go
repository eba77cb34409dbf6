package armcontainerinstance

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerinstance/armcontainerinstance/v2"

	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/azcore"
)

// ContainerGroupsClient is a minimal interface for azure ContainerGroupsClient
type ContainerGroupsClient interface {
	Get(ctx context.Context, resourceGroupName string, containerGroupName string, options *armcontainerinstance.ContainerGroupsClientGetOptions) (armcontainerinstance.ContainerGroupsClientGetResponse, error)
	BeginCreateOrUpdate(ctx context.Context, resourceGroupName string, containerGroupName string, containerGroup armcontainerinstance.ContainerGroup, options *armcontainerinstance.ContainerGroupsClientBeginCreateOrUpdateOptions) (*runtime.Poller[armcontainerinstance.ContainerGroupsClientCreateOrUpdateResponse], error)
	BeginStart(ctx context.Context, resourceGroupName string, containerGroupName string, options *armcontainerinstance.ContainerGroupsClientBeginStartOptions) (*runtime.Poller[armcontainerinstance.ContainerGroupsClientStartResponse], error)
	Stop(ctx context.Context, resourceGroupName string, containerGroupName string, options *armcontainerinstance.ContainerGroupsClientStopOptions) (armcontainerinstance.ContainerGroupsClientStopResponse, error)
}

type containerGroupsClient struct {
	*armcontainerinstance.ContainerGroupsClient
}

var _ ContainerGroupsClient = &containerGroupsClient{}

// NewContainerGroupsClient creates a new ContainerGroupsClient
func NewContainerGroupsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (ContainerGroupsClient, error) {
	clientFactory, err := armcontainerinstance.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &containerGroupsClient{clientFactory.NewContainerGroupsClient()}, nil
}
