package armresources

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
)

// ResourceGroupsClientAddons contains addons for ResourceGroupsClient
type ResourceGroupsClientAddons interface {
	DeleteAndWait(ctx context.Context, resourceGroupName string, options *armresources.ResourceGroupsClientBeginDeleteOptions) error
}

func (c *resourceGroupsClient) DeleteAndWait(ctx context.Context, resourceGroupName string, options *armresources.ResourceGroupsClientBeginDeleteOptions) error {
	poller, err := c.ResourceGroupsClient.BeginDelete(ctx, resourceGroupName, options)
	if err != nil {
		return err
	}
	_, err = poller.PollUntilDone(ctx, nil)
	return err
}
