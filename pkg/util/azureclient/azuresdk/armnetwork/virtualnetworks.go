package armnetwork

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/$GOPACKAGE VirtualNetworksClient
//go:generate go run golang.org/x/tools/cmd/goimports -local=github.com/Azure/azure-mgmt-samples -e -w ../../../mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go

import (
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/azcore"
)

// VirtualNetworksClient is a minimal interface for azure VirtualNetworksClient
type VirtualNetworksClient interface {
	VirtualNetworksClientAddons
}

type virtualNetworksClient struct {
	*armnetwork.VirtualNetworksClient
}

var _ VirtualNetworksClient = &virtualNetworksClient{}

// NewVirtualNetworksClient creates a new VirtualNetworksClient
func NewVirtualNetworksClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (VirtualNetworksClient, error) {
	client, err := armnetwork.NewVirtualNetworksClient(subscriptionID, credential, options)

	return &virtualNetworksClient{client}, err
}
