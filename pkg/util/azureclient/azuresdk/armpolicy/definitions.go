package armpolicy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/$GOPACKAGE DefinitionsClient
//go:generate go run golang.org/x/tools/cmd/goimports -local=github.com/Azure/azure-mgmt-samples -e -w ../../../mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armpolicy"

	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/azcore"
)

// DefinitionsClient is a minimal interface for azure policy DefinitionsClient
type DefinitionsClient interface {
	CreateOrUpdate(ctx context.Context, policyDefinitionName string, parameters armpolicy.Definition, options *armpolicy.DefinitionsClientCreateOrUpdateOptions) (armpolicy.DefinitionsClientCreateOrUpdateResponse, error)
	Delete(ctx context.Context, policyDefinitionName string, options *armpolicy.DefinitionsClientDeleteOptions) (armpolicy.DefinitionsClientDeleteResponse, error)
}

type definitionsClient struct {
	*armpolicy.DefinitionsClient
}

var _ DefinitionsClient = &definitionsClient{}

// NewDefinitionsClient creates a new DefinitionsClient
func NewDefinitionsClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (DefinitionsClient, error) {
	client, err := armpolicy.NewDefinitionsClient(subscriptionID, credential, options)

	return &definitionsClient{client}, err
}
