package armcontainerinstance

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../../../mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/$GOPACKAGE ContainerGroupsClient
//go:generate go run golang.org/x/tools/cmd/goimports -local=github.com/Azure/azure-mgmt-samples -e -w ../../../mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go
