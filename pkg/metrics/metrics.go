package metrics

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azure-mgmt-samples/pkg/$GOPACKAGE Interface
//go:generate go run golang.org/x/tools/cmd/goimports -local=github.com/Azure/azure-mgmt-samples -e -w ../util/mocks/$GOPACKAGE/$GOPACKAGE.go

// Interface receives the measurements of a run. stat is a dotted name such
// as provisioner.start.duration and dims are emitted as labels.
type Interface interface {
	EmitFloat(stat string, value float64, dims map[string]string)
	EmitGauge(stat string, value int64, dims map[string]string)
}
