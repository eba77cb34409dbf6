package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate go run go.uber.org/mock/mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/azure-mgmt-samples/pkg/$GOPACKAGE ResourceClient,Operation
//go:generate go run golang.org/x/tools/cmd/goimports -local=github.com/Azure/azure-mgmt-samples -e -w ../util/mocks/$GOPACKAGE/$GOPACKAGE.go

import (
	"context"
	"strings"
	"time"
)

// OperationStatus is the status of a long-running operation.
type OperationStatus string

const (
	StatusInProgress OperationStatus = "InProgress"
	StatusSucceeded  OperationStatus = "Succeeded"
	StatusFailed     OperationStatus = "Failed"
	StatusCanceled   OperationStatus = "Canceled"
)

// Terminal reports whether no further transition follows s without a new
// operation.
func (s OperationStatus) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusCanceled:
		return true
	}
	return false
}

// ParseOperationStatus maps a status string reported by ARM onto an
// OperationStatus. Unknown values are reported as in progress.
func ParseOperationStatus(s string) OperationStatus {
	switch strings.ToLower(s) {
	case "succeeded":
		return StatusSucceeded
	case "failed":
		return StatusFailed
	case "canceled", "cancelled":
		return StatusCanceled
	}
	return StatusInProgress
}

// Operation is a started long-running operation.
type Operation interface {
	// Poll queries the operation once. A non-nil error returned together
	// with a terminal status carries the failure detail of the operation;
	// with a non-terminal status it means the poll itself failed.
	Poll(ctx context.Context) (OperationStatus, error)
}

// ResourceClient is the remote control plane the Provisioner drives.
type ResourceClient interface {
	Create(ctx context.Context, req ResourceRequest) (Operation, error)
	Start(ctx context.Context, name string) (Operation, error)
	Stop(ctx context.Context, name string) (Operation, error)
	ProvisioningState(ctx context.Context, name string) (string, error)
	DeleteGroup(ctx context.Context, groupName string) error
}

// ContainerSpec describes the single container run by a container group.
type ContainerSpec struct {
	Image      string
	Port       int32
	CPU        float64
	MemoryInGB float64
	SubnetID   string
}

// ResourceRequest is one resource of a batch.
type ResourceRequest struct {
	Name     string
	Location string
	Spec     ContainerSpec
}

// ProvisionRecord holds the telemetry gathered for one resource while it is
// started.
type ProvisionRecord struct {
	Name        string
	StartedAt   time.Time
	CompletedAt time.Time

	// Status is the terminal status of the start operation.
	Status OperationStatus
	Err    error

	// FinalState is the provisioning state read back once every start
	// operation of the batch has settled.
	FinalState string
	VerifyErr  error
}

// ElapsedSeconds returns the time taken by the start operation in whole
// seconds.
func (r *ProvisionRecord) ElapsedSeconds() int64 {
	d := r.CompletedAt.Sub(r.StartedAt)
	if d < 0 {
		return 0
	}
	return int64(d / time.Second)
}

// Failed reports whether the start operation did not succeed.
func (r *ProvisionRecord) Failed() bool {
	return r.Err != nil || r.Status != StatusSucceeded
}
