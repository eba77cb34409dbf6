package provisioner

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	azuresdkerrors "github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/errors"
)

// CreateAll creates every requested resource concurrently and waits for all
// creations to settle. If any creation fails a *BatchCreateError naming every
// failed resource is returned; successfully created resources are not rolled
// back.
func (p *Provisioner) CreateAll(ctx context.Context, requests []ResourceRequest) error {
	names := make([]string, len(requests))
	for i, req := range requests {
		names[i] = req.Name
	}

	p.log.Infof("creating %d resources", len(requests))

	errs := p.fanOut(ctx, len(requests), func(ctx context.Context, i int) error {
		req := requests[i]
		_, err := p.runOperation(ctx, opCreate, req.Name, func(ctx context.Context) (Operation, error) {
			return p.client.Create(ctx, req)
		})
		if err != nil {
			p.log.WithField("name", req.Name).Error(err)
			return err
		}

		p.log.WithField("name", req.Name).Info("created")
		return nil
	})

	if be := newBatchError(opCreate, names, errs); be != nil {
		return &BatchCreateError{be}
	}

	return nil
}

// StopAll stops every named resource concurrently and waits for all stops to
// settle. Failures are aggregated into a *BatchStopError.
func (p *Provisioner) StopAll(ctx context.Context, names []string) error {
	p.log.Infof("stopping %d resources", len(names))

	errs := p.fanOut(ctx, len(names), func(ctx context.Context, i int) error {
		name := names[i]
		_, err := p.runOperation(ctx, opStop, name, func(ctx context.Context) (Operation, error) {
			return p.client.Stop(ctx, name)
		})
		if err != nil {
			p.log.WithField("name", name).Error(err)
			return err
		}

		p.log.WithField("name", name).Info("stopped")
		return nil
	})

	if be := newBatchError(opStop, names, errs); be != nil {
		return &BatchStopError{be}
	}

	return nil
}

// DeleteAll deletes the resource group enclosing the batch. A group which no
// longer exists is not an error.
func (p *Provisioner) DeleteAll(ctx context.Context, groupName string) error {
	p.log.Infof("deleting resource group %s", groupName)

	err := p.client.DeleteGroup(ctx, groupName)
	if azuresdkerrors.IsNotFoundError(err) {
		p.log.Infof("resource group %s not found, nothing to delete", groupName)
		return nil
	}
	if err != nil {
		return &DeletionError{Group: groupName, Err: err}
	}

	p.log.Infof("deleted resource group %s", groupName)
	return nil
}
