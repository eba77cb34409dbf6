package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Azure/azure-mgmt-samples/pkg/containerinstance"
	"github.com/Azure/azure-mgmt-samples/pkg/env"
	azuresdkerrors "github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/errors"
)

func newStatusCommand(log *logrus.Entry, cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the provisioning state of each container group of a batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return status(cmd.Context(), log, cfg)
		},
	}
}

func status(ctx context.Context, log *logrus.Entry, cfg *viper.Viper) error {
	if err := env.ValidateVars(cfg, env.ResourceGroup); err != nil {
		return err
	}

	c, err := env.NewConfig(cfg)
	if err != nil {
		return err
	}

	credential, err := newCredential(log, c)
	if err != nil {
		return err
	}

	client, err := containerinstance.NewClientFromEnvironment(log, sdkLogger(log, c), &c.Environment, c.SubscriptionID, credential, c.ResourceGroup, c.Location)
	if err != nil {
		return err
	}

	return logStates(ctx, log, client, c.Names())
}

type stateReader interface {
	ProvisioningState(ctx context.Context, name string) (string, error)
}

func logStates(ctx context.Context, log *logrus.Entry, client stateReader, names []string) error {
	for _, name := range names {
		state, err := client.ProvisioningState(ctx, name)
		if azuresdkerrors.IsNotFoundError(err) {
			state, err = "NotFound", nil
		}
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"name":              name,
			"provisioningState": state,
		}).Info("container group")
	}

	return nil
}
