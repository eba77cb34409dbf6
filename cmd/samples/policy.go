package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Azure/azure-mgmt-samples/pkg/env"
	"github.com/Azure/azure-mgmt-samples/pkg/policy"
	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/armpolicy"
)

func newPolicyCommand(log *logrus.Entry, cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "policy",
		Short: "Create and delete a custom policy definition",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return policySample(cmd.Context(), log, cfg)
		},
	}
}

func policySample(ctx context.Context, log *logrus.Entry, cfg *viper.Viper) error {
	c, err := env.NewConfig(cfg)
	if err != nil {
		return err
	}

	credential, err := newCredential(log, c)
	if err != nil {
		return err
	}

	definitions, err := armpolicy.NewDefinitionsClient(c.SubscriptionID, credential, c.Environment.ArmClientOptions(sdkLogger(log, c)))
	if err != nil {
		return err
	}

	return policy.NewSample(log, definitions).Run(ctx, c.PolicyName)
}
