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
	"github.com/Azure/azure-mgmt-samples/pkg/metrics"
	"github.com/Azure/azure-mgmt-samples/pkg/provisioner"
	"github.com/Azure/azure-mgmt-samples/pkg/util/steps"
)

const metricStepDuration = "samples.step.duration"

func newACICommand(log *logrus.Entry, cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "aci",
		Short: "Create, stop, start and delete a batch of container groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return aci(cmd.Context(), log, cfg)
		},
	}
}

func aci(ctx context.Context, log *logrus.Entry, cfg *viper.Viper) error {
	c, err := env.NewConfig(cfg)
	if err != nil {
		return err
	}

	credential, err := newCredential(log, c)
	if err != nil {
		return err
	}

	m := newEmitter(log, c)
	defer closeEmitter(log, m)

	client, err := containerinstance.NewClientFromEnvironment(log, sdkLogger(log, c), &c.Environment, c.SubscriptionID, credential, c.ResourceGroup, c.Location)
	if err != nil {
		return err
	}

	p := provisioner.New(log, client, m,
		provisioner.WithPollInterval(c.PollInterval),
		provisioner.WithTimeout(c.Timeout),
		provisioner.WithConcurrency(c.Concurrency),
	)

	return runBatch(ctx, log, m, client, p, c)
}

// infrastructure prepares what the container groups of a batch depend on.
type infrastructure interface {
	EnsureResourceGroup(ctx context.Context) error
	EnsureNetwork(ctx context.Context, vnetName string) (string, error)
}

func runBatch(ctx context.Context, log *logrus.Entry, m metrics.Interface, infra infrastructure, p *provisioner.Provisioner, c *env.Config) error {
	stepTimes, err := steps.Run(ctx, log, batchSteps(infra, p, c))

	for topic, seconds := range stepTimes {
		m.EmitGauge(metricStepDuration, seconds, map[string]string{"step": topic})
	}

	if err != nil && !c.Keep {
		log.Warnf("resource group %s may have been left behind", c.ResourceGroup)
	}

	return err
}

// batchSteps returns the phases of a run. Each phase starts once the previous
// one has settled for every container group.
func batchSteps(infra infrastructure, p *provisioner.Provisioner, c *env.Config) []steps.Step {
	names := c.Names()
	var subnetID string

	s := []steps.Step{
		steps.NamedAction("ensureResourceGroup", infra.EnsureResourceGroup),
		steps.NamedAction("ensureNetwork", func(ctx context.Context) (err error) {
			subnetID, err = infra.EnsureNetwork(ctx, c.VNetName)
			return err
		}),
		steps.NamedAction("createAll", func(ctx context.Context) error {
			return p.CreateAll(ctx, requests(c, names, subnetID))
		}),
		steps.NamedAction("stopAll", func(ctx context.Context) error {
			return p.StopAll(ctx, names)
		}),
		steps.NamedAction("startAllWithTelemetry", func(ctx context.Context) error {
			records, err := p.StartAllWithTelemetry(ctx, names)
			if err != nil {
				return err
			}

			p.Report(records)
			return nil
		}),
	}

	if !c.Keep {
		s = append(s, steps.NamedAction("deleteAll", func(ctx context.Context) error {
			return p.DeleteAll(ctx, c.ResourceGroup)
		}))
	}

	return s
}

func requests(c *env.Config, names []string, subnetID string) []provisioner.ResourceRequest {
	reqs := make([]provisioner.ResourceRequest, 0, len(names))
	for _, name := range names {
		reqs = append(reqs, provisioner.ResourceRequest{
			Name:     name,
			Location: c.Location,
			Spec: provisioner.ContainerSpec{
				Image:    c.Image,
				Port:     c.Port,
				SubnetID: subnetID,
			},
		})
	}
	return reqs
}
