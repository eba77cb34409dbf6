package noop

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/Azure/azure-mgmt-samples/pkg/metrics"
)

var _ metrics.Interface = (*Noop)(nil)

// Noop discards every metric. It is used when no metrics sink is configured.
type Noop struct{}

func (c *Noop) Close() error {
	return nil
}

func (c *Noop) EmitFloat(stat string, value float64, dims map[string]string) {}

func (c *Noop) EmitGauge(stat string, value int64, dims map[string]string) {}
