package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"

	"github.com/Azure/azure-mgmt-samples/pkg/env"
	testlog "github.com/Azure/azure-mgmt-samples/test/util/log"
)

func TestRootCommand(t *testing.T) {
	t.Setenv("RESOURCE_COUNT", "3")
	t.Setenv("AZURE_SUBSCRIPTION_ID", "sub")

	_, log := testlog.NewCapturingLogger()
	cfg := viper.New()

	root, err := newRootCommand(log, cfg)
	if err != nil {
		t.Fatal(err)
	}

	err = root.PersistentFlags().Parse([]string{"--location", "eastus", "--keep"})
	if err != nil {
		t.Fatal(err)
	}

	c, err := env.NewConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, 3, c.ResourceCount)
	assert.Equal(t, "sub", c.SubscriptionID)
	assert.Equal(t, "eastus", c.Location)
	assert.True(t, c.Keep)

	var commands []string
	for _, cmd := range root.Commands() {
		commands = append(commands, cmd.Name())
	}
	assert.ElementsMatch(t, []string{"aci", "status", "policy"}, commands)
}
