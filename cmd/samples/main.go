package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Azure/azure-mgmt-samples/pkg/env"
	utillog "github.com/Azure/azure-mgmt-samples/pkg/util/log"
)

var (
	gitCommit = "unknown"
)

func newRootCommand(log *logrus.Entry, cfg *viper.Viper) (*cobra.Command, error) {
	root := &cobra.Command{
		Use:           "samples",
		Short:         "Azure resource management samples",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return utillog.SetLevel(log, cfg.GetString(env.LogLevel))
		},
	}

	env.AddFlags(root.PersistentFlags())

	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	if err := cfg.BindPFlags(root.PersistentFlags()); err != nil {
		return nil, err
	}

	root.AddCommand(
		newACICommand(log, cfg),
		newStatusCommand(log, cfg),
		newPolicyCommand(log, cfg),
	)

	return root, nil
}

func main() {
	log := utillog.GetLogger()

	log.Printf("starting, git commit %s", gitCommit)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd, err := newRootCommand(log, viper.New())
	if err == nil {
		err = cmd.ExecuteContext(ctx)
	}

	if err != nil {
		log.Fatal(err)
	}
}
