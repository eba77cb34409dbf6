package steps

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-mgmt-samples/pkg/util/stringutils"
)

// actionFunction is a function that takes a context and returns an error.
//
// Suitable for performing tasks.
type actionFunction func(context.Context) error

// Action returns a Step which will execute the action function `f`. Errors from
// `f` are returned directly.
func Action(f actionFunction) Step {
	return actionStep{f: f}
}

// NamedAction is an Action reported under name rather than the name of `f`.
// Use it for closures.
func NamedAction(name string, f actionFunction) Step {
	return actionStep{f: f, name: name}
}

type actionStep struct {
	f    actionFunction
	name string
}

func (s actionStep) run(ctx context.Context, log *logrus.Entry) error {
	return s.f(ctx)
}

func (s actionStep) String() string {
	return fmt.Sprintf("[Action %s]", s.displayName())
}

func (s actionStep) MetricsTopic() string {
	return "action." + strings.ToLower(stringutils.LastTokenByte(s.displayName(), '.'))
}

func (s actionStep) displayName() string {
	if s.name != "" {
		return s.name
	}
	return friendlyName(s.f)
}
