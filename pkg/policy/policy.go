package policy

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"encoding/json"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	sdkpolicy "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armpolicy"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/armpolicy"
	azuresdkerrors "github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/errors"
)

const (
	DefaultName = "policyName"

	// names must match [concat(parameters('prefix'),'*',parameters('suffix'))]
	rule = `{"if":{"not":{"field":"name","like":"[concat(parameters('prefix'),'*',parameters('suffix'))]"}},"then":{"effect":"deny"}}`
)

// Sample creates a custom policy definition and deletes it again.
type Sample struct {
	log         *logrus.Entry
	definitions armpolicy.DefinitionsClient
}

func NewSample(log *logrus.Entry, definitions armpolicy.DefinitionsClient) *Sample {
	return &Sample{
		log:         log,
		definitions: definitions,
	}
}

// Definition returns the custom policy definition denying resources whose
// name lacks the configured prefix and suffix.
func Definition() (sdkpolicy.Definition, error) {
	var policyRule map[string]interface{}
	err := json.Unmarshal([]byte(rule), &policyRule)
	if err != nil {
		return sdkpolicy.Definition{}, err
	}

	return sdkpolicy.Definition{
		Properties: &sdkpolicy.DefinitionProperties{
			DisplayName: to.Ptr("displayName"),
			Description: to.Ptr("description"),
			PolicyType:  to.Ptr(sdkpolicy.PolicyTypeCustom),
			Mode:        to.Ptr("All"),
			Metadata: map[string]interface{}{
				"category": "Compute",
			},
			PolicyRule: policyRule,
			Parameters: map[string]*sdkpolicy.ParameterDefinitionsValue{
				"prefix": {
					Type:         to.Ptr(sdkpolicy.ParameterTypeString),
					DefaultValue: "dept",
				},
				"suffix": {
					Type:         to.Ptr(sdkpolicy.ParameterTypeString),
					DefaultValue: "-US",
				},
			},
		},
	}, nil
}

// Run creates the policy definition called name, logs its rule and deletes
// it.
func (s *Sample) Run(ctx context.Context, name string) error {
	definition, err := Definition()
	if err != nil {
		return err
	}

	resp, err := s.definitions.CreateOrUpdate(ctx, name, definition, nil)
	if err != nil {
		return errors.Wrapf(err, "creating policy definition %s", name)
	}

	var created interface{}
	if resp.Properties != nil {
		created = resp.Properties.PolicyRule
	}

	b, err := json.Marshal(created)
	if err != nil {
		return err
	}

	s.log.Infof("policy definition %s created, rule: %s", name, string(b))
	s.log.Debug(spew.Sdump(resp.Definition))

	err = s.Delete(ctx, name)
	if err != nil {
		return err
	}

	s.log.Infof("policy definition %s deleted", name)
	return nil
}

// Delete deletes the policy definition called name. A definition which does
// not exist is not an error.
func (s *Sample) Delete(ctx context.Context, name string) error {
	_, err := s.definitions.Delete(ctx, name, nil)
	if azuresdkerrors.IsNotFoundError(err) {
		return nil
	}
	return errors.Wrapf(err, "deleting policy definition %s", name)
}
