package containerinstance

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	sdkcontainerinstance "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerinstance/armcontainerinstance/v2"
	sdknetwork "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	sdkresources "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/resources/armresources"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/Azure/azure-mgmt-samples/pkg/provisioner"
	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient"
	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/armcontainerinstance"
	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/armnetwork"
	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/armresources"
	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient/azuresdk/azcore"
	"github.com/Azure/azure-mgmt-samples/pkg/util/stringutils"
)

const (
	DefaultImage      = "nginx"
	DefaultPort       = 80
	DefaultCPU        = 1.0
	DefaultMemoryInGB = 1.5

	addressPrefix  = "10.0.0.0/24"
	subnetName     = "default"
	delegationName = "Microsoft.ContainerInstance/containerGroups"
)

// Client manages the container groups of a single resource group.
type Client struct {
	log           *logrus.Entry
	resourceGroup string
	location      string

	resourceGroups  armresources.ResourceGroupsClient
	virtualNetworks armnetwork.VirtualNetworksClient
	containerGroups armcontainerinstance.ContainerGroupsClient
}

var _ provisioner.ResourceClient = &Client{}

// NewClient returns a Client using the given SDK clients.
func NewClient(log *logrus.Entry, resourceGroup, location string, resourceGroups armresources.ResourceGroupsClient, virtualNetworks armnetwork.VirtualNetworksClient, containerGroups armcontainerinstance.ContainerGroupsClient) *Client {
	return &Client{
		log:             log,
		resourceGroup:   resourceGroup,
		location:        location,
		resourceGroups:  resourceGroups,
		virtualNetworks: virtualNetworks,
		containerGroups: containerGroups,
	}
}

// NewClientFromEnvironment builds the SDK clients for subscriptionID in env
// and returns a Client using them. When sdkLog is not nil every ARM request
// is logged to it.
func NewClientFromEnvironment(log *logrus.Entry, sdkLog *logrus.Entry, env *azureclient.Environment, subscriptionID string, credential azcore.TokenCredential, resourceGroup, location string) (*Client, error) {
	options := env.ArmClientOptions(sdkLog)

	resourceGroups, err := armresources.NewResourceGroupsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	virtualNetworks, err := armnetwork.NewVirtualNetworksClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	containerGroups, err := armcontainerinstance.NewContainerGroupsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return NewClient(log, resourceGroup, location, resourceGroups, virtualNetworks, containerGroups), nil
}

// ResourceGroup returns the name of the resource group the client manages.
func (c *Client) ResourceGroup() string {
	return c.resourceGroup
}

// EnsureResourceGroup creates the resource group, or updates it if it
// exists.
func (c *Client) EnsureResourceGroup(ctx context.Context) error {
	c.log.Infof("creating resource group %s in %s", c.resourceGroup, c.location)

	_, err := c.resourceGroups.CreateOrUpdate(ctx, c.resourceGroup, sdkresources.ResourceGroup{
		Location: to.Ptr(c.location),
	}, nil)
	return errors.Wrapf(err, "creating resource group %s", c.resourceGroup)
}

// EnsureNetwork creates a virtual network holding a single subnet delegated
// to container groups, and returns the subnet ID.
func (c *Client) EnsureNetwork(ctx context.Context, vnetName string) (string, error) {
	c.log.Infof("creating virtual network %s", vnetName)

	vnet, err := c.virtualNetworks.CreateOrUpdateAndWait(ctx, c.resourceGroup, vnetName, virtualNetwork(c.location), nil)
	if err != nil {
		return "", errors.Wrapf(err, "creating virtual network %s", vnetName)
	}

	if vnet.Properties != nil {
		for _, subnet := range vnet.Properties.Subnets {
			if subnet != nil && subnet.Name != nil && *subnet.Name == subnetName && subnet.ID != nil {
				return *subnet.ID, nil
			}
		}
	}

	return "", fmt.Errorf("virtual network %s has no subnet %s", vnetName, subnetName)
}

func (c *Client) Create(ctx context.Context, req provisioner.ResourceRequest) (provisioner.Operation, error) {
	location := req.Location
	if location == "" {
		location = c.location
	}

	poller, err := c.containerGroups.BeginCreateOrUpdate(ctx, c.resourceGroup, req.Name, containerGroup(req.Name, location, req.Spec), nil)
	if err != nil {
		return nil, err
	}

	return newPollerOperation(poller), nil
}

func (c *Client) Start(ctx context.Context, name string) (provisioner.Operation, error) {
	poller, err := c.containerGroups.BeginStart(ctx, c.resourceGroup, name, nil)
	if err != nil {
		return nil, err
	}

	return newPollerOperation(poller), nil
}

// Stop stops the container group. Stopping is synchronous on the service
// side, so the returned operation has already completed.
func (c *Client) Stop(ctx context.Context, name string) (provisioner.Operation, error) {
	_, err := c.containerGroups.Stop(ctx, c.resourceGroup, name, nil)
	if err != nil {
		return nil, err
	}

	return completedOperation{status: provisioner.StatusSucceeded}, nil
}

func (c *Client) ProvisioningState(ctx context.Context, name string) (string, error) {
	cg, err := c.containerGroups.Get(ctx, c.resourceGroup, name, nil)
	if err != nil {
		return "", err
	}

	if cg.Properties == nil || cg.Properties.ProvisioningState == nil {
		return "", nil
	}

	return *cg.Properties.ProvisioningState, nil
}

func (c *Client) DeleteGroup(ctx context.Context, groupName string) error {
	return c.resourceGroups.DeleteAndWait(ctx, groupName, nil)
}

func virtualNetwork(location string) sdknetwork.VirtualNetwork {
	return sdknetwork.VirtualNetwork{
		Location: to.Ptr(location),
		Properties: &sdknetwork.VirtualNetworkPropertiesFormat{
			AddressSpace: &sdknetwork.AddressSpace{
				AddressPrefixes: []*string{to.Ptr(addressPrefix)},
			},
			Subnets: []*sdknetwork.Subnet{
				{
					Name: to.Ptr(subnetName),
					Properties: &sdknetwork.SubnetPropertiesFormat{
						AddressPrefix: to.Ptr(addressPrefix),
						Delegations: []*sdknetwork.Delegation{
							{
								Name: to.Ptr(delegationName),
								Properties: &sdknetwork.ServiceDelegationPropertiesFormat{
									ServiceName: to.Ptr(delegationName),
								},
							},
						},
					},
				},
			},
		},
	}
}

// containerGroup returns a Linux container group running a single container
// named after the group. Zero fields of spec take their defaults.
func containerGroup(name, location string, spec provisioner.ContainerSpec) sdkcontainerinstance.ContainerGroup {
	if spec.Image == "" {
		spec.Image = DefaultImage
	}
	if spec.Port == 0 {
		spec.Port = DefaultPort
	}
	if spec.CPU == 0 {
		spec.CPU = DefaultCPU
	}
	if spec.MemoryInGB == 0 {
		spec.MemoryInGB = DefaultMemoryInGB
	}

	cg := sdkcontainerinstance.ContainerGroup{
		Location: to.Ptr(location),
		Properties: &sdkcontainerinstance.ContainerGroupPropertiesProperties{
			OSType:        to.Ptr(sdkcontainerinstance.OperatingSystemTypesLinux),
			RestartPolicy: to.Ptr(sdkcontainerinstance.ContainerGroupRestartPolicyAlways),
			Containers: []*sdkcontainerinstance.Container{
				{
					Name: to.Ptr(name),
					Properties: &sdkcontainerinstance.ContainerProperties{
						Image: to.Ptr(spec.Image),
						Ports: []*sdkcontainerinstance.ContainerPort{
							{
								Port:     to.Ptr(spec.Port),
								Protocol: to.Ptr(sdkcontainerinstance.ContainerNetworkProtocolTCP),
							},
						},
						Resources: &sdkcontainerinstance.ResourceRequirements{
							Requests: &sdkcontainerinstance.ResourceRequests{
								CPU:        to.Ptr(spec.CPU),
								MemoryInGB: to.Ptr(spec.MemoryInGB),
							},
						},
					},
				},
			},
		},
	}

	if spec.SubnetID != "" {
		cg.Properties.SubnetIDs = []*sdkcontainerinstance.ContainerGroupSubnetID{
			{
				ID:   to.Ptr(spec.SubnetID),
				Name: to.Ptr(stringutils.LastTokenByte(spec.SubnetID, '/')),
			},
		}
		cg.Properties.IPAddress = &sdkcontainerinstance.IPAddress{
			Type: to.Ptr(sdkcontainerinstance.ContainerGroupIPAddressTypePrivate),
			Ports: []*sdkcontainerinstance.Port{
				{
					Port:     to.Ptr(spec.Port),
					Protocol: to.Ptr(sdkcontainerinstance.ContainerGroupNetworkProtocolTCP),
				},
			},
		}
	}

	return cg
}
