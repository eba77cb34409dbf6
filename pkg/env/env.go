package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Azure/azure-mgmt-samples/pkg/util/azureclient"
)

// Configuration keys. Each can be set by flag, or by environment variable
// with dashes replaced by underscores, e.g. RESOURCE_COUNT.
const (
	SubscriptionID   = "azure-subscription-id"
	AzureEnvironment = "azure-environment"
	ResourceCount    = "resource-count"
	Location         = "location"
	PollInterval     = "poll-interval"
	Timeout          = "timeout"
	Concurrency      = "concurrency"
	ResourceGroup    = "resource-group"
	NamePrefix       = "name-prefix"
	Image            = "image"
	Port             = "port"
	VNetName         = "vnet-name"
	Keep             = "keep"
	PolicyName       = "policy-name"
	MetricsTextfile  = "metrics-textfile"
	SDKLogging       = "sdk-logging"
	LogLevel         = "log-level"

	resourceGroupPrefix = "rg-aci-"

	minPollInterval = time.Second
)

// Config is the validated configuration of a run.
type Config struct {
	SubscriptionID string
	Environment    azureclient.Environment

	ResourceCount int
	Location      string
	PollInterval  time.Duration
	Timeout       time.Duration
	Concurrency   int
	ResourceGroup string
	NamePrefix    string
	Image         string
	Port          int32
	VNetName      string
	Keep          bool

	PolicyName string

	MetricsTextfile string
	SDKLogging      bool
	LogLevel        string
}

// AddFlags registers the flags of every configuration key with its default.
func AddFlags(flags *pflag.FlagSet) {
	flags.String(AzureEnvironment, "AzurePublicCloud", "Azure cloud environment")
	flags.Int(ResourceCount, 10, "number of container groups to provision")
	flags.String(Location, "westus3", "Azure region")
	flags.Duration(PollInterval, 5*time.Second, "interval between polls of a long-running operation")
	flags.Duration(Timeout, 0, "maximum wait for each long-running operation, 0 to wait indefinitely")
	flags.Int(Concurrency, 0, "maximum resources processed at once, 0 for no limit")
	flags.String(ResourceGroup, "", "resource group, "+resourceGroupPrefix+"<random> if empty")
	flags.String(NamePrefix, "aci-name", "container group name prefix")
	flags.String(Image, "nginx", "container image")
	flags.Int32(Port, 80, "container port")
	flags.String(VNetName, "vnet-aci", "virtual network name")
	flags.Bool(Keep, false, "keep the resource group at the end of the run")
	flags.String(PolicyName, "policyName", "policy definition name")
	flags.String(MetricsTextfile, "", "write metrics in Prometheus text format to this file")
	flags.Bool(SDKLogging, false, "log Azure SDK HTTP traffic")
	flags.String(LogLevel, "info", "log level")
}

// ValidateVars returns an error if any of vars is unset in cfg.
func ValidateVars(cfg *viper.Viper, vars ...string) error {
	for _, v := range vars {
		if cfg.GetString(v) == "" {
			return fmt.Errorf("environment variable %q unset", envName(v))
		}
	}

	return nil
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}

// NewConfig reads and validates the configuration held by cfg.
func NewConfig(cfg *viper.Viper) (*Config, error) {
	if err := ValidateVars(cfg, SubscriptionID); err != nil {
		return nil, err
	}

	environment, err := azureclient.EnvironmentFromName(cfg.GetString(AzureEnvironment))
	if err != nil {
		return nil, err
	}

	pollInterval, err := getDuration(cfg, PollInterval)
	if err != nil {
		return nil, err
	}

	timeout, err := getDuration(cfg, Timeout)
	if err != nil {
		return nil, err
	}

	c := &Config{
		SubscriptionID:  cfg.GetString(SubscriptionID),
		Environment:     environment,
		ResourceCount:   cfg.GetInt(ResourceCount),
		Location:        cfg.GetString(Location),
		PollInterval:    pollInterval,
		Timeout:         timeout,
		Concurrency:     cfg.GetInt(Concurrency),
		ResourceGroup:   cfg.GetString(ResourceGroup),
		NamePrefix:      cfg.GetString(NamePrefix),
		Image:           cfg.GetString(Image),
		Port:            cfg.GetInt32(Port),
		VNetName:        cfg.GetString(VNetName),
		Keep:            cfg.GetBool(Keep),
		PolicyName:      cfg.GetString(PolicyName),
		MetricsTextfile: cfg.GetString(MetricsTextfile),
		SDKLogging:      cfg.GetBool(SDKLogging),
		LogLevel:        cfg.GetString(LogLevel),
	}

	if c.ResourceGroup == "" {
		c.ResourceGroup = resourceGroupPrefix + uuid.NewString()[:8]
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Config) validate() error {
	switch {
	case c.ResourceCount < 0:
		return fmt.Errorf("invalid %s %d: must not be negative", ResourceCount, c.ResourceCount)
	case c.Location == "":
		return fmt.Errorf("%s must be set", Location)
	case c.PollInterval < minPollInterval:
		return fmt.Errorf("invalid %s %s: must be at least %s", PollInterval, c.PollInterval, minPollInterval)
	case c.Timeout < 0:
		return fmt.Errorf("invalid %s %s: must not be negative", Timeout, c.Timeout)
	case c.Concurrency < 0:
		return fmt.Errorf("invalid %s %d: must not be negative", Concurrency, c.Concurrency)
	case c.Port < 1 || c.Port > 65535:
		return fmt.Errorf("invalid %s %d", Port, c.Port)
	case c.NamePrefix == "":
		return fmt.Errorf("%s must be set", NamePrefix)
	}

	return nil
}

// getDuration reads key as a duration. A bare number counts seconds, so
// POLL_INTERVAL=5 means five seconds.
func getDuration(cfg *viper.Viper, key string) (time.Duration, error) {
	s := strings.TrimSpace(cfg.GetString(key))
	if s == "" {
		return 0, nil
	}

	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %v", key, s, err)
	}

	return d, nil
}

// Names returns the container group names of the batch, in order.
func (c *Config) Names() []string {
	names := make([]string, 0, c.ResourceCount)
	for i := 0; i < c.ResourceCount; i++ {
		names = append(names, fmt.Sprintf("%s%d", c.NamePrefix, i))
	}
	return names
}
