package main

import (
	"testing"

	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testConfig  = "../../pkg/gateways/nodeserver/testdata/integration.yaml"
	testPayload = "../../pkg/gateways/nodeserver/testdata/taglist.json"
	testNodes   = "../../pkg/utils/testdata/nodes.yaml"
)

func resolveConfiguration(t *testing.T, args ...string) entities.IntegrationConfig {
	t.Helper()
	c := newCLI()
	require.NoError(t, c.command().ParseFlags(args))
	require.NoError(t, c.initConfig())
	conf, err := c.configuration()
	require.NoError(t, err)
	return conf
}

func TestConfigurationDefaults(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	conf := resolveConfiguration(t)

	assert.Equal(t, "info", conf.LogLevel)
	assert.Equal(t, entities.Fahrenheit, conf.Unit())
}

func TestConfigurationFromFile(t *testing.T) {
	expected, err := utils.ConfigurationParser(testConfig, entities.IntegrationConfig{})
	require.NoError(t, err)
	t.Setenv("LOG_LEVEL", "")

	conf := resolveConfiguration(t, "--config", testConfig)

	assert.Equal(t, expected, conf)
}

func TestConfigurationWhenPrefixedEnvThenOverridesFile(t *testing.T) {
	t.Setenv("WIRELESSTAG_TEMPERATUREUNIT", "C")

	conf := resolveConfiguration(t, "--config", testConfig)

	assert.Equal(t, entities.Celsius, conf.Unit())
}

func TestConfigurationWhenLogLevelEnvThenOverridesFile(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	conf := resolveConfiguration(t, "--config", testConfig)

	assert.Equal(t, "warn", conf.LogLevel)
}

func TestConfigurationWhenLogLevelFlagThenOverridesEnv(t *testing.T) {
	t.Setenv("LOG_LEVEL", "warn")

	conf := resolveConfiguration(t, "--config", testConfig, "--log-level", "error")

	assert.Equal(t, "error", conf.LogLevel)
}

func TestReplay(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"replay", "--config", testConfig, "--log-level", "error", testPayload})
	assert.NoError(t, cmd.Execute())
}

func TestReplayWhenMissingPayloadThenError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"replay", "--config", testConfig, "--log-level", "error", "missing.json"})
	assert.Error(t, cmd.Execute())
}

func TestReplayWhenMissingConfigThenError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"replay", "--config", "missing.yaml", "--log-level", "error", testPayload})
	assert.Error(t, cmd.Execute())
}

func TestCommandOnRestoredNode(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"command", "--config", testConfig, "--nodes", testNodes, "--log-level", "error", "DON", "88e4d7829ed3fe"})
	assert.NoError(t, cmd.Execute())
}

func TestCommandWithoutNodesThenError(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"command", "--config", testConfig, "--log-level", "error", "DON", "88e4d7829ed3fe"})
	assert.Error(t, cmd.Execute())
}
