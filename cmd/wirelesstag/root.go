package main

import (
	"os"
	"strings"

	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/entities"
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/gateways/nodeserver"
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/logging"
	"github.com/janael-pinheiro/wirelesstag-sdk-golang/pkg/utils"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const logLevelKey = "logLevel"

// cli holds the state shared by the commands of one invocation.
type cli struct {
	cfgFile   string
	nodesFile string
	v         *viper.Viper
}

func newCLI() *cli {
	return &cli{v: viper.New()}
}

func newRootCmd() *cobra.Command {
	return newCLI().command()
}

func (c *cli) command() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "wirelesstag",
		Short:        "Project Wireless Sensor Tag payloads onto controller node drivers",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.initConfig()
		},
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.cfgFile, "config", "", "integration configuration file (YAML)")
	flags.StringVar(&c.nodesFile, "nodes", "", "persisted nodes file (YAML)")
	flags.String("log-level", "", "log level, overrides LOG_LEVEL and the configuration")
	cobra.CheckErr(c.v.BindPFlag(logLevelKey, flags.Lookup("log-level")))
	c.v.SetDefault(logLevelKey, "info")

	rootCmd.AddCommand(c.replayCmd(), c.commandCmd())
	return rootCmd
}

func (c *cli) replayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "replay [payload.json...]",
		Short: "Feed tag manager payloads through the controller and log the driver updates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, log, err := c.newController()
			if err != nil {
				return err
			}
			for _, path := range args {
				body, err := os.ReadFile(path)
				if err != nil {
					return errors.Wrapf(err, "read %s", path)
				}
				log.Infof("replaying %s", path)
				if err := controller.HandlePayload(body); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func (c *cli) commandCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "command [DON|DOF] [address]",
		Short: "Send a command to a restored node",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			controller, _, err := c.newController()
			if err != nil {
				return err
			}
			return controller.HandleCommand(args[0], args[1])
		},
	}
}

func (c *cli) initConfig() error {
	c.v.SetEnvPrefix("wirelesstag")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()
	if err := c.v.BindEnv(logLevelKey, "LOG_LEVEL"); err != nil {
		return errors.Wrap(err, "bind LOG_LEVEL")
	}
	if c.cfgFile == "" {
		return nil
	}
	c.v.SetConfigFile(c.cfgFile)
	if err := c.v.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "read configuration %s", c.cfgFile)
	}
	return nil
}

// configuration resolves the log level as flag, then LOG_LEVEL, then the
// configuration file, then "info".
func (c *cli) configuration() (entities.IntegrationConfig, error) {
	conf := entities.IntegrationConfig{}
	if err := c.v.Unmarshal(&conf); err != nil {
		return conf, errors.Wrap(err, "decode configuration")
	}
	conf.LogLevel = c.v.GetString(logLevelKey)
	return conf, nil
}

func (c *cli) newController() (*nodeserver.Controller, *logrus.Entry, error) {
	conf, err := c.configuration()
	if err != nil {
		return nil, nil, err
	}
	logger := logging.NewLogrus(conf.LogLevel, os.Stdout)

	controller, err := nodeserver.NewController(conf, nodeserver.NewLogReporter(logger.Get("reporter")), logger.Get("controller"))
	if err != nil {
		return nil, nil, err
	}
	if c.nodesFile != "" {
		data, err := utils.ConfigurationParser(c.nodesFile, []entities.NodeData{})
		if err != nil {
			return nil, nil, err
		}
		if err := controller.RestoreNodes(data); err != nil {
			return nil, nil, err
		}
	}
	return controller, logger.Get("main"), nil
}
