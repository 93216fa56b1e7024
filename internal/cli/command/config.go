package command

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/simianauth-go/internal/cli/config"
	"github.com/yndnr/simianauth-go/internal/cli/output"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective configuration",
				Action: configShow,
			},
			{
				Name:   "validate",
				Usage:  "Validate the effective configuration",
				Action: configValidate,
			},
			{
				Name:  "init",
				Usage: "Write the effective configuration to the config file",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "force",
						Aliases: []string{"f"},
						Usage:   "Overwrite an existing file",
					},
				},
				Action: configInit,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	// The table formatter cannot render nested sections, so show YAML.
	format, err := output.ParseFormat(rt.Config.Output.Format)
	if err != nil || format == output.FormatTable {
		format = output.FormatYAML
	}

	if !rt.Quiet {
		fmt.Fprintf(rt.Out(), "# Config file: %s\n", rt.ConfigPath)
	}

	return output.NewFormatter(format).Format(rt.Out(), rt.Config.Sanitized())
}

func configValidate(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	if err := rt.Config.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(rt.Out(), "Configuration is valid: %s\n", rt.ConfigPath)
	return nil
}

func configInit(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	if _, err := os.Stat(rt.ConfigPath); err == nil && !c.Bool("force") {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", rt.ConfigPath)
	}
	if err := rt.Config.Validate(); err != nil {
		return err
	}

	if err := config.Save(rt.Config, rt.ConfigPath); err != nil {
		return err
	}

	fmt.Fprintf(rt.Out(), "Wrote %s\n", rt.ConfigPath)
	return nil
}
