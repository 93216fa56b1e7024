package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/simianauth-go/internal/core/domain"
	"github.com/yndnr/simianauth-go/internal/core/service"
	"github.com/yndnr/simianauth-go/internal/telemetry/metric"
)

// TokenCommand returns the token subcommand group.
func TokenCommand() *cli.Command {
	return &cli.Command{
		Name:  "token",
		Usage: "Token utilities",
		Subcommands: []*cli.Command{
			{
				Name:      "resolve",
				Usage:     "Print the token a --token value resolves to",
				ArgsUsage: "[TOKEN_OR_FILE]",
				Action:    runTokenResolve,
			},
		},
	}
}

// resolvedToken is the token resolve result.
type resolvedToken struct {
	Token  string `json:"token" yaml:"token"`
	Source string `json:"source" yaml:"source"`
	Input  string `json:"input" yaml:"input"`
}

func runTokenResolve(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	input := c.Args().First()
	if input == "" {
		input = rt.Config.Auth.Token
	}
	if input == "" {
		return domain.ErrTokenMissing
	}

	resolver, err := rt.Resolver()
	if err != nil {
		return err
	}

	token, found := resolver.Resolve(rt.Context(), input)
	if !found {
		return domain.ErrTokenFileUnresolved.WithDetails(input)
	}

	if rt.Quiet {
		_, err := fmt.Fprintln(rt.Out(), token)
		return err
	}

	source := metric.SourceLiteral
	if service.IsTokenFile(input) {
		source = metric.SourceFile
	}

	f, err := rt.Formatter()
	if err != nil {
		return err
	}
	return f.Format(rt.Out(), resolvedToken{Token: token, Source: source, Input: input})
}
