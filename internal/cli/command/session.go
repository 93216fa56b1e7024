package command

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/simianauth-go/internal/core/domain"
	"github.com/yndnr/simianauth-go/internal/core/service"
)

// runAction runs the session action named by the invoked command.
func runAction(c *cli.Context) error {
	rt, err := mustRuntime(c)
	if err != nil {
		return err
	}

	action, err := service.ParseAction(c.Command.Name)
	if err != nil {
		return err
	}

	svc, err := rt.SessionService()
	if err != nil {
		return err
	}

	result, err := svc.Run(rt.Context(), action, rt.Config.ToSessionConfig())
	if err != nil {
		return err
	}

	switch action {
	case service.ActionLogin:
		return printLogin(rt, result)
	default:
		if !rt.Quiet {
			fmt.Fprintln(rt.Out(), "Logged out.")
		}
		return nil
	}
}

func printLogin(rt *Runtime, result *domain.LoginResult) error {
	if rt.Quiet {
		_, err := fmt.Fprintln(rt.Out(), result.Token)
		return err
	}

	f, err := rt.Formatter()
	if err != nil {
		return err
	}
	return f.Format(rt.Out(), result)
}
