package command

import "github.com/urfave/cli/v2"

// LogoutCommand returns the logout command.
func LogoutCommand() *cli.Command {
	return &cli.Command{
		Name:  "logout",
		Usage: "Release a session token",
		Description: `Releases the token given with --token. The value may be the token
itself or a plist file whose AdditionalHttpHeaders carry it as a cookie.`,
		Action: runAction,
	}
}
