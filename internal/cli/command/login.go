package command

import "github.com/urfave/cli/v2"

// LoginCommand returns the login command.
func LoginCommand() *cli.Command {
	return &cli.Command{
		Name:  "login",
		Usage: "Obtain a session token from the management server",
		Description: `Presents the client certificate to the management server and prints
the issued token. A --token, if given, is resolved first so a stale
plist file is reported before any request is made.`,
		Action: runAction,
	}
}
