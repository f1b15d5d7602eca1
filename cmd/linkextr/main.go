package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/linkextr/cmd/linkextr/commands"
	ferrors "git.home.luguber.info/inful/linkextr/internal/foundation/errors"
	"git.home.luguber.info/inful/linkextr/internal/version"
)

func main() {
	cli := &commands.CLI{}
	parser := kong.Parse(cli,
		kong.Name("linkextr"),
		kong.Description("Extract and normalize the links of Markdown documents."),
		kong.UsageOnError(),
		kong.Vars{"version": version.String()},
	)

	err := parser.Run(&commands.Global{
		Logger: slog.Default(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
	})
	ferrors.NewCLIErrorAdapter(cli.Verbose, slog.Default()).HandleError(err)
}
