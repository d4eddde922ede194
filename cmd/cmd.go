package cmd

import (
	"fmt"

	"github.com/urfave/cli"
)

// BuildArgs carries build-time metadata injected through ldflags.
type BuildArgs struct {
	Version   string
	Commit    string
	Date      string
	BuildType string
}

func Execute(args []string, buildArgs BuildArgs) error {
	if buildArgs.Version == "" {
		buildArgs.Version = "dev"
	}
	versionCmdStr = fmt.Sprintf("snag %s (%s, built %s, commit %s)",
		buildArgs.Version, buildArgs.BuildType, buildArgs.Date, buildArgs.Commit)

	app := cli.App{
		Name:         "Snag",
		HelpName:     "snag",
		Usage:        "a concurrent downloader with browser cookie support",
		Version:      fmt.Sprintf("%s-%s", buildArgs.Version, buildArgs.BuildType),
		UsageText:    "snag [options] <url> [<url>...]",
		OnUsageError: usageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "download",
				Aliases:                []string{"d"},
				Usage:                  "download one or more urls",
				Action:                 download,
				OnUsageError:           usageErrorCallback,
				Flags:                  dlFlags,
				UseShortOptionHandling: true,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  help,
			},
			{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "prints installed version of snag",
				Action:  getVersion,
			},
		},
		Action:                 download,
		Flags:                  dlFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	return app.Run(args)
}
