package cmd

import "github.com/urfave/cli"

var (
	browserName string
	autoDetect  bool
	cookieFile  string
	noCookies   bool
	dlPath      string
	userAgent   string

	dlFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "browser, b",
			Usage:       "read cookies from a specific browser (chrome, firefox, safari, edge)",
			Destination: &browserName,
		},
		cli.BoolFlag{
			Name:        "auto-detect, a",
			Usage:       "use the first available browser in priority order",
			Destination: &autoDetect,
		},
		cli.StringFlag{
			Name:        "cookie-file, c",
			Usage:       "read cookies from a netscape-format cookies.txt file",
			Destination: &cookieFile,
		},
		cli.BoolFlag{
			Name:        "no-cookies, n",
			Usage:       "do not send cookies with requests",
			Destination: &noCookies,
		},
		cli.StringFlag{
			Name:        "download-path, l",
			Usage:       "set the path where downloaded files should be saved",
			Destination: &dlPath,
		},
		cli.StringFlag{
			Name:        "user-agent, u",
			Usage:       "set a custom user agent for requests",
			Destination: &userAgent,
		},
	}
)
