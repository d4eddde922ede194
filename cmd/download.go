package cmd

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/urfave/cli"
	"github.com/vbauerster/mpb/v8"

	"github.com/snagdl/snag/internal/browser"
	"github.com/snagdl/snag/internal/cookiejar"
	"github.com/snagdl/snag/pkg/logger"
	"github.com/snagdl/snag/pkg/snaglib"
)

func download(ctx *cli.Context) error {
	urls := make([]string, 0, len(ctx.Args()))
	for _, arg := range ctx.Args() {
		arg = strings.TrimSpace(arg)
		if arg != "" {
			urls = append(urls, arg)
		}
	}
	if len(urls) == 0 {
		if ctx.Command.Name == "" {
			return help(ctx)
		}
		return printErrWithCmdHelp(ctx, errors.New("no url provided"))
	}
	if urls[0] == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}

	slog := logger.NewStandardLogger(log.New(os.Stderr, "", log.LstdFlags))
	defer slog.Close()

	var cookies snaglib.CookieProvider
	if !noCookies {
		source, err := selectSource(slog)
		if err != nil {
			printRuntimeErr(ctx, "download", "cookies", err)
			return err
		}
		if source != nil {
			slog.Info("using cookies from %s", source.Kind())
			cookies = cookiejar.NewProvider(source, slog)
		}
	}

	if dlPath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			printRuntimeErr(ctx, "download", "getwd", err)
			return err
		}
		dlPath = cwd
	}

	p := mpb.New(mpb.WithWidth(64))
	bars := newBarSet(p)

	o := snaglib.NewOrchestrator(&http.Client{}, &snaglib.OrchestratorOpts{
		Cookies:           cookies,
		DownloadDirectory: dlPath,
		UserAgent:         userAgent,
		Handlers:          bars.handlers(),
		Logger:            slog,
	})
	jobs, err := o.Run(urls)
	p.Wait()

	for _, job := range jobs {
		if job.Status == snaglib.StatusSucceeded {
			fmt.Printf("saved %s (%d bytes)\n", job.Name, job.BytesWritten)
		}
	}
	if err != nil {
		printRuntimeErr(ctx, "download", "run", err)
		return cli.NewExitError("", 1)
	}
	return nil
}

// selectSource applies the cookie flag policy. A nil source with a nil
// error means "proceed without cookies".
//
// Failures are fatal when the user asked for cookies explicitly
// (--browser, --auto-detect, --cookie-file). With no flags at all the
// default resolution may find no browser; that only warrants a warning.
func selectSource(slog logger.Logger) (browser.Source, error) {
	switch {
	case cookieFile != "":
		return browser.NewFileSource(cookieFile), nil
	case browserName != "":
		kind, err := browser.ParseKind(browserName)
		if err != nil {
			return nil, err
		}
		return browser.Resolve(kind)
	case autoDetect:
		return browser.ResolveAuto()
	default:
		source, err := browser.ResolveDefault()
		if err != nil {
			var nbe *browser.NoBrowsersError
			if errors.As(err, &nbe) {
				slog.Warning("no browser cookie store found, downloading without cookies")
				return nil, nil
			}
			return nil, err
		}
		return source, nil
	}
}
