// Command setup is the bootstrap of a bundled installer package.
// It extracts the installer from the package appended to its own executable, runs it with
// the package and the forwarded command line, and removes all temporary files afterwards.
// It always exits with status 0; failures are reported in a message box.
package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/maja42/bootstrap"
	"github.com/maja42/bootstrap/internal/config"
	"github.com/maja42/bootstrap/internal/dialog"
	"github.com/maja42/bootstrap/internal/logging"
	"github.com/maja42/bootstrap/internal/osversion"
)

func main() {
	defer func() {
		if err := logging.Close(); err != nil {
			log.Warnf("failed to close log file: %v", err)
		}
	}()

	if err := run(); err != nil {
		dialog.ShowError(bootstrap.UserMessage(err))
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := logging.Init(cfg.LogLevel, cfg.LogFile); err != nil {
		return err
	}

	ok, req, err := osversion.Supported()
	if err != nil {
		log.Warnf("unable to verify the OS version: %v", err)
	} else if !ok {
		return bootstrap.UnsupportedPlatform(req.Description)
	}

	args := bootstrap.ForwardedArgs()
	log.Infof("starting setup (args: %q)", args)
	return bootstrap.New(cfg.TempDir).Run(args)
}
