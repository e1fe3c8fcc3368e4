package main

import (
	"fmt"
	"os"

	sprintfLogging "github.com/core-tools/hsu-core/pkg/logging/sprintf"

	coreLogging "github.com/core-tools/hsu-core/pkg/logging"
	"github.com/core-tools/hsu-sjw/pkg/daemon"
	"github.com/core-tools/hsu-sjw/pkg/logging"

	flags "github.com/jessevdk/go-flags"
)

type flagOptions struct {
	Config      string `long:"config" short:"c" description:"path to the YAML configuration file" required:"true"`
	RunDuration int    `long:"run-duration" description:"stop after this many seconds (0 runs until signalled)"`
	Validate    bool   `long:"validate" description:"validate the configuration file and exit"`
}

func logPrefix(module string) string {
	return fmt.Sprintf("module: %s-server , ", module)
}

func main() {
	var opts flagOptions
	var argv []string = os.Args[1:]
	var parser = flags.NewParser(&opts, flags.HelpFlag)
	var err error
	_, err = parser.ParseArgs(argv)
	if err != nil {
		fmt.Printf("Command line flags parsing failed: %v\n", err)
		os.Exit(1)
	}

	logger := sprintfLogging.NewStdSprintfLogger()

	logger.Infof("opts: %+v", opts)

	if opts.Validate {
		if err := daemon.ValidateConfigFile(opts.Config); err != nil {
			logger.Errorf("Configuration is invalid: %v", err)
			os.Exit(1)
		}
		logger.Infof("Configuration is valid: %s", opts.Config)
		return
	}

	config, err := daemon.LoadConfigFromFile(opts.Config)
	if err != nil {
		logger.Errorf("Failed to load configuration: %v", err)
		os.Exit(1)
	}
	if err := daemon.ValidateConfig(config); err != nil {
		logger.Errorf("Configuration validation failed: %v", err)
		os.Exit(1)
	}

	backend, err := logging.NewZapBackend(config.Logging)
	if err != nil {
		logger.Errorf("Failed to create logger: %v", err)
		os.Exit(1)
	}
	defer func() {
		_ = backend.Sync()
	}()

	logger.Infof("Starting...")

	base := backend.Logger("")
	coreLogger := coreLogging.NewLogger(
		logPrefix("hsu-core"), coreLogging.LogFuncs{
			Debugf: base.Debugf,
			Infof:  base.Infof,
			Warnf:  base.Warnf,
			Errorf: base.Errorf,
		})
	daemonLogger := backend.Logger(logPrefix("sjw"))

	if err := daemon.Run(opts.RunDuration, config, coreLogger, daemonLogger); err != nil {
		daemonLogger.Errorf("Daemon failed: %v", err)
		_ = backend.Sync()
		os.Exit(1)
	}
}
