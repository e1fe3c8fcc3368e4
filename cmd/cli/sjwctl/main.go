package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"time"

	sprintfLogging "github.com/core-tools/hsu-core/pkg/logging/sprintf"

	coreControl "github.com/core-tools/hsu-core/pkg/control"
	coreDomain "github.com/core-tools/hsu-core/pkg/domain"
	coreLogging "github.com/core-tools/hsu-core/pkg/logging"

	"github.com/core-tools/hsu-sjw/pkg/control"
	"github.com/core-tools/hsu-sjw/pkg/domain"
	"github.com/core-tools/hsu-sjw/pkg/logging"

	flags "github.com/jessevdk/go-flags"
)

type flagOptions struct {
	ServerPath  string `long:"server" description:"path to the server executable"`
	AttachPort  int    `long:"port" description:"port to attach to the server"`
	ClientToken string `long:"token" description:"client token recorded with mutating operations"`
	Since       string `long:"since" description:"logs: RFC3339 timestamp or duration back from now (e.g. 10m)"`
	Verbose     bool   `long:"verbose" short:"v" description:"log client activity"`

	Args struct {
		Command string `positional-arg-name:"command" description:"list, query, start, stop, restart, enable, disable, subscribe or logs"`
		ID      string `positional-arg-name:"id" description:"unit ID"`
	} `positional-args:"yes" required:"yes"`
}

func logPrefix(module string) string {
	return fmt.Sprintf("module: %s-client , ", module)
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

	if opts.ServerPath == "" && opts.AttachPort == 0 {
		fmt.Println("Server path or attach port is required")
		os.Exit(1)
	}

	debugf, infof := discard, discard
	if opts.Verbose {
		debugf, infof = logger.Debugf, logger.Infof
	}
	coreLogger := coreLogging.NewLogger(
		logPrefix("hsu-core"), coreLogging.LogFuncs{
			Debugf: debugf,
			Infof:  infof,
			Warnf:  logger.Warnf,
			Errorf: logger.Errorf,
		})
	sjwLogger := logging.NewLogger(
		logPrefix("sjw"), logging.LogFuncs{
			Debugf: debugf,
			Infof:  infof,
			Warnf:  logger.Warnf,
			Errorf: logger.Errorf,
		})

	coreConnectionOptions := coreControl.ConnectionOptions{
		ServerPath: opts.ServerPath,
		AttachPort: opts.AttachPort,
	}
	coreConnection, err := coreControl.NewConnection(coreConnectionOptions, coreLogger)
	if err != nil {
		logger.Errorf("Failed to create core connection: %v", err)
		os.Exit(1)
	}

	coreClientGateway := coreControl.NewGRPCClientGateway(coreConnection.GRPC(), coreLogger)
	client := control.NewGRPCClientGateway(coreConnection.GRPC(), sjwLogger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if opts.ClientToken != "" {
		ctx = domain.WithClientToken(ctx, opts.ClientToken)
	}

	retryPingOptions := coreDomain.RetryPingOptions{
		RetryAttempts: 10,
		RetryInterval: 1 * time.Second,
	}
	err = coreDomain.RetryPing(ctx, coreClientGateway, retryPingOptions, coreLogger)
	if err != nil {
		logger.Errorf("Failed to ping sjw server: %v", err)
		os.Exit(1)
	}

	if err := run(ctx, client, opts); err != nil {
		logger.Errorf("%s failed: %v", opts.Args.Command, err)
		os.Exit(1)
	}
}

func discard(string, ...interface{}) {}

func run(ctx context.Context, client domain.Contract, opts flagOptions) error {
	output := json.NewEncoder(os.Stdout)
	id := opts.Args.ID

	requireID := func() error {
		if id == "" {
			return fmt.Errorf("command %s requires a unit ID", opts.Args.Command)
		}
		return nil
	}

	operations := map[string]func(context.Context, string) (bool, error){
		"start":   client.Start,
		"stop":    client.Stop,
		"restart": client.Restart,
		"enable":  client.Enable,
		"disable": client.Disable,
	}

	switch opts.Args.Command {
	case "list":
		units, err := client.ListUnits(ctx)
		if err != nil {
			return err
		}
		return output.Encode(units)

	case "query":
		if err := requireID(); err != nil {
			return err
		}
		unit, err := client.Query(ctx, id)
		if err != nil {
			return err
		}
		return output.Encode(unit)

	case "start", "stop", "restart", "enable", "disable":
		if err := requireID(); err != nil {
			return err
		}
		accepted, err := operations[opts.Args.Command](ctx, id)
		if err != nil {
			return err
		}
		return output.Encode(map[string]interface{}{"id": id, "operation": opts.Args.Command, "accepted": accepted})

	case "subscribe":
		if err := requireID(); err != nil {
			return err
		}
		return client.Subscribe(ctx, domain.Topic(id), func(event domain.Event) error {
			return output.Encode(event)
		})

	case "logs":
		if err := requireID(); err != nil {
			return err
		}
		since, err := parseSince(opts.Since, time.Now())
		if err != nil {
			return err
		}
		return client.Logs(ctx, id, since, func(entry domain.LogEntry) error {
			return output.Encode(entry)
		})

	default:
		return fmt.Errorf("unknown command: %s", opts.Args.Command)
	}
}

// parseSince accepts an RFC3339 timestamp or a duration back from now. Empty
// means now.
func parseSince(value string, now time.Time) (time.Time, error) {
	if value == "" {
		return now, nil
	}
	if since, err := time.Parse(time.RFC3339, value); err == nil {
		return since, nil
	}
	back, err := time.ParseDuration(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid since value %q: want RFC3339 or a duration", value)
	}
	return now.Add(-back), nil
}
