package commands

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/haivivi/kling/pkg/cli"
	"github.com/haivivi/kling/pkg/kling"
)

const appName = "kling"

// usageCommands is the command table printed on usage errors.
var usageCommands = []cli.UsageCommand{
	{Use: "account", Short: "Get account info"},
	{Use: "video <prompt>", Short: "Create text-to-video"},
	{Use: "image2video <image> <prompt>", Short: "Create image-to-video"},
	{Use: "status <task_id>", Short: "Check task status"},
	{Use: "tasks", Short: "List tasks"},
	{Use: "config path|view", Short: "Show credentials location"},
}

// usageError reports a command line mistake. It is printed as usage text
// rather than as an error.
type usageError struct {
	msg      string
	synopsis string
}

func (e *usageError) Error() string {
	return e.msg
}

func newUsageError(synopsis, format string, args ...any) error {
	return &usageError{msg: fmt.Sprintf(format, args...), synopsis: synopsis}
}

// app holds the state of one invocation: global flags and derived values.
type app struct {
	credentialsPath string
	baseURL         string
	timeout         time.Duration
	outputFile      string
	format          string
	jq              string
	verbose         bool

	stdout io.Writer
	stderr io.Writer
	log    *slog.Logger
}

// Execute runs the CLI with the process arguments and returns the exit code.
func Execute() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes one command and returns the process exit code: 0 on success,
// 1 on usage, configuration or request errors.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	root := a.rootCommand()
	if args == nil {
		// cobra falls back to os.Args on nil
		args = []string{}
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var uerr *usageError
	if errors.As(err, &uerr) {
		a.printUsage(uerr.synopsis, uerr.msg)
	} else {
		cli.PrintError(stderr, "%v", err)
	}
	return 1
}

func (a *app) rootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "kling",
		Short: "Kling video generation API CLI",
		Long: `Kling CLI - A command line interface for the Kling video generation API.

Credentials are read from ~/.config/kling/credentials.json:

  {"access_key": "...", "secret_key": "..."}

Every request is signed with a fresh 30 minute token. Responses are
printed as indented JSON exactly as the API returned them.

Examples:
  kling account
  kling video "a cat surfing"
  kling status 8a2e4b1c --type image2video
  kling video "a cat surfing" --jq .data.task_id`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return newUsageError("", "unknown command %q", args[0])
			}
			return nil
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			a.initLogger()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return newUsageError("", "missing command")
		},
	}

	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return newUsageError(cmd.UseLine(), "%v", err)
	})

	pf := root.PersistentFlags()
	pf.StringVar(&a.credentialsPath, "credentials", "", "credentials file (default is ~/.config/kling/credentials.json)")
	pf.StringVar(&a.baseURL, "base-url", "", "API base URL (default "+kling.DefaultBaseURL+")")
	pf.DurationVar(&a.timeout, "timeout", 0, "request timeout (default none)")
	pf.StringVarP(&a.outputFile, "output", "o", "", "output file (default: stdout)")
	pf.StringVar(&a.format, "format", "json", "output format: json or yaml")
	pf.StringVar(&a.jq, "jq", "", "jq expression applied to the response before printing")
	pf.BoolVarP(&a.verbose, "verbose", "v", false, "verbose output")

	root.AddCommand(a.accountCommand())
	root.AddCommand(a.videoCommand())
	root.AddCommand(a.imageToVideoCommand())
	root.AddCommand(a.statusCommand())
	root.AddCommand(a.tasksCommand())
	root.AddCommand(a.configCommand())

	return root
}

func (a *app) initLogger() {
	logLevel := slog.LevelInfo
	if a.verbose {
		logLevel = slog.LevelDebug
	}
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func (a *app) logger() *slog.Logger {
	if a.log == nil {
		a.initLogger()
	}
	return a.log
}

// printUsage writes usage text to stderr. An empty synopsis prints the
// top-level command table.
func (a *app) printUsage(synopsis, reason string) {
	if reason != "" {
		cli.PrintError(a.stderr, "%s", reason)
	}
	u := cli.Usage{Styles: cli.NewStyles(cli.DefaultTheme)}
	if synopsis == "" {
		u.Synopsis = appName + " <command> [args]"
		u.Commands = usageCommands
	} else {
		u.Synopsis = synopsis
	}
	io.WriteString(a.stderr, u.Render())
}

// credentialsFile returns the credentials path from --credentials or the
// default location.
func (a *app) credentialsFile() (string, error) {
	if a.credentialsPath != "" {
		return a.credentialsPath, nil
	}
	paths, err := cli.NewPaths(appName)
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return paths.CredentialsFile(), nil
}

// newClient loads credentials and builds an API client from them.
func (a *app) newClient() (*kling.Client, error) {
	path, err := a.credentialsFile()
	if err != nil {
		return nil, err
	}

	creds, err := cli.LoadCredentials(path)
	if err != nil {
		return nil, fmt.Errorf("load credentials: %w", err)
	}

	opts := []kling.Option{kling.WithTimeout(a.timeout)}
	if a.baseURL != "" {
		opts = append(opts, kling.WithBaseURL(a.baseURL))
	}
	client := kling.NewClient(creds.AccessKey, creds.SecretKey, opts...)
	a.logger().Debug("loaded credentials", "path", path, "access_key", cli.MaskAPIKey(creds.AccessKey),
		"base_url", client.BaseURL())
	return client, nil
}

// call loads credentials, runs fn with a timeout-bound context and prints
// its result.
func (a *app) call(cmd *cobra.Command, op string, fn func(ctx context.Context, c *kling.Client) (json.RawMessage, error)) error {
	format, err := cli.ParseOutputFormat(a.format)
	if err != nil {
		return err
	}

	client, err := a.newClient()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	start := time.Now()
	resp, err := fn(ctx, client)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	a.logResponse(op, resp, time.Since(start))

	return cli.Output(resp, cli.OutputOptions{
		Format: format,
		File:   a.outputFile,
		JQ:     a.jq,
		Writer: a.writer(),
	})
}

// writer returns stdout unless an output file was requested.
func (a *app) writer() io.Writer {
	if a.outputFile != "" {
		return nil
	}
	return a.stdout
}

// logResponse summarises the response envelope on the log. It never
// changes what is printed.
func (a *app) logResponse(op string, resp json.RawMessage, elapsed time.Duration) {
	log := a.logger()
	env, err := kling.ParseEnvelope(resp)
	if err != nil {
		log.Debug("response is not an envelope", "op", op, "elapsed", elapsed)
		return
	}

	if !env.OK() {
		cli.PrintWarning(a.stderr, "%s: api returned an error code %d: %s (request_id %s)",
			op, env.Code, env.Message, env.RequestID)
		log.Debug("error envelope", "op", op, "code", env.Code, "request_id", env.RequestID, "elapsed", elapsed)
		return
	}

	if task := env.Task(); task != nil {
		log.Debug("task", "op", op, "task_id", task.TaskID, "status", task.TaskStatus,
			"created_at", task.CreatedAt.String(), "updated_at", task.UpdatedAt.String(), "elapsed", elapsed)
		return
	}
	log.Debug("response", "op", op, "request_id", env.RequestID, "elapsed", elapsed)
}

// requireArgs returns an Args validator that reports too few arguments as
// a usage error.
func requireArgs(n int, synopsis string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) < n {
			return newUsageError(synopsis, "%s: missing argument", cmd.Name())
		}
		return nil
	}
}

// noArgs rejects positional arguments with a usage error.
func noArgs(synopsis string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return newUsageError(synopsis, "%s: unexpected argument %q", cmd.Name(), args[0])
		}
		return nil
	}
}
