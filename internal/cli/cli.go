package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/pflag"

	"github.com/adminde/household-data/internal/app"
	"github.com/adminde/household-data/internal/assembler"
	"github.com/adminde/household-data/internal/publish"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := pflag.NewFlagSet("household-datapackage", pflag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.SortFlags = false

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
household-datapackage - builds the datapackage.json manifest of the household dataset.

Usage:
  household-datapackage [options] [DEFINITION_PATH]

Arguments:
  DEFINITION_PATH
    Path to a package definition (.hcl, .yaml, .yml) or a directory of .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.StringP("config", "c", "", "Path to the package definition file or directory.")
	outputFlag := flagSet.StringP("output", "o", assembler.DefaultOutputPath, "Path of the manifest to write.")
	versionFlag := flagSet.String("package-version", "", "Override the version of the package definition.")
	changesFlag := flagSet.String("changes", "", "Override the changelog of the package definition.")
	workersFlag := flagSet.IntP("workers", "w", 4, "Number of datasets read concurrently.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	bucketFlag := flagSet.String("publish-bucket", "", "Upload the manifest to this S3 bucket. Empty disables publishing.")
	prefixFlag := flagSet.String("publish-prefix", "", "Key prefix for the uploaded manifest.")
	regionFlag := flagSet.String("publish-region", "", "AWS region of the bucket. Defaults to the AWS configuration.")
	endpointFlag := flagSet.String("publish-endpoint", "", "Custom S3 endpoint, e.g. a MinIO server.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := *configFlag
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Definition path determined.", "path", path)

	if path == "" {
		slog.Debug("No definition path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	cfg := app.Config{
		ConfigPath:  path,
		OutputPath:  *outputFlag,
		WorkerCount: *workersFlag,
		LogFormat:   strings.ToLower(*logFormatFlag),
		LogLevel:    strings.ToLower(*logLevelFlag),
		Publish: publish.Config{
			Bucket:   *bucketFlag,
			Prefix:   *prefixFlag,
			Region:   *regionFlag,
			Endpoint: *endpointFlag,
		},
	}
	if flagSet.Changed("package-version") {
		cfg.PackageVersion = versionFlag
	}
	if flagSet.Changed("changes") {
		cfg.Changes = changesFlag
	}

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: "invalid arguments: " + err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
