// Package cli implements the resourceid command line.
package cli

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/viant/resourceid"
	"github.com/viant/resourceid/loader"
	"github.com/viant/resourceid/tracing"
)

const version = "0.1.0"

type options struct {
	configURL string
	traceFile string
	verbose   bool
}

// NewRootCmd creates the resourceid root command.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "resourceid",
		Short:         "Derive valid resource names for integration tests",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
	}
	cmd.PersistentFlags().StringVar(&opts.configURL, "config", "", "naming rules URL (yaml or json)")
	cmd.PersistentFlags().StringVar(&opts.traceFile, "trace-file", "", "write OpenTelemetry spans to this file")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newDatabaseCmd(opts),
		newInstanceCmd(opts),
		newShortenCmd(opts),
	)
	return cmd
}

func newDatabaseCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "database <base>",
		Short: "Print a database ID derived from base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := opts.service(cmd)
			if err != nil {
				return err
			}
			id, err := srv.DatabaseID(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newInstanceCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "instance <base>",
		Short: "Print a timestamped instance ID derived from base",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			srv, err := opts.service(cmd)
			if err != nil {
				return err
			}
			id, err := srv.InstanceID(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func newShortenCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "shorten <id> <length>",
		Short: "Shorten id to length with a random suffix",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid length %q: %w", args[1], err)
			}
			srv, err := opts.service(cmd)
			if err != nil {
				return err
			}
			id, err := srv.NewID(args[0], length)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func (o *options) service(cmd *cobra.Command) (*resourceid.Service, error) {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

	if o.traceFile != "" {
		if err := tracing.Init("resourceid", version, o.traceFile); err != nil {
			return nil, fmt.Errorf("failed to init tracing: %w", err)
		}
	}

	var cfg *resourceid.Config
	if o.configURL != "" {
		var err error
		if cfg, err = loader.New(nil).Load(cmd.Context(), o.configURL); err != nil {
			return nil, err
		}
		logger.Debug("config loaded", "url", o.configURL)
	}
	return resourceid.NewFromConfig(cfg, resourceid.WithLogger(logger))
}
