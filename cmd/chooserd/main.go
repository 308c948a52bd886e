package main

import (
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trychooser/internal/compile"
	"trychooser/internal/definition"
	"trychooser/internal/logging"
	"trychooser/internal/server"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		definitionPath  string
		host            string
		port            int
		shutdownTimeout time.Duration
		sessionTTL      time.Duration
		maxSessions     int
		privileged      []string
		logLevel        string
		logFormat       string
	)

	cmd := &cobra.Command{
		Use:          "chooserd",
		Short:        "Serve trychooser sessions over HTTP",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := logging.New(logLevel, logFormat)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if definitionPath == "" {
				definitionPath = os.Getenv("TRYCHOOSER_DEFINITION")
			}
			if definitionPath == "" {
				return errors.New("no definition file (--definition or TRYCHOOSER_DEFINITION)")
			}
			def, err := definition.Load(definitionPath)
			if err != nil {
				return err
			}
			logger.Info("Loaded definition",
				zap.String("path", definitionPath),
				zap.String("fingerprint", definition.Fingerprint(def).String()),
			)

			srv := server.New(def,
				server.WithHostname(host),
				server.WithPort(port),
				server.WithShutdownTimeout(shutdownTimeout),
				server.WithSessionTTL(sessionTTL),
				server.WithMaxSessions(maxSessions),
				server.WithLogger(logger),
				server.WithCompileOptions(compile.WithPrivilegedProjects(privileged...)),
			)
			ln, err := srv.Listen()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx, ln)
		},
	}

	cmd.Flags().StringVarP(&definitionPath, "definition", "d", "", "definition file, .yaml or .hcl (default $TRYCHOOSER_DEFINITION)")
	cmd.Flags().StringVar(&host, "host", "localhost", "listen host")
	cmd.Flags().IntVar(&port, "port", 8080, "listen port")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", 30*time.Second, "graceful shutdown limit")
	cmd.Flags().DurationVar(&sessionTTL, "session-ttl", 24*time.Hour, "drop sessions idle for longer than this (0 keeps them)")
	cmd.Flags().IntVar(&maxSessions, "max-sessions", 10000, "maximum live sessions (0 means no limit)")
	cmd.Flags().StringSliceVar(&privileged, "privileged-projects", compile.DefaultPrivilegedProjects, "project tags that switch filters off")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.Flags().StringVar(&logFormat, "log-format", logging.FormatAuto, "log format: json, console, auto")
	return cmd
}
