package commands

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"trychooser/internal/app"
	"trychooser/internal/logging"
)

const httpTimeout = 15 * time.Second

var (
	home           string
	definitionPath string
	serverURL      string
	sessionID      string
	logLevel       string
	logFormat      string
	jsonOutput     bool

	logger *zap.Logger
	appCtx *app.App
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "trychooser",
		Short:        "Build try syntax from build and test selections",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			logger, err = logging.New(logLevel, logFormat)
			if err != nil {
				return err
			}

			if home == "" {
				home = os.Getenv("TRYCHOOSER_HOME")
			}
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".trychooser")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}
			if definitionPath == "" {
				definitionPath = os.Getenv("TRYCHOOSER_DEFINITION")
			}
			if serverURL == "" {
				serverURL = os.Getenv("TRYCHOOSER_SERVER")
			}

			appCtx, err = app.New(app.Config{
				Home:       home,
				Definition: definitionPath,
				ServerURL:  serverURL,
				Session:    sessionID,
				HTTP:       &http.Client{Timeout: httpTimeout},
				Logger:     logger,
			})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default $TRYCHOOSER_HOME or ~/.trychooser)")
	root.PersistentFlags().StringVarP(&definitionPath, "definition", "d", "", "definition file, .yaml or .hcl (default $TRYCHOOSER_DEFINITION)")
	root.PersistentFlags().StringVar(&serverURL, "server", "", "chooserd base URL, e.g. http://127.0.0.1:8080 (default $TRYCHOOSER_SERVER)")
	root.PersistentFlags().StringVar(&sessionID, "session", "", "chooserd session ID (default: the last one used with --server)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level: debug, info, warn, error")
	root.PersistentFlags().StringVar(&logFormat, "log-format", logging.FormatAuto, "log format: json, console, auto")
	root.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of text")

	root.AddCommand(
		initCmd(),
		showCmd(),
		checkCmd(),
		uncheckCmd(),
		selectCmd(),
		resetCmd(),
		fingerprintCmd(),
		controlsCmd(),
	)
	return root
}
