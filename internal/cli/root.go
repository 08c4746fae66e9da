package cli

import (
	"fmt"
	"os"

	"github.com/existflow/qrstudio/internal/config"
	"github.com/existflow/qrstudio/internal/logger"
	"github.com/existflow/qrstudio/internal/store"
	"github.com/existflow/qrstudio/server"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfg        *config.Config
	logLevel   string
	logFile    string
	logConsole bool
)

var rootCmd = &cobra.Command{
	Use:   "qrstudio",
	Short: "QR Studio - API server for the QR design tool",
	Long: `QR Studio is the REST API behind the QR design web app. It persists
projects and folders in SQLite, stores uploaded logo images, and proxies
URL shortening to a Kutt instance.

Run 'qrstudio' or 'qrstudio serve' to start the server.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env is optional; absent in production
		_ = godotenv.Load()

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// CLI flags override the environment
		if cmd.Flags().Changed("log-level") {
			cfg.LogLevel = logLevel
		}
		if cmd.Flags().Changed("log-file") {
			cfg.LogFile = logFile
		}
		if cmd.Flags().Changed("log-console") {
			cfg.LogConsole = logConsole
		}

		logConfig := logger.Config{
			Level:    logger.ParseLevel(cfg.LogLevel),
			FilePath: cfg.LogFile,
			Console:  cfg.LogConsole,
		}
		if err := logger.Init(logConfig); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	RunE: runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := os.MkdirAll(cfg.UploadsPath, 0755); err != nil {
		return fmt.Errorf("failed to create uploads directory: %w", err)
	}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		logger.Error("Failed to open database", logger.F("error", err))
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer st.Close()

	srv := server.New(cfg, st)
	logger.Info("qrstudio listening",
		logger.F("port", cfg.Port),
		logger.F("db", cfg.DBPath),
		logger.F("uploads", cfg.UploadsPath))
	return srv.Start(cfg.Addr())
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "INFO", "Log level (DEBUG, INFO, WARN, ERROR)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Path to log file")
	rootCmd.PersistentFlags().BoolVar(&logConsole, "log-console", true, "Enable console logging")
	rootCmd.AddCommand(serveCmd)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
