package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tazlab/tazgo/internal/api"
	"github.com/tazlab/tazgo/internal/calculation"
	"github.com/tazlab/tazgo/internal/config"
	"github.com/tazlab/tazgo/internal/logging"
	"github.com/tazlab/tazgo/internal/output"
	"github.com/tazlab/tazgo/internal/store/sqlite"
	"github.com/tazlab/tazgo/internal/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "tazgo",
	Short: "Turkish severance & notice compensation calculator",
	Long:  "Calculates kidem (severance) and ihbar (notice) compensation with itemized income and stamp taxes",
}

// loadEngine builds an engine from the case file and the optional
// regulatory flag. Flag beats inline override beats built-in defaults.
func loadEngine(cmd *cobra.Command, cf *config.CaseFile) (*calculation.Engine, error) {
	regulatoryFile, _ := cmd.Flags().GetString("regulatory")
	if regulatoryFile != "" {
		parser := config.NewInputParser()
		rc, err := parser.LoadRegulatoryFile(regulatoryFile)
		if err != nil {
			return nil, err
		}
		return calculation.NewEngine(*rc), nil
	}
	if cf != nil {
		return calculation.NewEngine(cf.RegulatoryTable()), nil
	}
	return calculation.NewDefaultEngine(), nil
}

var calculateCmd = &cobra.Command{
	Use:   "calculate [case-file]",
	Short: "Run a severance/notice calculation from a YAML case file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		cf, err := parser.LoadFromFile(args[0])
		if err != nil {
			return err
		}

		engine, err := loadEngine(cmd, cf)
		if err != nil {
			return err
		}

		result, err := engine.Calculate(cf.Input.ToCalculationInput())
		if err != nil {
			return err
		}

		if save, _ := cmd.Flags().GetBool("save"); save {
			dbPath, _ := cmd.Flags().GetString("db")
			store, err := sqlite.New(dbPath)
			if err != nil {
				return err
			}
			defer store.Close()
			id, err := store.Save(cmd.Context(), result)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "saved as calculation %d\n", id)
		}

		formatName, _ := cmd.Flags().GetString("format")
		formatter := output.GetFormatterByName(formatName)
		if formatter == nil {
			return fmt.Errorf("unknown output format %q (available: %v)", formatName, output.FormatterNames())
		}
		data, err := formatter.Format(result)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
		return nil
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate [case-file]",
	Short: "Validate a case file without calculating",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		parser := config.NewInputParser()
		if _, err := parser.LoadFromFile(args[0]); err != nil {
			return err
		}
		fmt.Printf("Case file %s is valid\n", args[0])
		return nil
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the calculation API over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		devMode, _ := cmd.Flags().GetBool("dev")
		logger, err := logging.New(devMode)
		if err != nil {
			return err
		}
		defer logger.Sync()

		engine, err := loadEngine(cmd, nil)
		if err != nil {
			return err
		}

		var store *sqlite.Store
		dbPath, _ := cmd.Flags().GetString("db")
		if dbPath != "" {
			if store, err = sqlite.New(dbPath); err != nil {
				return err
			}
			defer store.Close()
		}

		addr, _ := cmd.Flags().GetString("addr")
		handler := api.NewHandler(engine, store, logger)
		srv := &http.Server{
			Addr:         addr,
			Handler:      api.NewRouter(handler),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Info("starting server",
				zap.String("addr", addr),
				zap.Int("tax_year", engine.Rules.Metadata.DataYear),
				zap.Bool("history", store != nil))
			if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		select {
		case err := <-errCh:
			return err
		case sig := <-quit:
			logger.Info("shutting down", zap.String("signal", sig.String()))
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(ctx)
	},
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive calculator form",
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := loadEngine(cmd, nil)
		if err != nil {
			return err
		}
		p := tea.NewProgram(tui.NewModel(engine), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved calculations",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, _ := cmd.Flags().GetString("db")
		store, err := sqlite.New(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		records, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("no saved calculations")
			return nil
		}

		fmt.Printf("%-5s %-20s %-12s %-12s %8s %16s %16s\n",
			"ID", "Saved", "Start", "End", "Days", "Gross", "Net")
		for _, r := range records {
			fmt.Printf("%-5d %-20s %-12s %-12s %8d %16s %16s\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04"),
				r.WorkStartDate, r.WorkEndDate, r.TotalWorkDays,
				r.TotalGross.StringFixed(2), r.TotalNet.StringFixed(2))
		}
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "tazgo %s (commit %s, built %s)\n", version, commit, date)
		if bi, ok := debug.ReadBuildInfo(); ok && bi != nil {
			fmt.Fprintln(os.Stdout, "go:", bi.GoVersion)
		}
	},
}

func init() {
	calculateCmd.Flags().String("format", "table", fmt.Sprintf("output format %v", output.FormatterNames()))
	calculateCmd.Flags().String("regulatory", "", "regulatory table YAML (overrides case file and defaults)")
	calculateCmd.Flags().Bool("save", false, "record the result in the history database")
	calculateCmd.Flags().String("db", "tazgo.db", "history database path")

	serveCmd.Flags().String("addr", ":8080", "listen address")
	serveCmd.Flags().String("regulatory", "", "regulatory table YAML")
	serveCmd.Flags().String("db", "tazgo.db", "history database path (empty disables history)")
	serveCmd.Flags().Bool("dev", false, "development logging")

	tuiCmd.Flags().String("regulatory", "", "regulatory table YAML")

	historyCmd.Flags().String("db", "tazgo.db", "history database path")
	historyCmd.Flags().Int("limit", 20, "maximum rows to show")

	rootCmd.AddCommand(calculateCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	// cobra prints the error itself; just carry the exit code.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
