// Package main provides the CLI entry point for hmcreport.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/ukaji3/hmcreport-go/pkg/hmcreport"
	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/models"
	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/output"
	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/parser"
	"github.com/ukaji3/hmcreport-go/pkg/hmcreport/render"
)

// envPrefix prefixes the environment variables read for every flag,
// e.g. HMCREPORT_INPUT_DIR.
const envPrefix = "HMCREPORT"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "hmcreport",
		Short: "Build a system server report from HMC scanner workbooks",
		Long: `hmcreport reads the HMC scanner workbooks of a directory, extracts the HMC,
managed system and LPAR profile records found at their fixed cell positions
and writes them as a report document.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, v)
		},
	}

	defaults := hmcreport.DefaultOptions()
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (YAML, JSON or TOML)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug details (fields found, skipped rows)")
	rootCmd.Flags().StringP("input-dir", "i", defaults.InputDir, "Directory holding the HMC scanner workbooks")
	rootCmd.Flags().StringP("output", "o", defaults.Output, "Report file path")
	rootCmd.Flags().String("format", "", "Report format: docx, xlsx, text (default: from the output extension)")
	rootCmd.Flags().String("json", "", "Also write the extracted records as JSON to this path ('-' for stdout)")
	rootCmd.Flags().StringSlice("extensions", defaults.Extensions, "Workbook extensions to pick up, in processing order")

	rootCmd.AddCommand(newLayoutCmd())
	return rootCmd
}

// loadConfig layers the config file and HMCREPORT_* variables under the
// command line flags.
func loadConfig(v *viper.Viper, cmd *cobra.Command, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config: %w", err)
		}
	}

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	return v.BindPFlags(cmd.PersistentFlags())
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func runReport(cmd *cobra.Command, v *viper.Viper) error {
	log := newLogger(cmd.ErrOrStderr(), v.GetBool("verbose"))

	opts := hmcreport.Options{
		InputDir:   v.GetString("input-dir"),
		Extensions: v.GetStringSlice("extensions"),
		Output:     v.GetString("output"),
		Format:     render.Format(v.GetString("format")),
		Logger:     log,
	}

	result, err := hmcreport.Run(cmd.Context(), opts)
	if errors.Is(err, hmcreport.ErrNoInputFiles) {
		log.Warn("no Excel files found", "dir", opts.InputDir)
		return nil
	}
	if err != nil {
		return err
	}

	if path := v.GetString("json"); path != "" {
		if err := writeJSON(cmd.OutOrStdout(), path, result); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}
	}
	return nil
}

func writeJSON(stdout io.Writer, path string, result *models.RunResult) error {
	data, err := output.ToJSON(result, true)
	if err != nil {
		return err
	}
	if path == "-" {
		_, err := fmt.Fprintln(stdout, string(data))
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func newLayoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layout",
		Short: "List the cell positions read from each sheet kind",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tablewriter.NewWriter(cmd.OutOrStdout())
			tw.SetHeader([]string{"Sheet", "Field", "Cell"})
			tw.SetAutoWrapText(false)
			for _, p := range parser.Positions() {
				tw.Append([]string{string(p.Kind), p.Field, p.Cell})
			}
			tw.Render()
			return nil
		},
	}
}
