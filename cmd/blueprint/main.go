// Command blueprint runs an interactive design interview and generates
// project documents from the result.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/msageha/blueprint/internal/claude"
	"github.com/msageha/blueprint/internal/generator"
	"github.com/msageha/blueprint/internal/lock"
	"github.com/msageha/blueprint/internal/logging"
	"github.com/msageha/blueprint/internal/model"
	"github.com/msageha/blueprint/internal/notify"
	"github.com/msageha/blueprint/internal/questionnaire"
	"github.com/msageha/blueprint/internal/setup"
	"github.com/msageha/blueprint/internal/term"
)

const version = "0.1.0"

const defaultConfigPath = "blueprint.yaml"

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if claude.IsCancellation(err) {
			fmt.Fprintln(os.Stderr, "\nDesign process cancelled.")
			return 130
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blueprint",
		Short:         "Generate project documentation with the Claude CLI",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDesignCmd(), newInitCmd(), newVersionCmd())
	return root
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a starter blueprint.yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			if err := setup.Init(dir); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Created %s in %s\n", defaultConfigPath, dir)
			fmt.Fprintln(out, "Edit it, then run 'blueprint design' to start.")
			return nil
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the blueprint version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "blueprint %s\n", version)
		},
	}
}

func newDesignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "design",
		Short: "Start the interactive design process",
		Args:  cobra.NoArgs,
		RunE:  runDesign,
	}
	flags := cmd.Flags()
	flags.StringP("output-dir", "o", ".", "output directory for generated documents")
	flags.String("model", "", "model passed to the claude CLI")
	flags.String("config", "", "path to a config file (default "+defaultConfigPath+")")
	flags.String("claude-bin", "", "claude CLI executable")
	flags.Bool("no-prd", false, "skip PRD.md generation")
	flags.Bool("no-claude-md", false, "skip CLAUDE.md generation")
	flags.Bool("no-readme", false, "skip README.md generation")
	return cmd
}

func runDesign(cmd *cobra.Command, args []string) error {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	applyFlags(&cfg, cmd.Flags())
	cfg = model.ApplyDefaults(cfg)

	logger := logging.Open(cfg.Logging.Dir, cfg.Logging.Level, "blueprint")
	defer logger.Close()
	logger.Infof("design run starting, output dir %s", cfg.OutputDir)

	runLock, err := lock.ForOutputDir(cfg.OutputDir)
	if err != nil {
		return err
	}
	if err := runLock.TryLock(); err != nil {
		return err
	}
	defer runLock.Unlock()

	terminal := term.Default()
	terminal.Printf("Blueprint - Design process starting...\n")
	terminal.Printf("Output directory: %s\n\n", cfg.OutputDir)

	client := claude.NewClient(cfg.Claude, logger.WithComponent("claude"))

	engine := questionnaire.New(client, terminal, logger.WithComponent("questionnaire"))
	design, err := engine.Run(cmd.Context())
	if err != nil {
		return err
	}
	terminal.DesignSummary(design)

	gen := generator.New(client, logger.WithComponent("generator"))
	files, err := gen.Generate(cmd.Context(), model.DocumentRequest{
		OutputDir:        cfg.OutputDir,
		GeneratePRD:      cfg.Documents.PRDEnabled(),
		GenerateClaudeMD: cfg.Documents.ClaudeMDEnabled(),
		GenerateReadme:   cfg.Documents.ReadmeEnabled(),
		Design:           design,
	})
	if err != nil {
		return err
	}

	terminal.GeneratedFiles(files)
	if len(files) > 0 {
		terminal.NextSteps()
		if err := notify.DesignComplete(design.Name, len(files)); err != nil {
			logger.Debugf("completion notification failed: %v", err)
		}
	}
	logger.Infof("design run complete, %d documents", len(files))
	return nil
}

// loadConfig reads the YAML config. A missing file at the default path is
// fine; a missing file named with --config is an error.
func loadConfig(path string) (model.Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigPath
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return model.Config{}, nil
		}
		return model.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	var cfg model.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return model.Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// applyFlags overlays flag values onto cfg. Only flags the user set are
// applied, so config-file values survive unless overridden.
func applyFlags(cfg *model.Config, flags *pflag.FlagSet) {
	if flags.Changed("output-dir") {
		cfg.OutputDir, _ = flags.GetString("output-dir")
	}
	if flags.Changed("model") {
		cfg.Claude.Model, _ = flags.GetString("model")
	}
	if flags.Changed("claude-bin") {
		cfg.Claude.Binary, _ = flags.GetString("claude-bin")
	}
	if flags.Changed("no-prd") {
		noPRD, _ := flags.GetBool("no-prd")
		enabled := !noPRD
		cfg.Documents.PRD = &enabled
	}
	if flags.Changed("no-claude-md") {
		noClaudeMD, _ := flags.GetBool("no-claude-md")
		enabled := !noClaudeMD
		cfg.Documents.ClaudeMD = &enabled
	}
	if flags.Changed("no-readme") {
		noReadme, _ := flags.GetBool("no-readme")
		enabled := !noReadme
		cfg.Documents.Readme = &enabled
	}
}
