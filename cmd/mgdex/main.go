// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/mdhender/mgdex"
	"github.com/mdhender/mgdex/config"
	"github.com/mdhender/mgdex/pipelines/stages"
	"github.com/mdhender/mgdex/renderer"
	store "github.com/mdhender/mgdex/stores/sqlite"
	"github.com/spf13/cobra"
)

func main() {
	addFlags := func(cmd *cobra.Command) error {
		cmd.PersistentFlags().String("config", config.DefaultPath, "load configuration from file")
		cmd.PersistentFlags().Bool("debug", false, "log debugging information")
		cmd.PersistentFlags().String("line-endings", "", "line endings in the sources: auto, strip-cr or keep")
		cmd.PersistentFlags().Bool("log-with-default-flags", false, "log with default flags")
		cmd.PersistentFlags().Bool("log-with-shortfile", false, "log with short file name")
		cmd.PersistentFlags().Bool("log-with-timestamp", false, "log with timestamp")
		cmd.PersistentFlags().Bool("quiet", false, "log less information")
		cmd.PersistentFlags().Bool("show-version", false, "show version")
		cmd.PersistentFlags().Bool("verbose", false, "log more information")
		return nil
	}
	generate := cmdGenerate()
	var cmdRoot = &cobra.Command{
		Use:   "mgdex",
		Short: "Mirror Gold wiki generator",
		Long:  `Generate the static Pokédex and Trainerdex pages from hg-engine data files`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logWithDefaultFlags, _ := cmd.Flags().GetBool("log-with-default-flags")
			logWithShortFileName, _ := cmd.Flags().GetBool("log-with-shortfile")
			logWithTimestamp, _ := cmd.Flags().GetBool("log-with-timestamp")
			logFlags := 0
			if logWithShortFileName {
				logFlags |= log.Lshortfile
			}
			if logWithTimestamp {
				logFlags |= log.Ltime
			}
			if logWithDefaultFlags {
				logFlags = log.LstdFlags
			}
			log.SetFlags(logFlags)

			if showVersion, _ := cmd.Flags().GetBool("show-version"); showVersion {
				fmt.Printf("mgdex: version %q\n", mgdex.Version().Core())
			}

			return nil
		},
		// with no sub-command, generate the site
		SilenceUsage: true,
		RunE:         generate.RunE,
	}
	cmdRoot.Flags().AddFlagSet(generate.Flags())
	cmdRoot.AddCommand(generate)
	cmdRoot.AddCommand(cmdExport())
	cmdRoot.AddCommand(cmdQuery())
	cmdRoot.AddCommand(cmdVersion())
	if err := addFlags(cmdRoot); err != nil {
		log.Fatal(err)
	}

	if err := cmdRoot.Execute(); err != nil {
		log.Printf("mgdex: %s\n", stages.ErrorCode(err))
		os.Exit(1)
	}
}

// logFlags reads the shared logging flags. quiet wins over verbose.
func logFlags(cmd *cobra.Command) (quiet, verbose, debug bool) {
	quiet, _ = cmd.Flags().GetBool("quiet")
	verbose, _ = cmd.Flags().GetBool("verbose")
	debug, _ = cmd.Flags().GetBool("debug")
	if quiet {
		verbose = false
	}
	return quiet, verbose, debug
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if cmd.Flags().Changed("line-endings") {
		cfg.Inputs.LineEndings, _ = cmd.Flags().GetString("line-endings")
	}
	return cfg, nil
}

// printDiagnostics logs the notices at or above the level the flags allow.
func printDiagnostics(list []mgdex.Diagnostic, quiet, verbose bool) {
	minLevel := slog.LevelWarn
	if quiet {
		minLevel = slog.LevelError
	} else if verbose {
		minLevel = slog.LevelInfo
	}
	mgdex.PrintDiagnostics(log.Writer(), list, minLevel)
	if !quiet {
		log.Printf("diagnostics: %d missing mappings: %d structural: %d missing data\n",
			mgdex.Count(list, mgdex.MissingMapping), mgdex.Count(list, mgdex.Structural), mgdex.Count(list, mgdex.MissingData))
	}
}

func cmdGenerate() *cobra.Command {
	var outputDir string
	var siteName string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVarP(&outputDir, "output", "o", outputDir, "write the site to this directory")
		cmd.Flags().StringVar(&siteName, "site-name", siteName, "name shown in page headings")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "generate",
		Short:        "generate the Pokédex and Trainerdex pages",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			started := time.Now()
			quiet, verbose, debug := logFlags(cmd)

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.Output.Dir = outputDir
			}
			if siteName != "" {
				cfg.Output.SiteName = siteName
			}

			s := stages.NewService(cfg.Inputs)
			s.SetLogging(quiet, verbose, debug)
			r, err := renderer.New(
				renderer.WithOutput(s.FS(), cfg.Output.Dir),
				renderer.WithSprites(s.FS()),
				renderer.WithSiteName(cfg.Output.SiteName),
			)
			if err != nil {
				return err
			}

			result, err := s.Generate(ctx, r, cfg.Output.Dir)
			if result != nil {
				printDiagnostics(result.Diagnostics, quiet, verbose)
			}
			if err != nil {
				return err
			}
			if !quiet {
				log.Printf("generate: completed in %v\n", time.Since(started))
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdExport() *cobra.Command {
	dbPath := "wiki.db"
	overwrite := false
	showDBStats := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "database file to create")
		cmd.Flags().BoolVar(&overwrite, "overwrite", overwrite, "replace an existing database file")
		cmd.Flags().BoolVar(&showDBStats, "show-db-stats", showDBStats, "dump row counts from each table")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "export",
		Short:        "export the reconciled records to a SQLite database",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			started := time.Now()
			quiet, verbose, debug := logFlags(cmd)

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if overwrite {
				for _, path := range []string{dbPath, dbPath + "-wal", dbPath + "-shm"} {
					if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
						return fmt.Errorf("remove %s: %w", path, err)
					}
				}
			}
			db, err := store.Create(ctx, dbPath)
			if err != nil {
				return &stages.ErrDatabase{Op: "create", Err: err}
			}
			defer db.Close()

			s := stages.NewService(cfg.Inputs)
			s.SetLogging(quiet, verbose || showDBStats, debug)
			rec, err := s.Export(ctx, db)
			if rec != nil {
				printDiagnostics(rec.Diagnostics, quiet, verbose)
			}
			if err != nil {
				return err
			}
			if err := db.Compact(ctx); err != nil {
				return &stages.ErrDatabase{Op: "compact", Err: err}
			}
			if !quiet {
				log.Printf("export: %s: completed in %v\n", dbPath, time.Since(started))
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdQuery() *cobra.Command {
	dbPath := "wiki.db"
	var area, typ string
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().StringVar(&dbPath, "db", dbPath, "database file to query")
		cmd.Flags().StringVar(&area, "area", area, "list the trainers fought in this area")
		cmd.Flags().StringVar(&typ, "type", typ, "list the species with this type, e.g. GRASS")
		return nil
	}
	var cmd = &cobra.Command{
		Use:          "query",
		Short:        "query an exported database",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if area == "" && typ == "" {
				return fmt.Errorf("query: one of --area or --type is required")
			}
			db, err := store.Open(ctx, dbPath)
			if err != nil {
				return &stages.ErrDatabase{Op: "open", Err: err}
			}
			defer db.Close()

			if typ != "" {
				names, err := db.SpeciesByType(ctx, strings.TrimPrefix(strings.ToUpper(typ), "TYPE_"))
				if err != nil {
					return &stages.ErrDatabase{Op: "species by type", Err: err}
				}
				for _, name := range names {
					fmt.Println(name)
				}
			}
			if area != "" {
				names, err := db.TrainersInArea(ctx, area)
				if err != nil {
					return &stages.ErrDatabase{Op: "trainers in area", Err: err}
				}
				for _, name := range names {
					fmt.Println(name)
				}
			}
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}

func cmdVersion() *cobra.Command {
	showBuildInfo := false
	addFlags := func(cmd *cobra.Command) error {
		cmd.Flags().BoolVar(&showBuildInfo, "build-info", showBuildInfo, "show build information")
		return nil
	}
	var cmd = &cobra.Command{
		Use:   "version",
		Short: "display the application's version number",
		RunE: func(cmd *cobra.Command, args []string) error {
			if showBuildInfo {
				fmt.Println(mgdex.Version().String())
				return nil
			}
			fmt.Println(mgdex.Version().Core())
			return nil
		},
	}
	if err := addFlags(cmd); err != nil {
		log.Fatal(err)
	}
	return cmd
}
