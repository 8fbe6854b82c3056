package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/nonprofit-cli/internal/consolidate"
	"github.com/sells-group/nonprofit-cli/internal/fetcher"
	"github.com/sells-group/nonprofit-cli/internal/pipeline"
	"github.com/sells-group/nonprofit-cli/internal/report"
	"github.com/sells-group/nonprofit-cli/internal/schema"
	"github.com/sells-group/nonprofit-cli/internal/store"
)

var (
	runForm      string
	runOutput    string
	runLayout    string
	runStartYear int
	runEndYear   int
	runNoCache   bool
)

var runCmd = &cobra.Command{
	Use:   "run [organization-url...]",
	Short: "Build a financial report for one or more organizations",
	Long: `Processes ProPublica Nonprofit Explorer organization pages and writes a
consolidated XLSX report. Organization URLs come from the arguments, or
interactively from stdin (one per line, finish with "done") when no
arguments are given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Config supplies defaults; explicit flags win.
		if !cmd.Flags().Changed("output") {
			runOutput = cfg.Report.Output
		}
		if !cmd.Flags().Changed("layout") {
			runLayout = cfg.Report.Layout
		}
		if !cmd.Flags().Changed("start-year") {
			runStartYear = cfg.Window.StartYear
		}
		if !cmd.Flags().Changed("end-year") {
			runEndYear = cfg.Window.EndYear
		}
		if runStartYear > runEndYear {
			return eris.Errorf("start year %d is after end year %d", runStartYear, runEndYear)
		}

		variant, err := schema.ParseVariant(strings.ToLower(runForm))
		if err != nil {
			return err
		}
		layout, err := report.ParseLayout(runLayout)
		if err != nil {
			return err
		}

		orgURLs := args
		if len(orgURLs) == 0 {
			orgURLs, err = readOrgURLs(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
		}
		if len(orgURLs) == 0 {
			return eris.New("no organization URLs given")
		}

		f := fetcher.NewHTTPFetcher(fetcher.HTTPOptions{
			UserAgent:  cfg.Fetch.UserAgent,
			Timeout:    time.Duration(cfg.Fetch.TimeoutSecs) * time.Second,
			MaxRetries: cfg.Fetch.MaxRetries,
		})

		var cache pipeline.DocumentCache
		var st *store.SQLite
		if !runNoCache && !cfg.Cache.Disable {
			st, err = openStore(ctx)
			if err != nil {
				zap.L().Warn("cache unavailable, continuing without it", zap.Error(err))
			} else {
				defer st.Close()
				cache = st
			}
		}

		proc := pipeline.New(f, cache, variant, pipeline.Options{
			MaxFilings: cfg.Fetch.MaxFilings,
		})

		groups := consolidate.NewGroups()
		filings := 0
		for _, orgURL := range orgURLs {
			var run *store.Run
			if st != nil {
				if run, err = st.StartRun(ctx, orgURL, variant.String()); err != nil {
					zap.L().Warn("run log unavailable", zap.Error(err))
					run = nil
				}
			}

			n, err := proc.ProcessOrganization(ctx, groups, orgURL)
			filings += n
			status := store.RunStatusComplete
			if err != nil {
				status = store.RunStatusFailed
				zap.L().Error("organization failed", zap.String("org_url", orgURL), zap.Error(err))
			}
			if st != nil && run != nil {
				if err := st.FinishRun(ctx, run.ID, n, status); err != nil {
					zap.L().Warn("run log update failed", zap.Error(err))
				}
			}
		}

		if groups.Len() == 0 {
			return eris.New("no organizations produced any usable filings")
		}

		window := consolidate.Window{Start: runStartYear, End: runEndYear}
		direction := consolidate.Ascending
		if layout == report.LayoutAppend {
			direction = consolidate.Descending
		}

		matrices := make([]consolidate.MetricMatrix, 0, groups.Len())
		for _, group := range groups.All() {
			matrices = append(matrices, consolidate.Build(group, variant, window, direction))
		}

		if err := writeReport(layout, runOutput, matrices); err != nil {
			return err
		}

		zap.L().Info("report written",
			zap.String("output", runOutput),
			zap.Int("organizations", groups.Len()),
			zap.Int("filings", filings),
		)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %d organization(s), %d filing(s)\n",
			runOutput, groups.Len(), filings)
		return nil
	},
}

// readOrgURLs collects organization page URLs interactively, one per line,
// until "done" or EOF.
func readOrgURLs(in io.Reader, out io.Writer) ([]string, error) {
	fmt.Fprintln(out, `Enter organization page URLs, one per line. Type "done" to finish.`)
	var urls []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.EqualFold(line, "done") {
			break
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, eris.Wrap(err, "read organization URLs")
	}
	return urls, nil
}

func writeReport(layout report.Layout, output string, matrices []consolidate.MetricMatrix) error {
	switch layout {
	case report.LayoutAppend:
		return report.NewAppendWriter(output).Write(matrices)
	default:
		return report.NewSheetsWriter(output).Write(matrices)
	}
}

// openStore opens and migrates the local cache database.
func openStore(ctx context.Context) (*store.SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Cache.Path), 0o755); err != nil {
		return nil, eris.Wrap(err, "create cache directory")
	}
	st, err := store.OpenSQLite(cfg.Cache.Path)
	if err != nil {
		return nil, err
	}
	if err := st.Migrate(ctx); err != nil {
		st.Close()
		return nil, err
	}
	return st, nil
}

func init() {
	runCmd.Flags().StringVar(&runForm, "form", "990", `form variant: "990", "990-PF", or "schedule-h"`)
	runCmd.Flags().StringVarP(&runOutput, "output", "o", "nonprofit-report.xlsx", "output XLSX path")
	runCmd.Flags().StringVar(&runLayout, "layout", "sheets", `report layout: "sheets" or "append"`)
	runCmd.Flags().IntVar(&runStartYear, "start-year", 2018, "first calendar year kept in the report")
	runCmd.Flags().IntVar(&runEndYear, "end-year", 2022, "last calendar year kept in the report")
	runCmd.Flags().BoolVar(&runNoCache, "no-cache", false, "bypass the local document cache")
	rootCmd.AddCommand(runCmd)
}
