package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"moodmeter/internal/config"
	"moodmeter/internal/logging"
	"moodmeter/internal/model"
	"moodmeter/internal/mood"
	"os"
	"os/signal"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const maxConcurrentChecks = 4

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "moodctl",
		Short:        "Check the news mood of a country from the terminal",
		SilenceUsage: true,
	}

	root.AddCommand(newCheckCmd(), newCountriesCmd(), newWatchCmd())
	return root
}

func loadService() (*mood.Service, error) {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logging.Init(cfg.LogLevel, "text")
	cfg.WarnMissing()

	return mood.NewServiceFromConfig(cfg)
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <country>...",
		Short: "Fetch headlines and analyze the mood for one or more countries",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService()
			if err != nil {
				return err
			}

			reports := checkAll(cmd.Context(), service, args)
			for _, r := range reports {
				printReport(cmd.OutOrStdout(), r)
			}
			return nil
		},
	}
}

// checkAll runs one chain per country, a few at a time. Each chain keeps its
// own lookup-then-analyze order; reports come back in argument order.
func checkAll(ctx context.Context, checker mood.Checker, countries []string) []model.MoodReport {
	reports := make([]model.MoodReport, len(countries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentChecks)

	for i, country := range countries {
		g.Go(func() error {
			reports[i] = checker.Check(ctx, country)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Printf("check interrupted: %v", err)
	}
	return reports
}

func newCountriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "countries [filter]",
		Short: "List selectable countries, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var term string
			if len(args) == 1 {
				term = args[0]
			}

			for _, c := range model.FilterCountries(term) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Read one country per line from stdin and print each result as it settles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			service, err := loadService()
			if err != nil {
				return err
			}

			return watch(cmd.Context(), service, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}

func watch(ctx context.Context, checker mood.Checker, in io.Reader, out io.Writer) error {
	var mu sync.Mutex
	session := mood.NewSession(checker, func(snap mood.Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		printSnapshot(out, snap)
	})

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		country := strings.TrimSpace(scanner.Text())
		if country == "" {
			continue
		}

		session.Select(ctx, country)

		mu.Lock()
		fmt.Fprintf(out, "[%s] %s\n", session.Snapshot().State, country)
		mu.Unlock()
	}

	session.Wait()
	return scanner.Err()
}

func printSnapshot(w io.Writer, snap mood.Snapshot) {
	if snap.Stale() {
		fmt.Fprintf(w, "[%s] %s (showing result for earlier selection %s)\n", snap.State, snap.Country, snap.Report.Country)
	}
	if snap.Report != nil {
		printReport(w, *snap.Report)
	}
}

func printReport(w io.Writer, r model.MoodReport) {
	fmt.Fprintf(w, "%s: %s\n", r.Country, r.Mood.Mood)
	fmt.Fprintf(w, "  %s\n", r.Mood.Explanation)
	if r.Degraded {
		fmt.Fprintln(w, "  (degraded result)")
	}

	if len(r.Headlines) == 0 {
		fmt.Fprintln(w, "  No news found for this country.")
		return
	}

	for _, h := range r.Headlines {
		fmt.Fprintf(w, "  - %s\n    %s\n", h.Title, h.Link)
	}
}
