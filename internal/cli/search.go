package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/mailund/stralg-go/pkg/search"
	"github.com/mailund/stralg-go/pkg/search/measure"
)

func newSearchCommand(app *App) *cobra.Command {
	var (
		algoName  string
		countOnly bool
		stats     bool
		workers   int
	)

	cmd := &cobra.Command{
		Use:   "search <pattern> [file...]",
		Short: "Search files (or stdin) for a pattern",
		Long: `Search reports the rune offset of every occurrence of the pattern in the
given files, one "file:offset" line per match. Without files it reads the
text from stdin. A single input is searched in parallel chunks; multiple
files are searched concurrently.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			algo, err := algorithmByName(algoName)
			if err != nil {
				return err
			}
			return app.runSearch(cmd.Context(), algo, args[0], args[1:], countOnly, stats, workers)
		},
	}

	cmd.Flags().StringVarP(&algoName, "algorithm", "a", app.cfg.Algorithm, "search algorithm: naive, border, kmp or bmh")
	cmd.Flags().BoolVarP(&countOnly, "count", "c", false, "print only the number of matches per input")
	cmd.Flags().BoolVar(&stats, "stats", false, "print comparison statistics per input")
	cmd.Flags().IntVar(&workers, "workers", app.cfg.Workers, "search concurrency (0 = one worker per CPU)")

	return cmd
}

type searchResult struct {
	name      string
	positions []int
	metric    *measure.Metric
}

func (app *App) runSearch(ctx context.Context, algo search.Algorithm, pattern string, files []string, countOnly, stats bool, workers int) error {
	if len(files) == 0 {
		text, err := io.ReadAll(app.in)
		if err != nil {
			return errors.Wrap(err, "unable to read stdin")
		}
		result, err := searchText(ctx, algo, pattern, "stdin", string(text), workers)
		if err != nil {
			return err
		}
		app.printResult(result, countOnly, stats)
		return nil
	}

	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]*searchResult, len(files))
	errGrp, dCtx := errgroup.WithContext(ctx)
	errGrp.SetLimit(workers)
	for fileIdx, name := range files {
		fileIdx, name := fileIdx, name
		errGrp.Go(func() error {
			text, err := os.ReadFile(name)
			if err != nil {
				return errors.Wrapf(err, "unable to read %s", name)
			}
			result, err := searchText(dCtx, algo, pattern, name, string(text), 1)
			if err != nil {
				return err
			}
			results[fileIdx] = result
			return nil
		})
	}
	if err := errGrp.Wait(); err != nil {
		return err
	}

	for _, result := range results {
		app.printResult(result, countOnly, stats)
	}
	return nil
}

func searchText(ctx context.Context, algo search.Algorithm, pattern, name, text string, workers int) (*searchResult, error) {
	metric := &measure.Metric{}
	start := time.Now()
	positions, err := search.SearchChunks(ctx, algo, text, pattern, workers, search.WithMetric(metric))
	if err != nil {
		return nil, errors.Wrapf(err, "searching %s", name)
	}
	metric.AddElapsed(time.Since(start))
	return &searchResult{name: name, positions: positions, metric: metric}, nil
}

func (app *App) printResult(result *searchResult, countOnly, stats bool) {
	st := app.styles()
	if countOnly {
		fmt.Fprintf(app.out, "%s: %s\n",
			st.file.Render(result.name),
			st.count.Render(strconv.Itoa(len(result.positions))))
	} else {
		for _, pos := range result.positions {
			fmt.Fprintf(app.out, "%s:%s\n",
				st.file.Render(result.name),
				st.pos.Render(strconv.Itoa(pos)))
		}
	}
	if stats {
		fmt.Fprintf(app.out, "%s\n", st.stat.Render(result.name+": "+result.metric.String()))
	}
}
