package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"go.llib.dev/sorters/pkg/errorkit"
	"go.llib.dev/sorters/pkg/logging"
	"go.llib.dev/sorters/pkg/sortkit"
	"go.llib.dev/sorters/pkg/sortkit/sortstat"
	"go.llib.dev/sorters/port/sorter"
)

const (
	ErrUnknownStrategy errorkit.Error = "unknown sorting strategy"
	ErrRandomTooLarge  errorkit.Error = "random input is too large"
)

// maxRandom caps --random, so the generated values and their range fit in an int.
const maxRandom = 1 << 24

var (
	// strategyFlag selects the sorting strategy by name.
	strategyFlag = cli.StringFlag{
		Name:   "strategy",
		Usage:  "The `NAME` of the sorting strategy: " + strings.Join(sortkit.Names(), ", "),
		Value:  "merge",
		EnvVar: "SORTERS_STRATEGY",
	}
	// allFlag runs every strategy on the same input.
	allFlag = cli.BoolFlag{
		Name:   "all",
		Usage:  "Sort the input with every strategy and print each result",
		EnvVar: "SORTERS_ALL",
	}
	// randomFlag replaces the arguments with generated numbers.
	randomFlag = cli.IntFlag{
		Name:   "random",
		Usage:  "Sort `N` random integers instead of the arguments, at most " + strconv.Itoa(maxRandom),
		EnvVar: "SORTERS_RANDOM",
	}
	// seedFlag makes the generated input reproducible.
	seedFlag = cli.Int64Flag{
		Name:   "seed",
		Usage:  "The `SEED` of the random input, the current time when zero",
		EnvVar: "SORTERS_SEED",
	}
	// statsFlag logs the comparison and swap counts of each sort.
	statsFlag = cli.BoolFlag{
		Name:   "stats",
		Usage:  "Log comparison and swap counts",
		EnvVar: "SORTERS_STATS",
	}
	// verifyFlag double checks the output order.
	verifyFlag = cli.BoolFlag{
		Name:   "verify",
		Usage:  "Fail when a result is not in ascending order",
		EnvVar: "SORTERS_VERIFY",
	}
	// logLevelFlag sets the level of the log entries written to stderr.
	logLevelFlag = cli.StringFlag{
		Name:   "log-level",
		Usage:  "The `LEVEL` of logging: debug, info, warn, error or fatal",
		Value:  "info",
		EnvVar: "SORTERS_LOG_LEVEL",
	}
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		logging.Error(context.Background(), "sorters failed", logging.ErrField(err))
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "sorters"
	app.Usage = "Sort integers with textbook in-place sorting strategies"
	app.ArgsUsage = "[--] [numbers...]"
	app.Description = "Numbers are read from the arguments.\n" +
		"   Put -- before them when the first one is negative, e.g. sorters -- -5 3"
	app.Writer = stdout
	app.ErrWriter = stderr
	app.Flags = []cli.Flag{
		strategyFlag,
		allFlag,
		randomFlag,
		seedFlag,
		statsFlag,
		verifyFlag,
		logLevelFlag,
	}
	app.Action = func(c *cli.Context) error {
		return run(c, stdout, stderr)
	}
	return app
}

func run(c *cli.Context, stdout, stderr io.Writer) error {
	level, err := logging.ParseLevel(c.String(logLevelFlag.Name))
	if err != nil {
		return errors.Wrap(err, "log-level flag")
	}
	logger := &logging.Logger{Out: stderr, Level: level}

	strategies, err := selectStrategies(c)
	if err != nil {
		return err
	}

	input, err := readInput(c)
	if err != nil {
		return err
	}

	ctx := logging.ContextWith(context.Background(), logging.Field("len", len(input)))
	logger.Debug(ctx, "input ready", logging.Field("strategies", len(strategies)))

	for _, strategy := range strategies {
		values := slices.Clone(input)
		var s sorter.Sorter = strategy.Sorter
		if c.Bool(statsFlag.Name) {
			s = sortstat.Measured{
				Name:     strategy.Name,
				Sorter:   strategy.Sorter,
				Observer: sortstat.LoggingObserver{Logger: logger, Level: logging.LevelInfo, Context: ctx},
			}
		}
		sorter.Sort(values, s)

		if c.Bool(verifyFlag.Name) {
			if err := sorter.Verify(sorter.Slice[int](values)); err != nil {
				return errors.Wrapf(err, "%s strategy", strategy.Name)
			}
		}
		if err := printValues(stdout, strategy.Name, values, 1 < len(strategies)); err != nil {
			return errors.Wrap(err, "write output")
		}
	}
	return nil
}

func selectStrategies(c *cli.Context) ([]sortkit.Strategy, error) {
	if c.Bool(allFlag.Name) {
		return sortkit.Strategies(), nil
	}
	name := c.String(strategyFlag.Name)
	strategy, ok := sortkit.Lookup(name)
	if !ok {
		return nil, ErrUnknownStrategy.F("%q, known strategies: %s", name, strings.Join(sortkit.Names(), ", "))
	}
	return []sortkit.Strategy{strategy}, nil
}

func readInput(c *cli.Context) ([]int, error) {
	if n := c.Int(randomFlag.Name); 0 < n {
		if maxRandom < n {
			return nil, ErrRandomTooLarge.F("%d exceeds the limit of %d", n, maxRandom)
		}
		seed := c.Int64(seedFlag.Name)
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		rnd := rand.New(rand.NewSource(seed))
		values := make([]int, n)
		for i := range values {
			values[i] = rnd.Intn(n*10) - n*5
		}
		return values, nil
	}
	values := make([]int, 0, len(c.Args()))
	for _, arg := range c.Args() {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid number %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

func printValues(w io.Writer, name string, values []int, labeled bool) error {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	line := strings.Join(parts, " ")
	if labeled {
		line = fmt.Sprintf("%s: %s", name, line)
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
