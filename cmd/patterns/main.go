package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/designlab/patterns/abstractfactory"
	"github.com/designlab/patterns/builder"
	"github.com/designlab/patterns/catalog"
	"github.com/designlab/patterns/factory"
	"github.com/designlab/patterns/prototype"
	"github.com/designlab/patterns/singleton"
)

// stringList is a repeatable string flag.
type stringList []string

func (l *stringList) String() string { return strings.Join(*l, ",") }

func (l *stringList) Set(v string) error {
	*l = append(*l, v)
	return nil
}

// newCatalog is the composition root: every pattern demo is registered here,
// explicitly, and nowhere else.
func newCatalog() *catalog.Registry {
	reg := catalog.NewRegistry()
	reg.MustRegister(
		singleton.Demo(),
		factory.Demo(),
		abstractfactory.Demo(),
		builder.Demo(),
		prototype.Demo(),
	)
	return reg
}

// newCLILogger builds a colored development logger at the given level.
func newCLILogger(level zapcore.Level) (singleton.Logger, error) {
	return singleton.NewWith(func(cfg *zap.Config) {
		*cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(level)
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	})
}

// run executes the CLI and returns its exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("patterns", flag.ContinueOnError)
	flags.SetOutput(stderr)

	var demoNames stringList
	list := flags.Bool("list", false, "list registered demos and exit")
	flags.Var(&demoNames, "demo", "demo to run (repeatable; default: all)")
	suitePath := flags.String("suite", "", "path to a YAML suite manifest")
	levelName := flags.String("level", "", "log level: debug, info, warn, error")

	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg := loadConfig()
	if *suitePath == "" {
		*suitePath = cfg.SuitePath
	}
	if *levelName == "" {
		*levelName = cfg.LogLevel
	}

	reg := newCatalog()

	if *list {
		for _, d := range reg.All() {
			_, _ = fmt.Fprintf(stdout, "%-18s %s\n", d.Name, d.Summary)
		}
		return 0
	}

	if *suitePath != "" && len(demoNames) > 0 {
		_, _ = fmt.Fprintln(stderr, "patterns: -suite and -demo are mutually exclusive")
		return 2
	}

	entries, levelOverride, code := resolveSelection(reg, demoNames, *suitePath, stderr)
	if code != 0 {
		return code
	}
	if levelOverride != "" {
		*levelName = levelOverride
	}

	level, err := zapcore.ParseLevel(*levelName)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "patterns: bad log level %q\n", *levelName)
		return 2
	}

	log, err := newCLILogger(level)
	if err != nil {
		_, _ = fmt.Fprintf(stderr, "patterns: logger: %v\n", err)
		return 1
	}
	defer func() { _ = log.Sync() }()

	if err := executeAll(context.Background(), reg, entries, log); err != nil {
		log.Errorf("demo failed: %v", err)
		return 1
	}
	return 0
}

// resolveSelection turns flags/manifest into an ordered entry list, checking
// every name against the registry up front so typos fail fast as usage
// errors. The returned string is the suite's level override, if any.
func resolveSelection(reg *catalog.Registry, names stringList, suitePath string, stderr io.Writer) ([]suiteEntry, string, int) {
	var (
		entries       []suiteEntry
		levelOverride string
	)

	switch {
	case suitePath != "":
		suite, err := loadSuite(suitePath)
		if err != nil {
			_, _ = fmt.Fprintf(stderr, "patterns: %v\n", err)
			return nil, "", 2
		}
		entries = suite.Demos
		levelOverride = suite.Level
	case len(names) > 0:
		for _, name := range names {
			entries = append(entries, suiteEntry{Name: name, Repeat: 1})
		}
	default:
		for _, name := range reg.Names() {
			entries = append(entries, suiteEntry{Name: name, Repeat: 1})
		}
	}

	for _, entry := range entries {
		if _, err := reg.Lookup(entry.Name); err != nil {
			_, _ = fmt.Fprintf(stderr, "patterns: %v (known: %s)\n", err, strings.Join(reg.Names(), ", "))
			return nil, "", 2
		}
	}

	return entries, levelOverride, 0
}

// executeAll runs the selected demos in order, stopping at the first failure.
func executeAll(ctx context.Context, reg *catalog.Registry, entries []suiteEntry, log singleton.Logger) error {
	for _, entry := range entries {
		for i := 0; i < entry.Repeat; i++ {
			demoLog := log.Named(entry.Name)
			demoLog.Infof("--- running %s ---", entry.Name)
			if err := reg.Run(ctx, entry.Name, demoLog); err != nil {
				return err
			}
		}
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
