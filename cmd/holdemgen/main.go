package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/cardroom/holdemgen/internal/batch"
	"github.com/cardroom/holdemgen/internal/config"
	"github.com/cardroom/holdemgen/internal/provider"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version       kong.VersionFlag `short:"V" help:"Show version"`
	Run           RunCmd           `cmd:"" default:"1" help:"Generate hand records across a seed range"`
	Personalities PersonalitiesCmd `cmd:"" help:"List the built-in personality profiles"`
}

type RunCmd struct {
	StartSeed int64         `help:"First seed, inclusive" default:"1"`
	EndSeed   int64         `help:"Last seed, inclusive" default:"100"`
	Players   int           `short:"p" help:"Seats at the table" default:"4"`
	Workers   int           `short:"w" help:"Hands played in parallel" default:"4"`
	Out       string        `short:"o" help:"Output directory for JSON records" default:"data"`
	Config    string        `short:"c" help:"HCL session file; its session values override the flags" type:"path"`
	Timeout   time.Duration `help:"Provider timeout per decision" default:"5s"`
	Verbose   bool          `short:"v" help:"Debug logging"`
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("10"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	failStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

func (c *RunCmd) Run() error {
	logger := log.New(os.Stderr)
	if c.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := batch.Config{
		StartSeed: c.StartSeed,
		EndSeed:   c.EndSeed,
		Players:   c.Players,
		Workers:   c.Workers,
		Timeout:   c.Timeout,
		Logger:    logger,
	}

	if c.Config != "" {
		session, err := config.LoadSessionConfig(c.Config)
		if err != nil {
			return err
		}
		if err := session.Validate(); err != nil {
			return fmt.Errorf("config %s: %w", c.Config, err)
		}
		cfg.Players = session.Session.Players
		cfg.SmallBlind = session.Session.SmallBlind
		cfg.BigBlind = session.Session.BigBlind
		cfg.StartingStack = session.Session.StartingStack
		cfg.Workers = session.Session.Workers
		cfg.Timeout = time.Duration(session.Session.TimeoutSeconds) * time.Second
		cfg.Personalities = session.Personalities()
	}

	sink, err := batch.NewDirSink(c.Out)
	if err != nil {
		return err
	}
	cfg.Sink = sink

	runner, err := batch.New(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	report, err := runner.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	printReport(report, c.Out)
	return nil
}

func printReport(report *batch.Report, out string) {
	fmt.Println(titleStyle.Render("Batch summary"))
	fmt.Printf("  %s %d\n", labelStyle.Render("hands:"), report.Hands)
	fmt.Printf("  %s %d\n", labelStyle.Render("showdowns:"), report.Showdowns)
	if report.Degraded > 0 {
		fmt.Printf("  %s %s\n", labelStyle.Render("degraded:"), warnStyle.Render(fmt.Sprintf("%d", report.Degraded)))
	}
	if len(report.Failures) > 0 {
		fmt.Printf("  %s %s\n", labelStyle.Render("failures:"), failStyle.Render(fmt.Sprintf("%d", len(report.Failures))))
		for _, f := range report.Failures {
			fmt.Printf("    seed %d: %v\n", f.Seed, f.Err)
		}
	} else {
		fmt.Printf("  %s %s\n", labelStyle.Render("failures:"), okStyle.Render("0"))
	}
	fmt.Printf("  %s %s\n", labelStyle.Render("elapsed:"), report.Elapsed)
	fmt.Printf("  %s %s\n", labelStyle.Render("output:"), out)
}

type PersonalitiesCmd struct{}

func (PersonalitiesCmd) Run() error {
	for _, name := range provider.ProfileNames() {
		profile := provider.Profiles[name]
		fmt.Printf("%s\n  %s\n", titleStyle.Render(name), profile.PlayStyle)
	}
	return nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("holdemgen"),
		kong.Description("Seed-driven Texas Hold'em hand record generator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
