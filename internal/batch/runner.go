// Package batch runs independent hands across a seed range on a worker
// pool and feeds the resulting records to a sink in seed order.
package batch

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/cardroom/holdemgen/internal/game"
	"github.com/cardroom/holdemgen/internal/provider"
	"github.com/cardroom/holdemgen/internal/randutil"
)

// ProviderFactory builds the action and chat providers for one seat of one
// hand. The default wires personality providers with per-seat RNG streams
// derived from the hand seed; tests substitute stubs.
type ProviderFactory func(seed int64, seat int, personality string) (game.ActionProvider, game.ChatProvider, error)

// Config describes a batch run.
type Config struct {
	StartSeed     int64
	EndSeed       int64 // inclusive
	Players       int
	SmallBlind    int
	BigBlind      int
	StartingStack int
	Personalities []string // per-seat, round-robin; catalog order when empty
	Workers       int
	Timeout       time.Duration
	Factory       ProviderFactory
	Sink          Sink
	Logger        *log.Logger
	Clock         quartz.Clock
}

// Failure is one seed whose hand could not produce a record.
type Failure struct {
	Seed int64
	Err  error
}

// Report aggregates a finished batch.
type Report struct {
	Hands     int
	Showdowns int
	Degraded  int
	Failures  []Failure
	Elapsed   time.Duration
}

// Runner executes hands across a seed range. Seeds are independent: no
// mutable state crosses them, so record content per seed does not depend
// on worker count or completion order.
type Runner struct {
	cfg    Config
	logger *log.Logger
}

// New validates the configuration and applies defaults.
func New(cfg Config) (*Runner, error) {
	if cfg.EndSeed < cfg.StartSeed {
		return nil, fmt.Errorf("batch: end seed %d before start seed %d", cfg.EndSeed, cfg.StartSeed)
	}
	if cfg.Players < 2 || cfg.Players > 10 {
		return nil, fmt.Errorf("batch: need 2-10 players, got %d", cfg.Players)
	}
	if cfg.Sink == nil {
		return nil, fmt.Errorf("batch: sink is required")
	}
	for _, name := range cfg.Personalities {
		if _, ok := provider.Profiles[name]; !ok {
			return nil, fmt.Errorf("batch: unknown personality %q", name)
		}
	}
	if cfg.SmallBlind <= 0 {
		cfg.SmallBlind = 5
	}
	if cfg.BigBlind <= 0 {
		cfg.BigBlind = cfg.SmallBlind * 2
	}
	if cfg.StartingStack <= 0 {
		cfg.StartingStack = 100 * cfg.BigBlind
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.Clock == nil {
		cfg.Clock = quartz.NewReal()
	}
	if cfg.Factory == nil {
		cfg.Factory = personalityFactory
	}
	return &Runner{cfg: cfg, logger: cfg.Logger.WithPrefix("batch")}, nil
}

// personalityFactory is the default seat wiring: one personality action
// provider and one chat provider per seat, each on its own RNG stream so
// deck order, decisions and chat stay uncorrelated.
func personalityFactory(seed int64, seat int, personality string) (game.ActionProvider, game.ChatProvider, error) {
	actions, err := provider.NewPersonality(personality, randutil.Derive(seed, randutil.ForSeat(randutil.StreamActions, seat)))
	if err != nil {
		return nil, nil, err
	}
	chat, err := provider.NewPersonalityChat(personality, randutil.Derive(seed, randutil.ForSeat(randutil.StreamChat, seat)))
	if err != nil {
		return nil, nil, err
	}
	return actions, chat, nil
}

// Run plays every seed in the range. Individual hand failures are collected
// in the report and never abort the batch; the only errors returned are
// sink failures and context cancellation. Records reach the sink in seed
// order regardless of completion order.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := r.cfg.Clock.Now()
	count := r.cfg.EndSeed - r.cfg.StartSeed + 1
	r.logger.Info("starting batch",
		"start_seed", r.cfg.StartSeed, "end_seed", r.cfg.EndSeed,
		"players", r.cfg.Players, "workers", r.cfg.Workers)

	records := make([]*game.Record, count)
	failures := make([]*Failure, count)
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.cfg.Workers)

scheduling:
	for seed := r.cfg.StartSeed; seed <= r.cfg.EndSeed; seed++ {
		// Cooperative cancellation between hands: in-flight hands finish,
		// remaining seeds are abandoned.
		select {
		case <-ctx.Done():
			break scheduling
		default:
		}

		slot := seed - r.cfg.StartSeed
		g.Go(func() error {
			record, err := r.playSeed(gctx, seed)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				r.logger.Warn("hand failed", "seed", seed, "error", err)
				failures[slot] = &Failure{Seed: seed, Err: err}
				return nil
			}
			records[slot] = record
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{}
	for slot := range records {
		if f := failures[slot]; f != nil {
			report.Failures = append(report.Failures, *f)
			continue
		}
		record := records[slot]
		if record == nil {
			// Seed was abandoned by cancellation.
			continue
		}
		if err := r.cfg.Sink.Write(record); err != nil {
			return nil, err
		}
		report.Hands++
		if record.HandSummary.ShowdownReached {
			report.Showdowns++
		}
		if record.Degraded {
			report.Degraded++
		}
	}
	report.Elapsed = r.cfg.Clock.Since(start)

	r.logger.Info("batch complete",
		"hands", report.Hands, "showdowns", report.Showdowns,
		"degraded", report.Degraded, "failures", len(report.Failures),
		"elapsed", report.Elapsed)
	if ctx.Err() != nil {
		return report, ctx.Err()
	}
	return report, nil
}

// playSeed builds and runs one hand. Everything the hand observes derives
// from the seed, so reruns reproduce the record exactly.
func (r *Runner) playSeed(ctx context.Context, seed int64) (*game.Record, error) {
	names := r.cfg.Personalities
	if len(names) == 0 {
		names = provider.ProfileNames()
	}

	seats := make([]game.SeatConfig, r.cfg.Players)
	for i := range seats {
		name := names[i%len(names)]
		actions, chat, err := r.cfg.Factory(seed, i, name)
		if err != nil {
			return nil, err
		}
		seats[i] = game.SeatConfig{
			Stack:       r.cfg.StartingStack,
			Personality: name,
			Traits:      provider.Profiles[name].Traits,
			Actions:     actions,
			Chat:        chat,
		}
	}

	hand, err := game.NewHand(game.Config{
		Seed:            seed,
		Seats:           seats,
		Button:          int(uint64(seed) % uint64(r.cfg.Players)),
		SmallBlind:      r.cfg.SmallBlind,
		BigBlind:        r.cfg.BigBlind,
		ProviderTimeout: r.cfg.Timeout,
		Logger:          r.cfg.Logger,
		Clock:           r.cfg.Clock,
	})
	if err != nil {
		return nil, err
	}
	return hand.Run(ctx)
}
