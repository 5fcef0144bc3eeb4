package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/greymarch/vitals/internal/config"
	"github.com/greymarch/vitals/internal/data"
	"github.com/greymarch/vitals/internal/game/combat"
	"github.com/greymarch/vitals/internal/game/equip"
	"github.com/greymarch/vitals/internal/model"
)

const DefaultConfigPath = "config/bodysim.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := flag.String("config", DefaultConfigPath, "path to simulator config")
	flag.Parse()

	cfg, err := config.LoadSimulator(*cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	slog.Info("bodysim starting",
		"seed", cfg.Seed,
		"rounds", cfg.Rounds,
		"fighters", len(cfg.Fighters))

	fighters, err := buildFighters(cfg)
	if err != nil {
		return fmt.Errorf("building fighters: %w", err)
	}
	items := buildItems(cfg)

	// One goroutine per fighter: each body is owned by exactly one
	// goroutine for the whole simulation, so no locking is needed.
	g, gctx := errgroup.WithContext(ctx)
	for i, f := range fighters {
		rnd := combat.SeededRNG(cfg.Seed + int64(i))
		g.Go(func() error {
			return simulate(gctx, rnd, f, cfg.Rounds, cfg.StrikePower)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("simulation: %w", err)
	}

	for _, f := range fighters {
		report(f, items)
	}
	return nil
}

// fighter pairs a configured name with its body.
type fighter struct {
	name string
	body *model.Body
}

func buildFighters(cfg config.Simulator) ([]*fighter, error) {
	fighters := make([]*fighter, 0, len(cfg.Fighters))
	for _, spec := range cfg.Fighters {
		variant, err := model.ParseAnatomyVariant(spec.Anatomy)
		if err != nil {
			return nil, fmt.Errorf("fighter %q: %w", spec.Name, err)
		}
		body, err := data.NewBody(variant, spec.TotalHP)
		if err != nil {
			return nil, fmt.Errorf("fighter %q: %w", spec.Name, err)
		}
		fighters = append(fighters, &fighter{name: spec.Name, body: body})
	}
	return fighters, nil
}

func buildItems(cfg config.Simulator) []*model.ItemTemplate {
	items := make([]*model.ItemTemplate, 0, len(cfg.Items))
	for i, spec := range cfg.Items {
		itemType, ok := model.ParseEquipmentType(spec.Type)
		if !ok {
			slog.Warn("unknown item type, assuming accessory", "item", spec.Name, "type", spec.Type)
			itemType = model.EquipAccessory
		}
		items = append(items, &model.ItemTemplate{
			ID:           int32(i + 1),
			Name:         spec.Name,
			Type:         itemType,
			PowerBonus:   spec.Power,
			DefenseBonus: spec.Defense,
			RequiredTags: model.NewTagSet(spec.RequiredTags...),
		})
	}
	return items
}

// simulate hammers one body with random strikes until it dies or the round
// budget runs out.
func simulate(ctx context.Context, rnd *rand.Rand, f *fighter, rounds int, power int32) error {
	for round := 1; round <= rounds; round++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		part, dealt, err := combat.Strike(rnd, power, f.body)
		if err != nil {
			return fmt.Errorf("%s round %d: %w", f.name, round, err)
		}
		if part == nil {
			slog.Debug("strike absorbed", "fighter", f.name, "round", round)
			continue
		}
		slog.Debug("strike landed",
			"fighter", f.name,
			"round", round,
			"part", part.Name(),
			"damage", dealt,
			"tier", part.Tier().String())

		if !f.body.IsAlive() {
			slog.Info("fighter died", "fighter", f.name, "round", round)
			return nil
		}
	}
	return nil
}

func report(f *fighter, items []*model.ItemTemplate) {
	slog.Info("fighter report",
		"fighter", f.name,
		"anatomy", f.body.Variant().String(),
		"alive", f.body.IsAlive(),
		"can_move", f.body.CanMove(),
		"can_manipulate", f.body.CanManipulate(),
		"movement_penalty", fmt.Sprintf("%.2f", f.body.MovementPenalty()),
		"manipulation_penalty", fmt.Sprintf("%.2f", f.body.ManipulationPenalty()))

	for _, line := range f.body.StatusReport() {
		slog.Info("status", "fighter", f.name, "line", line)
	}

	for _, item := range items {
		if target, ok := equip.ChooseTarget(f.body, item); ok {
			slog.Info("equip check",
				"fighter", f.name,
				"item", item.Name,
				"ok", true,
				"target", target.Name())
		} else {
			slog.Info("equip check",
				"fighter", f.name,
				"item", item.Name,
				"ok", false,
				"required", strings.Join(item.RequiredTags.Values(), ","))
		}
	}
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
