package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"mistery/internal/combatlog"
	"mistery/internal/component"
	"mistery/internal/config"
	"mistery/internal/ecs"
	"mistery/internal/factory"
	"mistery/internal/generate"
	"mistery/internal/system"
	"mistery/internal/telemetry"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

// Engine owns one running simulation: a level, its entities and the tick
// pipeline. It has no terminal dependency.
type Engine struct {
	State  *system.State
	Player ecs.EntityID

	turns  *system.TurnScheduler
	input  *system.InputDispatcher
	tracer trace.Tracer
	ticks  uint64
}

// NewEngine generates a level from cfg, puts the player in the first room
// and fills the others with monsters and items.
func NewEngine(ctx context.Context, cfg *config.Config, rng *rand.Rand, logger logrus.FieldLogger) (*Engine, error) {
	m, err := generate.RoomsAndCorridors(ctx, generate.Config{
		Width:       cfg.Map.Width,
		Height:      cfg.Map.Height,
		MaxRooms:    cfg.Map.MaxRooms,
		MinRoomSize: cfg.Map.MinRoomSize,
		MaxRoomSize: cfg.Map.MaxRoomSize,
		Rand:        rng,
	})
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}
	if len(m.Rooms()) == 0 {
		return nil, errors.New("new engine: no rooms generated")
	}

	w := ecs.NewWorld()
	c := component.NewStores(w)
	start := m.Rooms()[0].Center()
	player := factory.NewPlayer(w, c, start, cfg.Game.FOVRadius)

	spawns := generate.Populate(m, generate.SpawnConfig{
		MaxMonsters: cfg.Spawn.MaxMonsters,
		MaxItems:    cfg.Spawn.MaxItems,
		Rand:        rng,
	})
	for _, p := range spawns.Monsters {
		factory.NewRandomMonster(w, c, p, cfg.Game.FOVRadius, rng)
	}
	for _, p := range spawns.Items {
		factory.NewRandomItem(w, c, p, rng)
	}

	log := combatlog.New(logger)
	log.Push("Welcome to Mistery!")

	logger.WithFields(logrus.Fields{
		"rooms":    len(m.Rooms()),
		"monsters": len(spawns.Monsters),
		"items":    len(spawns.Items),
	}).Info("level generated")

	s := &system.State{
		World:     w,
		C:         c,
		Map:       m,
		Log:       log,
		Rand:      rng,
		PlayerPos: start,
		Logger:    logger,
	}
	system.IndexMap(s)

	return &Engine{
		State:  s,
		Player: player,
		turns:  system.NewTurnScheduler(),
		input:  system.NewInputDispatcher(),
		tracer: telemetry.Tracer("engine"),
	}, nil
}

// SetPlayerName renames the hero in the combat log.
func (e *Engine) SetPlayerName(name string) {
	if name != "" {
		e.State.C.Name.Insert(e.Player, component.Name{Name: name})
	}
}

// Tick runs one full pass of the pipeline. held is the set of actions
// currently held down; only new presses have an effect.
func (e *Engine) Tick(ctx context.Context, held []system.Action) {
	_, span := e.tracer.Start(ctx, "engine.tick")
	defer span.End()

	s := e.State
	e.turns.Run(s)
	e.input.Sample(held)
	e.input.Dispatch(s)

	system.IndexMap(s)
	system.UpdateVisibility(s)
	system.RunMonsterAI(s)
	system.ResolveMoves(s)
	system.ResolvePickUps(s)
	system.ResolveItemUse(s)
	system.ResolveDrops(s)
	system.ResolveMelee(s)
	system.ResolveDamage(s)
	s.World.Maintain()

	e.ticks++
	span.SetAttributes(
		attribute.Int64("engine.tick", int64(e.ticks)),
		attribute.String("engine.turn", e.turns.Current().String()),
	)
}

// Turn reports which side may act next.
func (e *Engine) Turn() system.Turn { return e.turns.Current() }

// PlayerAlive reports whether the hero still lives.
func (e *Engine) PlayerAlive() bool { return e.State.World.Alive(e.Player) }

// Inventory lists the hero's items in pickup order.
func (e *Engine) Inventory() []ecs.EntityID {
	return system.Backpack(e.State, e.Player)
}

// UseItem queues the hero using item on the next tick.
func (e *Engine) UseItem(item ecs.EntityID) bool {
	return e.input.RequestUse(e.State, item)
}

// DropItem queues the hero dropping item on the next tick.
func (e *Engine) DropItem(item ecs.EntityID) bool {
	return e.input.RequestDrop(e.State, item)
}

// AwaitingInput reports whether the hero holds an action point, so a key
// press on the next tick would be acted on.
func (e *Engine) AwaitingInput() bool {
	a, ok := e.State.C.ActsOnTurns.Get(e.Player)
	return ok && a.CanAct()
}
