// Package generate builds dungeon levels: rooms joined by L-shaped
// corridors, plus spawn points for monsters and items.
package generate

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"mistery/internal/gamemap"
	"mistery/internal/geom"
	"mistery/internal/telemetry"

	"go.opentelemetry.io/otel/attribute"
)

// Config drives room-and-corridor generation.
type Config struct {
	Width, Height uint32
	MaxRooms      int // placement attempts
	MinRoomSize   int // inclusive
	MaxRoomSize   int // exclusive
	Rand          *rand.Rand
}

// DefaultConfig returns the stock 80×50 layout with 30 attempts and rooms
// between 7 and 11 tiles on a side.
func DefaultConfig(r *rand.Rand) Config {
	return Config{
		Width:       80,
		Height:      50,
		MaxRooms:    30,
		MinRoomSize: 7,
		MaxRoomSize: 12,
		Rand:        r,
	}
}

func (c Config) validate() error {
	switch {
	case c.Rand == nil:
		return errors.New("nil random source")
	case c.MinRoomSize < 3:
		return fmt.Errorf("min room size %d leaves no interior", c.MinRoomSize)
	case c.MaxRoomSize <= c.MinRoomSize:
		return fmt.Errorf("max room size %d must exceed min room size %d", c.MaxRoomSize, c.MinRoomSize)
	case c.MaxRooms < 1:
		return fmt.Errorf("max rooms %d must be positive", c.MaxRooms)
	case int64(c.Width) < int64(c.MaxRoomSize)+2 || int64(c.Height) < int64(c.MaxRoomSize)+2:
		return fmt.Errorf("map %dx%d too small for rooms up to %d", c.Width, c.Height, c.MaxRoomSize-1)
	}
	return nil
}

// RoomsAndCorridors makes MaxRooms attempts at placing a random room. A room
// overlapping an accepted one is discarded; otherwise its interior is
// carved and joined to the previous room's center by an L-shaped corridor
// whose bend is picked by a coin flip.
func RoomsAndCorridors(ctx context.Context, cfg Config) (*gamemap.WorldMap, error) {
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}

	_, span := telemetry.Tracer("generate").Start(ctx, "generate.rooms_and_corridors")
	defer span.End()

	m := gamemap.New(cfg.Width, cfg.Height)
	rng := cfg.Rand
	for i := 0; i < cfg.MaxRooms; i++ {
		w := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize)
		h := cfg.MinRoomSize + rng.Intn(cfg.MaxRoomSize-cfg.MinRoomSize)
		x := 1 + rng.Intn(int(cfg.Width)-w-2)
		y := 1 + rng.Intn(int(cfg.Height)-h-2)
		room := geom.NewRect(uint32(x), uint32(y), uint32(w), uint32(h))

		if overlapsAny(room, m.Rooms()) {
			continue
		}
		carveRoom(m, room)
		if rooms := m.Rooms(); len(rooms) > 0 {
			connect(m, rooms[len(rooms)-1].Center(), room.Center(), rng)
		}
		m.AddRoom(room)
	}
	m.ReloadBlocked()

	span.SetAttributes(
		attribute.Int("map.width", int(cfg.Width)),
		attribute.Int("map.height", int(cfg.Height)),
		attribute.Int("map.room_count", len(m.Rooms())),
	)
	return m, nil
}

func overlapsAny(r geom.Rect, rooms []geom.Rect) bool {
	for _, other := range rooms {
		if r.Intersects(other) {
			return true
		}
	}
	return false
}

// carveRoom turns the interior of r into floor; the border stays wall.
func carveRoom(m *gamemap.WorldMap, r geom.Rect) {
	for y := r.Bottom() + 1; y < r.Top(); y++ {
		for x := r.Left() + 1; x < r.Right(); x++ {
			m.SetTile(geom.Pt(x, y), gamemap.TileFloor)
		}
	}
}
