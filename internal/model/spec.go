package model

import (
	"fmt"
	"strings"
)

// SurfaceSpec is the plain-data description of a wall or obstacle shape.
type SurfaceSpec struct {
	Shape      string    `json:"shape" yaml:"shape"`
	Dimensions []float64 `json:"dimensions" yaml:"dimensions"`
}

// WallSpec describes a wall as handed over by a collection front-end.
type WallSpec struct {
	Label       string        `json:"label,omitempty" yaml:"label,omitempty"`
	SurfaceSpec `yaml:",inline"`
	Paint       string        `json:"paint" yaml:"paint"`
	Coats       int           `json:"coats" yaml:"coats"`
	Obstacles   []SurfaceSpec `json:"obstacles,omitempty" yaml:"obstacles,omitempty"`
}

// RoomSpec describes a room and its walls.
type RoomSpec struct {
	Name  string     `json:"name" yaml:"name"`
	Walls []WallSpec `json:"walls" yaml:"walls"`
}

// JobSpec describes every room of a calculator run.
type JobSpec struct {
	Name  string     `json:"name,omitempty" yaml:"name,omitempty"`
	Rooms []RoomSpec `json:"rooms" yaml:"rooms"`
}

// WallCount returns the number of walls across all rooms.
func (s JobSpec) WallCount() int {
	n := 0
	for _, r := range s.Rooms {
		n += len(r.Walls)
	}
	return n
}

// BuildJob commits a job description into a Job, looking every paint up in
// the catalog. It stops at the first invalid element and reports where it is.
func BuildJob(spec JobSpec, catalog Catalog) (*Job, error) {
	if len(spec.Rooms) == 0 {
		return nil, ErrEmptyJob
	}
	rooms := make([]*Room, 0, len(spec.Rooms))
	for i, rs := range spec.Rooms {
		room, err := BuildRoom(rs, catalog)
		if err != nil {
			return nil, fmt.Errorf("room %d %q: %w", i+1, rs.Name, err)
		}
		rooms = append(rooms, room)
	}
	return NewJob(spec.Name, rooms...)
}

// BuildRoom commits a single room description.
func BuildRoom(spec RoomSpec, catalog Catalog) (*Room, error) {
	name := strings.TrimSpace(spec.Name)
	if len(spec.Walls) == 0 {
		return nil, ErrEmptyRoom
	}
	walls := make([]*Wall, 0, len(spec.Walls))
	for i, ws := range spec.Walls {
		wall, err := BuildWall(ws, catalog)
		if err != nil {
			return nil, fmt.Errorf("wall %d: %w", i+1, err)
		}
		walls = append(walls, wall)
	}
	return NewRoom(name, walls...)
}

// BuildWall commits a single wall description with its obstacles.
func BuildWall(spec WallSpec, catalog Catalog) (*Wall, error) {
	surface, err := spec.SurfaceSpec.build(NewSurface)
	if err != nil {
		return nil, err
	}
	paint, err := catalog.Lookup(spec.Paint)
	if err != nil {
		return nil, err
	}
	obstacles := make([]Surface, 0, len(spec.Obstacles))
	for i, obs := range spec.Obstacles {
		o, err := obs.build(NewObstacle)
		if err != nil {
			return nil, fmt.Errorf("obstacle %d: %w", i+1, err)
		}
		obstacles = append(obstacles, o)
	}
	return NewWall(strings.TrimSpace(spec.Label), surface, paint, spec.Coats, obstacles...)
}

func (s SurfaceSpec) build(commit func(ShapeKind, ...float64) (Surface, error)) (Surface, error) {
	kind, err := ParseShapeKind(s.Shape)
	if err != nil {
		return Surface{}, err
	}
	return commit(kind, s.Dimensions...)
}
