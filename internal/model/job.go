package model

import (
	"fmt"

	"github.com/google/uuid"
)

// Room is a named group of walls. Names need not be unique; the ID tells
// rooms apart.
type Room struct {
	id    string
	name  string
	walls []*Wall
}

// NewRoom groups committed walls under a room name. Every wall must be able
// to produce an estimate; a wall that was not built with NewWall is rejected
// with the error its estimate reports.
func NewRoom(name string, walls ...*Wall) (*Room, error) {
	if len(walls) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptyRoom, name)
	}
	for i, w := range walls {
		if w == nil {
			return nil, fmt.Errorf("room %q: %w: wall %d is nil", name, ErrInvalidDimensions, i+1)
		}
		if _, err := w.Estimate(); err != nil {
			return nil, fmt.Errorf("room %q: %s: %w", name, wallName(w, i), err)
		}
	}
	ws := make([]*Wall, len(walls))
	copy(ws, walls)
	return &Room{
		id:    uuid.New().String()[:8],
		name:  name,
		walls: ws,
	}, nil
}

func (r *Room) ID() string   { return r.id }
func (r *Room) Name() string { return r.name }

// Walls returns the room's walls in the order they were defined.
func (r *Room) Walls() []*Wall {
	out := make([]*Wall, len(r.walls))
	copy(out, r.walls)
	return out
}

// TotalCost sums the cost of every wall in the room.
func (r *Room) TotalCost() float64 {
	var total float64
	for _, w := range r.walls {
		total += w.Cost()
	}
	return total
}

// NetArea sums the paintable area of every wall in the room.
func (r *Room) NetArea() float64 {
	var total float64
	for _, w := range r.walls {
		total += w.NetArea()
	}
	return total
}

// TotalsByPaint maps each paint name used in the room to its bucket count.
func (r *Room) TotalsByPaint() map[string]int {
	return bucketsByPaint(r.walls)
}

// PaintTotals returns per-paint totals for the room in order of first use.
func (r *Room) PaintTotals() []PaintTotal {
	acc := newPaintAccumulator()
	acc.add(r.walls...)
	return acc.totals()
}

// Job is every room to be painted in one calculator run.
type Job struct {
	name  string
	rooms []*Room
}

// NewJob collects the rooms of a run.
func NewJob(name string, rooms ...*Room) (*Job, error) {
	if len(rooms) == 0 {
		return nil, ErrEmptyJob
	}
	rs := make([]*Room, len(rooms))
	copy(rs, rooms)
	return &Job{name: name, rooms: rs}, nil
}

func (j *Job) Name() string { return j.name }

// Rooms returns the job's rooms in input order.
func (j *Job) Rooms() []*Room {
	out := make([]*Room, len(j.rooms))
	copy(out, j.rooms)
	return out
}

// TotalCost sums the cost of every room.
func (j *Job) TotalCost() float64 {
	var total float64
	for _, r := range j.rooms {
		total += r.TotalCost()
	}
	return total
}

// TotalsByPaint maps each paint name to the buckets needed across every wall
// of every room. Walls sharing a paint accumulate into a single entry.
func (j *Job) TotalsByPaint() map[string]int {
	return bucketsByPaint(j.walls())
}

// PaintTotals returns per-paint totals for the whole job in order of first use.
func (j *Job) PaintTotals() []PaintTotal {
	acc := newPaintAccumulator()
	acc.add(j.walls()...)
	return acc.totals()
}

// PerRoomReport returns the cost and paint totals of a single room, scoped to
// that room's walls only.
func (j *Job) PerRoomReport(r *Room) RoomReport {
	totals := r.PaintTotals()
	rep := RoomReport{
		RoomID:  r.id,
		Name:    r.name,
		Walls:   len(r.walls),
		NetArea: r.NetArea(),
		Cost:    r.TotalCost(),
		ByPaint: totals,
		Details: make([]WallReport, len(r.walls)),
	}
	for _, t := range totals {
		rep.Buckets += t.Buckets
	}
	for i, w := range r.walls {
		rep.Details[i] = WallReport{
			WallID:  w.id,
			Label:   w.label,
			Shape:   w.surface.Describe(),
			NetArea: w.NetArea(),
			Paint:   w.paint.Name,
			Coats:   w.coats,
			Buckets: w.Buckets(),
			Cost:    w.Cost(),
		}
	}
	return rep
}

// RoomReports returns a report for every room in input order. Rooms sharing a
// name are reported separately.
func (j *Job) RoomReports() []RoomReport {
	reports := make([]RoomReport, len(j.rooms))
	for i, r := range j.rooms {
		reports[i] = j.PerRoomReport(r)
	}
	return reports
}

// Warnings lists walls whose obstacles exceed the wall area.
func (j *Job) Warnings() []string {
	var warnings []string
	for ri, r := range j.rooms {
		for wi, w := range r.walls {
			if err := w.Overflow(); err != nil {
				warnings = append(warnings, fmt.Sprintf("room %d %q, %s: %v", ri+1, r.name, wallName(w, wi), err))
			}
		}
	}
	return warnings
}

// Report builds the complete job summary.
func (j *Job) Report() JobReport {
	rep := JobReport{
		Name:      j.name,
		TotalCost: j.TotalCost(),
		ByPaint:   j.PaintTotals(),
		Rooms:     j.RoomReports(),
		Warnings:  j.Warnings(),
	}
	for _, t := range rep.ByPaint {
		rep.TotalBuckets += t.Buckets
	}
	for _, r := range rep.Rooms {
		rep.NetArea += r.NetArea
	}
	return rep
}

func (j *Job) walls() []*Wall {
	var walls []*Wall
	for _, r := range j.rooms {
		walls = append(walls, r.walls...)
	}
	return walls
}

// PaintTotal aggregates every wall that uses one paint.
type PaintTotal struct {
	Paint           PaintEntry `json:"paint"`
	Walls           int        `json:"walls"`
	Buckets         int        `json:"buckets"`
	LitresNeeded    float64    `json:"litres_needed"`
	LitresPurchased float64    `json:"litres_purchased"`
	Cost            float64    `json:"cost"`
}

// WallReport is one line of a room's wall schedule.
type WallReport struct {
	WallID  string  `json:"wall_id"`
	Label   string  `json:"label,omitempty"`
	Shape   string  `json:"shape"`
	NetArea float64 `json:"net_area"`
	Paint   string  `json:"paint"`
	Coats   int     `json:"coats"`
	Buckets int     `json:"buckets"`
	Cost    float64 `json:"cost"`
}

// RoomReport is the summary of a single room.
type RoomReport struct {
	RoomID  string       `json:"room_id"`
	Name    string       `json:"name"`
	Walls   int          `json:"walls"`
	NetArea float64      `json:"net_area"`
	Buckets int          `json:"buckets"`
	Cost    float64      `json:"cost"`
	ByPaint []PaintTotal `json:"by_paint"`
	Details []WallReport `json:"wall_details"`
}

// JobReport is the summary of a whole job.
type JobReport struct {
	Name         string       `json:"name"`
	NetArea      float64      `json:"net_area"`
	TotalBuckets int          `json:"total_buckets"`
	TotalCost    float64      `json:"total_cost"`
	ByPaint      []PaintTotal `json:"by_paint"`
	Rooms        []RoomReport `json:"rooms"`
	Warnings     []string     `json:"warnings,omitempty"`
}

// paintAccumulator sums wall estimates per paint, keeping first-use order.
type paintAccumulator struct {
	order []string
	byKey map[string]*PaintTotal
}

func newPaintAccumulator() *paintAccumulator {
	return &paintAccumulator{byKey: make(map[string]*PaintTotal)}
}

func (a *paintAccumulator) add(walls ...*Wall) {
	for _, w := range walls {
		est, err := w.Estimate()
		if err != nil {
			// NewRoom admits only walls that estimate cleanly.
			continue
		}
		key := paintKey(w.paint.Name)
		t, ok := a.byKey[key]
		if !ok {
			t = &PaintTotal{Paint: w.paint}
			a.byKey[key] = t
			a.order = append(a.order, key)
		}
		t.Walls++
		t.Buckets += est.Buckets
		t.LitresNeeded += est.LitresNeeded
		t.LitresPurchased += est.LitresPurchased
		t.Cost += est.Cost
	}
}

func (a *paintAccumulator) totals() []PaintTotal {
	out := make([]PaintTotal, 0, len(a.order))
	for _, key := range a.order {
		out = append(out, *a.byKey[key])
	}
	return out
}

func bucketsByPaint(walls []*Wall) map[string]int {
	acc := newPaintAccumulator()
	acc.add(walls...)
	totals := make(map[string]int, len(acc.order))
	for _, t := range acc.totals() {
		totals[t.Paint.Name] = t.Buckets
	}
	return totals
}

func wallName(w *Wall, index int) string {
	if w.label != "" {
		return fmt.Sprintf("wall %d %q", index+1, w.label)
	}
	return fmt.Sprintf("wall %d", index+1)
}
