package dubins

import (
	"log/slog"
)

// Planner plans paths for a vehicle with a fixed minimum turning radius.
// A Planner is immutable and safe for concurrent use.
type Planner struct {
	radius float64
	logger *slog.Logger
}

// Option configures a [Planner].
type Option func(*Planner)

// WithLogger makes the planner log to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(p *Planner) { p.logger = l }
}

// NewPlanner returns a planner for the given minimum turning radius. The
// error wraps [ErrInvalidRadius] if the radius is not positive and finite.
func NewPlanner(radius float64, opts ...Option) (*Planner, error) {
	if err := validateRadius(radius); err != nil {
		return nil, err
	}
	p := &Planner{radius: radius}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Radius returns the planner's minimum turning radius.
func (p *Planner) Radius() float64 {
	return p.radius
}

func (p *Planner) log() *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return Logger()
}

// Candidates is like [EnumerateAllCandidates] with the planner's radius.
func (p *Planner) Candidates(start, end Pose) ([]Path, error) {
	return enumerate(start, end, p.radius, p.log())
}

// Shortest is like [FindShortestPath] with the planner's radius.
func (p *Planner) Shortest(start, end Pose) (Path, bool, error) {
	return findShortestPath(start, end, p.radius, p.log())
}
