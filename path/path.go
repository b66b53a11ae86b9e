// Package path accumulates a sequence of path-construction commands —
// move, line, quadratic and cubic curve, close — and flattens them into
// the non-horizontal line segments the sweep-line core consumes.
//
// This is the collaborator spec.md's core assumes exists upstream of it:
// something has to turn a drawn shape into a segment iterator before
// the sweep can run. Package curve supplies curve flattening; path adds
// the subpath bookkeeping (where a MoveTo starts a new subpath, where a
// Close reconnects to it) on top.
package path

import (
	"encoding/json"
	"fmt"

	"github.com/corvidgeo/tessellate/curve"
	"github.com/corvidgeo/tessellate/geom"
)

// commandKind identifies the operation a command records.
type commandKind uint8

const (
	cmdMoveTo commandKind = iota
	cmdLineTo
	cmdQuadTo
	cmdCubicTo
	cmdClose
)

// command is one recorded path-construction operation. Only the fields
// relevant to kind are populated.
type command struct {
	kind     commandKind
	to       geom.Point[float64]
	control1 geom.Point[float64]
	control2 geom.Point[float64]
}

// Builder accumulates path-construction commands. The zero value is an
// empty path ready to build.
type Builder struct {
	commands []command
}

// MoveTo starts a new subpath at p, without connecting it to whatever
// subpath came before.
func (b *Builder) MoveTo(p geom.Point[float64]) *Builder {
	b.commands = append(b.commands, command{kind: cmdMoveTo, to: p})
	return b
}

// LineTo appends a straight line from the current point to p.
func (b *Builder) LineTo(p geom.Point[float64]) *Builder {
	b.commands = append(b.commands, command{kind: cmdLineTo, to: p})
	return b
}

// QuadTo appends a quadratic Bezier curve from the current point to p,
// using control as its control point.
func (b *Builder) QuadTo(control, p geom.Point[float64]) *Builder {
	b.commands = append(b.commands, command{kind: cmdQuadTo, control1: control, to: p})
	return b
}

// CubicTo appends a cubic Bezier curve from the current point to p,
// using control1 and control2 as its control points.
func (b *Builder) CubicTo(control1, control2, p geom.Point[float64]) *Builder {
	b.commands = append(b.commands, command{kind: cmdCubicTo, control1: control1, control2: control2, to: p})
	return b
}

// Close connects the current point back to the start of the current
// subpath with a straight line, and ends the subpath.
func (b *Builder) Close() *Builder {
	b.commands = append(b.commands, command{kind: cmdClose})
	return b
}

// Path builds the accumulated commands into an immutable Path.
func (b *Builder) Path() Path {
	return Path{commands: append([]command(nil), b.commands...)}
}

// Path is an immutable sequence of path-construction commands.
type Path struct {
	commands []command
}

// Flatten walks the path's subpaths, flattening every curve command via
// package curve, and returns the resulting non-horizontal segments.
// Horizontal stretches of the path (including a Close that reconnects
// to a point at the same height) contribute no segment, since the
// sweep-line core has no Start/Stop event for a horizontal edge.
func (p Path) Flatten(tolerance float64) []geom.Segment[float64] {
	var segments []geom.Segment[float64]

	var subpathStart, current geom.Point[float64]
	haveCurrent := false

	emit := func(from, to geom.Point[float64]) {
		if seg, ok := geom.NewSegment(from, to); ok {
			segments = append(segments, seg)
		}
	}

	for _, c := range p.commands {
		switch c.kind {
		case cmdMoveTo:
			subpathStart = c.to
			current = c.to
			haveCurrent = true

		case cmdLineTo:
			if haveCurrent {
				emit(current, c.to)
			}
			current = c.to

		case cmdQuadTo:
			if haveCurrent {
				q := curve.NewQuadratic(current, c.control1, c.to)
				segments = append(segments, q.Flatten(tolerance)...)
			}
			current = c.to

		case cmdCubicTo:
			if haveCurrent {
				cb := curve.NewCubic(current, c.control1, c.control2, c.to)
				segments = append(segments, cb.Flatten(tolerance)...)
			}
			current = c.to

		case cmdClose:
			if haveCurrent {
				emit(current, subpathStart)
			}
			current = subpathStart
		}
	}

	return segments
}

// jsonCommand is the wire representation of a single command, used by
// Path's JSON marshaling. Kind says which points are meaningful; all
// three point fields are written for every command (omitempty does not
// drop struct values), with zero points in the unused ones.
type jsonCommand struct {
	Kind     string              `json:"kind"`
	To       geom.Point[float64] `json:"to,omitempty"`
	Control1 geom.Point[float64] `json:"control1,omitempty"`
	Control2 geom.Point[float64] `json:"control2,omitempty"`
}

func (k commandKind) name() string {
	switch k {
	case cmdMoveTo:
		return "moveTo"
	case cmdLineTo:
		return "lineTo"
	case cmdQuadTo:
		return "quadTo"
	case cmdCubicTo:
		return "cubicTo"
	case cmdClose:
		return "close"
	default:
		panic(fmt.Errorf("unsupported command kind: %d", k))
	}
}

func parseCommandKind(name string) (commandKind, error) {
	switch name {
	case "moveTo":
		return cmdMoveTo, nil
	case "lineTo":
		return cmdLineTo, nil
	case "quadTo":
		return cmdQuadTo, nil
	case "cubicTo":
		return cmdCubicTo, nil
	case "close":
		return cmdClose, nil
	default:
		return 0, fmt.Errorf("path: unsupported command kind %q", name)
	}
}

// MarshalJSON serializes Path as a JSON array of its commands.
func (p Path) MarshalJSON() ([]byte, error) {
	out := make([]jsonCommand, len(p.commands))
	for i, c := range p.commands {
		out[i] = jsonCommand{Kind: c.kind.name(), To: c.to, Control1: c.control1, Control2: c.control2}
	}
	return json.Marshal(out)
}

// UnmarshalJSON deserializes a JSON array of commands into Path.
func (p *Path) UnmarshalJSON(data []byte) error {
	var in []jsonCommand
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}

	commands := make([]command, len(in))
	for i, c := range in {
		kind, err := parseCommandKind(c.Kind)
		if err != nil {
			return err
		}
		commands[i] = command{kind: kind, to: c.To, control1: c.Control1, control2: c.Control2}
	}
	p.commands = commands
	return nil
}
