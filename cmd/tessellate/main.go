// Command tessellate exposes the sweep-line core over stdin/stdout JSON:
// generate random segments, report their pairwise intersections, or
// tessellate them (or a path.Shape) into trapezoids.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/corvidgeo/tessellate/geom"
	"github.com/corvidgeo/tessellate/options"
	"github.com/corvidgeo/tessellate/path"
	"github.com/corvidgeo/tessellate/sweep"
	"github.com/corvidgeo/tessellate/types"
)

func main() {
	cmd := &cli.Command{
		Name:        "tessellate",
		Usage:       "Sweep-line intersection reporting and trapezoid tessellation",
		HideVersion: true,
		Commands: []*cli.Command{
			genCommand(),
			intersectionsCommand(),
			trapezoidsCommand(),
		},
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

// withRecover wraps a subcommand's Action so a geom.ConstructionError
// panic (NaN coordinates reaching geom.NewSegment via a malformed curve
// or input) is reported as an ordinary error instead of crashing the
// process, the same boundary triangulate's top-level Triangulate draws
// around advanced.HandleTriangulatePanicRecover.
func withRecover(fn func(context.Context, *cli.Command) error) func(context.Context, *cli.Command) error {
	return func(ctx context.Context, cmd *cli.Command) (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = geom.Recover(r)
			}
		}()
		return fn(ctx, cmd)
	}
}

func genCommand() *cli.Command {
	return &cli.Command{
		Name:      "gen",
		Usage:     "Generates random line segments and prints them to stdout as JSON",
		UsageText: "tessellate gen --number <value> --maxx <value> --minx <value> --maxy <value> --miny <value>",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:     "number",
				Usage:    "The number of segments to create",
				Value:    3,
				Aliases:  []string{"n"},
				OnlyOnce: true,
				Validator: func(n int64) error {
					if n <= 0 {
						return fmt.Errorf("number must be greater than zero")
					}
					return nil
				},
			},
			&cli.IntFlag{Name: "maxx", Usage: "The maximum X value of the plane", OnlyOnce: true, Value: 10},
			&cli.IntFlag{Name: "minx", Usage: "The minimum X value of the plane", OnlyOnce: true, Value: 0},
			&cli.IntFlag{Name: "maxy", Usage: "The maximum Y value of the plane", OnlyOnce: true, Value: 10},
			&cli.IntFlag{Name: "miny", Usage: "The minimum Y value of the plane", OnlyOnce: true, Value: 0},
		},
		Action: withRecover(runGen),
	}
}

func randomIntInRange(min, max int64) int64 {
	return min + rand.Int64N(max-min+1)
}

func runGen(_ context.Context, cmd *cli.Command) error {
	minx, maxx := cmd.Int("minx"), cmd.Int("maxx")
	miny, maxy := cmd.Int("miny"), cmd.Int("maxy")
	n := cmd.Int("number")

	if minx >= maxx {
		return fmt.Errorf("maxx must be greater than minx")
	}
	if miny >= maxy {
		return fmt.Errorf("maxy must be greater than miny")
	}

	segments := make([]geom.Segment[float64], 0, n)
	for len(segments) < int(n) {
		x1, y1 := randomIntInRange(minx, maxx), randomIntInRange(miny, maxy)
		x2, y2 := randomIntInRange(minx, maxx), randomIntInRange(miny, maxy)

		// skip degenerate and horizontal segments: the core has no
		// Start/Stop event for either.
		seg, ok := geom.NewSegmentXY(float64(x1), float64(y1), float64(x2), float64(y2))
		if !ok {
			continue
		}
		segments = append(segments, seg)
	}

	return printJSON(cmd, segments)
}

func intersectionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "intersections",
		Usage:     "Reads JSON segments from stdin and prints their pairwise intersections",
		UsageText: "tessellate intersections < segments.json",
		Flags: []cli.Flag{
			epsilonFlag(),
		},
		Action: withRecover(runIntersections),
	}
}

func runIntersections(_ context.Context, cmd *cli.Command) error {
	segments, err := readSegments(os.Stdin)
	if err != nil {
		return err
	}

	opts := epsilonOpts(cmd)
	var points []geom.Point[float64]
	for p := range sweep.Intersections(slices.Values(segments), opts...) {
		points = append(points, p)
	}

	return printJSON(cmd, points)
}

func trapezoidsCommand() *cli.Command {
	return &cli.Command{
		Name:      "trapezoids",
		Usage:     "Reads a JSON segment array or path.Shape from stdin and prints its trapezoids",
		UsageText: "tessellate trapezoids --fillrule winding < segments.json",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "fillrule",
				Usage:    "Fill rule to apply when the input is a bare segment array: winding or evenodd",
				Value:    "winding",
				OnlyOnce: true,
			},
			&cli.FloatFlag{
				Name:     "tolerance",
				Usage:    "Curve-flattening tolerance applied when the input is a path.Shape",
				Value:    0.25,
				OnlyOnce: true,
			},
			epsilonFlag(),
		},
		Action: withRecover(runTrapezoids),
	}
}

func runTrapezoids(_ context.Context, cmd *cli.Command) error {
	input, err := io.ReadAll(os.Stdin)
	if err != nil {
		return fmt.Errorf("reading stdin: %w", err)
	}

	segments, rule, err := decodeTrapezoidInput(input, cmd)
	if err != nil {
		return err
	}

	opts := epsilonOpts(cmd)
	var trapezoids []sweep.Trapezoid[float64]
	for t := range sweep.Trapezoids(slices.Values(segments), rule, opts...) {
		trapezoids = append(trapezoids, t)
	}

	return printJSON(cmd, trapezoids)
}

// decodeTrapezoidInput accepts either a bare JSON array of segments (paired
// with --fillrule) or a JSON object shaped like path.Shape.
func decodeTrapezoidInput(input []byte, cmd *cli.Command) ([]geom.Segment[float64], types.FillRule, error) {
	trimmed := bytes.TrimSpace(input)
	if len(trimmed) == 0 {
		return nil, 0, fmt.Errorf("no input on stdin")
	}

	if trimmed[0] == '{' {
		var shape path.Shape
		if err := json.Unmarshal(trimmed, &shape); err != nil {
			return nil, 0, fmt.Errorf("decoding path.Shape: %w", err)
		}
		tolerance := cmd.Float("tolerance")
		return shape.Path.Flatten(tolerance), shape.FillRule, nil
	}

	segments, err := readSegments(bytes.NewReader(trimmed))
	if err != nil {
		return nil, 0, err
	}
	rule, err := types.ParseFillRule(cmd.String("fillrule"))
	if err != nil {
		return nil, 0, err
	}
	return segments, rule, nil
}

func readSegments(r io.Reader) ([]geom.Segment[float64], error) {
	var segments []geom.Segment[float64]
	if err := json.NewDecoder(r).Decode(&segments); err != nil {
		return nil, fmt.Errorf("decoding segments: %w", err)
	}
	return segments, nil
}

func epsilonFlag() cli.Flag {
	return &cli.FloatFlag{
		Name:     "epsilon",
		Usage:    "Approximate-equality tolerance; 0 uses the package default",
		OnlyOnce: true,
	}
}

func epsilonOpts(cmd *cli.Command) []options.GeometryOptionsFunc {
	if e := cmd.Float("epsilon"); e > 0 {
		return []options.GeometryOptionsFunc{options.WithEpsilon(e)}
	}
	return nil
}

func printJSON(_ *cli.Command, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
