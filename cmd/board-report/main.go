package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Garsondee/artillery-chain/internal/board"
)

type stepKind int

const (
	stepMove stepKind = iota
	stepTray
	stepUndo
	stepDetonate
)

// step is one scripted action: move a piece to a cell or the tray, undo, or
// detonate.
type step struct {
	raw     string
	kind    stepKind
	pieceID int
	cell    board.Cell
}

type stepResult struct {
	step    step
	outcome string
	history int
}

func main() {
	var moves string
	flag.StringVar(&moves, "moves", "", `steps separated by ';': "ID:X,Y" moves a piece to a cell, "ID:tray" parks it, "undo", "detonate"`)
	flag.Parse()

	steps, err := parseScript(moves)
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(2)
	}

	s := board.NewSession(board.DefaultBoard())
	fmt.Printf("=== Artillery Board Report ===\n")
	fmt.Printf("steps=%d\n\ninitial board:\n%s\n", len(steps), s.Board())

	results := runScript(s, steps)
	for i, r := range results {
		fmt.Printf("[%d] %-12s %-10s history=%d\n", i+1, r.step.raw, r.outcome, r.history)
	}
	fmt.Printf("\nfinal board:\n%s\n", s.Board())
	printZones(os.Stdout, s.Zones())
}

// parseScript splits a ';'-separated script into steps.
func parseScript(script string) ([]step, error) {
	var steps []step
	for _, raw := range strings.Split(script, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		st, err := parseStep(raw)
		if err != nil {
			return nil, err
		}
		steps = append(steps, st)
	}
	return steps, nil
}

func parseStep(raw string) (step, error) {
	switch strings.ToLower(raw) {
	case "undo":
		return step{raw: raw, kind: stepUndo}, nil
	case "detonate":
		return step{raw: raw, kind: stepDetonate}, nil
	}

	idStr, dest, ok := strings.Cut(raw, ":")
	if !ok {
		return step{}, fmt.Errorf("step %q: expected ID:X,Y, ID:tray, undo or detonate", raw)
	}
	id, err := strconv.Atoi(strings.TrimSpace(idStr))
	if err != nil {
		return step{}, fmt.Errorf("step %q: bad piece id: %w", raw, err)
	}
	dest = strings.TrimSpace(dest)
	if strings.EqualFold(dest, "tray") {
		return step{raw: raw, kind: stepTray, pieceID: id}, nil
	}
	xs, ys, ok := strings.Cut(dest, ",")
	if !ok {
		return step{}, fmt.Errorf("step %q: expected cell X,Y", raw)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return step{}, fmt.Errorf("step %q: bad x: %w", raw, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return step{}, fmt.Errorf("step %q: bad y: %w", raw, err)
	}
	return step{raw: raw, kind: stepMove, pieceID: id, cell: board.Cell{X: x, Y: y}}, nil
}

// runScript plays steps as mouse gestures: each move grabs the piece by its
// centre and releases it over the destination.
func runScript(s *board.Session, steps []step) []stepResult {
	out := make([]stepResult, 0, len(steps))
	for _, st := range steps {
		var outcome string
		switch st.kind {
		case stepUndo:
			outcome = "nothing"
			if s.Undo() {
				outcome = "undone"
			}
		case stepDetonate:
			outcome = fmt.Sprintf("shots=%d", len(s.Detonate()))
		default:
			p := s.Board().Piece(st.pieceID)
			if p == nil {
				outcome = "no-piece"
				break
			}
			to := board.CellCenter(st.cell)
			if st.kind == stepTray {
				to = board.TraySlot(0).Add(board.Point{X: board.CellSize / 2, Y: board.CellSize / 2})
			}
			s.Press(p.Center())
			s.Motion(to)
			outcome = s.Release(to).String()
		}
		out = append(out, stepResult{step: st, outcome: outcome, history: s.History().Len()})
	}
	return out
}

func printZones(w io.Writer, z board.Brightness) {
	fmt.Fprintf(w, "zones: cells=%d max_overlap=%d\n", len(z), z.Max())
	for _, c := range z.Cells() {
		fmt.Fprintf(w, "  %v x%d alpha=%d\n", c, z[c], z.Alpha(c))
	}
}
