// Package selfplay generates labeled training rows by pitting the MCTS
// engine against itself, grounded on the worker-pool/atomic-stats pattern of
// pkg/bench's VersusArena — reduced from "two configurable engines playing a
// match series" to "one engine self-playing many games", since spec.md's
// training pipeline needs move-labeled rows, not win/loss benchmarking.
package selfplay

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/connectfour-ai/go-connectfour/pkg/feature"
	"github.com/connectfour-ai/go-connectfour/pkg/game"
	"github.com/connectfour-ai/go-connectfour/pkg/mcts"
	"github.com/google/uuid"
)

// Row is one training example: the board encoding at the moment a move was
// chosen, labeled with the column the engine actually played.
type Row struct {
	GameID   uuid.UUID
	Ply      int
	Features []float64
	Label    int
}

// GameRecord is the full move-by-move trace of one self-played game, plus
// its final result from player-to-move-first's perspective.
type GameRecord struct {
	ID     uuid.UUID
	Rows   []Row
	Winner int8 // +1, -1, or 0 for a draw
}

// Stats accumulates aggregate outcome counts across many self-played games,
// the selfplay counterpart of bench.VersusArenaStats.
type Stats struct {
	p1Wins uint32
	p2Wins uint32
	draws  uint32
}

func (s *Stats) record(winner int8) {
	switch winner {
	case 1:
		atomic.AddUint32(&s.p1Wins, 1)
	case -1:
		atomic.AddUint32(&s.p2Wins, 1)
	default:
		atomic.AddUint32(&s.draws, 1)
	}
}

func (s *Stats) P1Wins() int { return int(atomic.LoadUint32(&s.p1Wins)) }
func (s *Stats) P2Wins() int { return int(atomic.LoadUint32(&s.p2Wins)) }
func (s *Stats) Draws() int  { return int(atomic.LoadUint32(&s.draws)) }
func (s *Stats) Total() int  { return s.P1Wins() + s.P2Wins() + s.Draws() }

// Recorder plays one game at a time against engine, recording every ply as
// a training row labeled with the move actually chosen.
type Recorder struct {
	Engine mcts.MCTSEngine
}

// NewRecorder wraps engine for self-play recording.
func NewRecorder(engine mcts.MCTSEngine) *Recorder {
	return &Recorder{Engine: engine}
}

// PlayOne plays a single game to completion, recording each ply's feature
// row and chosen column. Encode is mover-relative, so the label is always
// correct for the side that actually moved.
func (r *Recorder) PlayOne(ctx context.Context) (GameRecord, error) {
	rec := GameRecord{ID: uuid.New()}
	state := game.New()

	for ply := 0; !state.IsOver(); ply++ {
		col, _, err := r.Engine.Search(ctx, state)
		if err != nil {
			return rec, err
		}

		rec.Rows = append(rec.Rows, Row{
			GameID:   rec.ID,
			Ply:      ply,
			Features: feature.Encode(state),
			Label:    col,
		})

		if _, err := state.Play(col); err != nil {
			return rec, err
		}

		select {
		case <-ctx.Done():
			rec.Winner = state.Win
			return rec, ctx.Err()
		default:
		}
	}

	rec.Winner = state.Win
	return rec, nil
}

// RunMany plays n self-play games spread across workers goroutines
// concurrently — each worker owns an independent *Recorder call sequence, no
// shared mutable engine state, mirroring VersusArena.Start's worker
// distribution (games divided evenly, remainder spread across the first
// workers) but with a single engine/self-play loop instead of a two-player
// match. It returns every recorded game and the aggregate outcome Stats.
func RunMany(ctx context.Context, engine mcts.MCTSEngine, n, workers int) ([]GameRecord, *Stats, error) {
	if workers < 1 {
		workers = 1
	}
	stats := &Stats{}
	results := make([][]GameRecord, workers)
	errs := make([]error, workers)

	perWorker := n / workers
	rest := n % workers

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		count := perWorker
		if w < rest {
			count++
		}
		go func(w, count int) {
			defer wg.Done()
			rec := NewRecorder(engine)
			games := make([]GameRecord, 0, count)
			for i := 0; i < count; i++ {
				g, err := rec.PlayOne(ctx)
				if err != nil {
					errs[w] = err
					return
				}
				stats.record(g.Winner)
				games = append(games, g)
			}
			results[w] = games
		}(w, count)
	}
	wg.Wait()

	var all []GameRecord
	for w, games := range results {
		if errs[w] != nil {
			return all, stats, errs[w]
		}
		all = append(all, games...)
	}
	return all, stats, nil
}
