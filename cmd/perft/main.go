// Command perft walks the legal-move tree from a FEN position to a fixed
// depth and reports the leaf count, for checking the move generator
// against known-good results from the chess programming wiki.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/op/go-logging"

	"chego"
)

var log = logging.MustGetLogger("perft")

// config holds the settings perft runs with. A TOML file loaded via
// -config supplies a suite of positions to verify; passing -fen runs a
// single ad hoc position instead.
type config struct {
	FEN       string     `toml:"fen"`
	Depth     int        `toml:"depth"`
	Verbose   bool       `toml:"verbose"`
	Positions []position `toml:"positions"`
}

// position is one entry of a TOML verification suite. Expected, when
// nonzero, is the known-good node count the run is checked against.
type position struct {
	Name     string `toml:"name"`
	FEN      string `toml:"fen"`
	Depth    int    `toml:"depth"`
	Expected int    `toml:"expected"`
}

func defaultConfig() config {
	return config{
		FEN:     chego.StartFEN,
		Depth:   4,
		Verbose: false,
	}
}

func loadConfig(path string) (config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	_, err := toml.DecodeFile(path, &cfg)
	return cfg, err
}

func main() {
	backend := logging.NewLogBackend(os.Stderr, "", 0)
	logging.SetBackend(backend)

	configPath := flag.String("config", "", "TOML file with a suite of positions to verify")
	fen := flag.String("fen", "", "FEN position to search from (overrides -config)")
	depth := flag.Int("depth", 0, "search depth for a single position (overrides the config's depth; suite entries keep their own)")
	verbose := flag.Bool("verbose", false, "log node counts per root move")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		log.Fatalf("reading config: %v", err)
	}
	if *fen != "" {
		cfg.FEN = *fen
	}
	if *depth != 0 {
		cfg.Depth = *depth
	}
	if *verbose {
		cfg.Verbose = true
	}

	if len(cfg.Positions) == 0 || *fen != "" {
		runOne(position{Name: "position", FEN: cfg.FEN, Depth: cfg.Depth}, cfg.Verbose)
		return
	}

	failed := 0
	for _, p := range cfg.Positions {
		if !runOne(p, cfg.Verbose) {
			failed++
		}
	}
	if failed > 0 {
		log.Fatalf("%d of %d positions mismatched", failed, len(cfg.Positions))
	}
	log.Infof("all %d positions verified", len(cfg.Positions))
}

// runOne searches a single suite entry and reports whether its node count
// matched the expected value (entries without one always pass).
func runOne(p position, verbose bool) bool {
	state, err := chego.ParseFEN(p.FEN)
	if err != nil {
		log.Fatalf("%s: parsing fen %q: %v", p.Name, p.FEN, err)
	}

	start := time.Now()
	nodes := perft(state, p.Depth, verbose, true)
	elapsed := time.Since(start)

	if p.Expected != 0 && nodes != p.Expected {
		log.Errorf("%s: depth %d: %d nodes in %s, want %d", p.Name, p.Depth, nodes, elapsed, p.Expected)
		return false
	}

	log.Infof("%s: depth %d: %d nodes in %s", p.Name, p.Depth, nodes, elapsed)
	return true
}

// perft counts the leaves of the legal-move tree rooted at state, to the
// given depth. At the root, with verbose set, it logs the node count
// contributed by each legal move.
func perft(state chego.BoardState, depth int, verbose, isRoot bool) int {
	if depth == 0 {
		return 1
	}

	gen := state.Generator()
	nodes := 0

	for from := chego.A1; from <= chego.H8; from++ {
		color, piece, ok := state.Position.PieceAt(from)
		if !ok || color != state.Turn {
			continue
		}

		dests := gen.Generate(from)
		for _, dest := range dests.Squares() {
			// Generate offers a castle both as the king's target square and
			// as the rook's square; count each castle once, at the target.
			alias := false
			for _, dir := range []chego.CastleDir{chego.CastleKingside, chego.CastleQueenside} {
				kingTarget, _ := state.Castle.TargetSquares(color, dir)
				if piece == chego.King && dest == state.Castle.RookSquare(color, dir) && dest != kingTarget && dests.Has(kingTarget) {
					alias = true
				}
			}
			if alias {
				continue
			}

			promotions := []chego.Piece{chego.NoPiece}
			if piece == chego.Pawn && state.MoveRequiresPromotion(from, dest) {
				promotions = []chego.Piece{chego.Knight, chego.Bishop, chego.Rook, chego.Queen}
			}

			for _, promote := range promotions {
				next := state.PlayUnchecked(from, dest, promote)
				count := perft(next, depth-1, verbose, false)
				if isRoot && verbose {
					log.Infof("%s: %d", state.UCI(from, dest, promote), count)
				}
				nodes += count
			}
		}
	}

	return nodes
}
