// Package main provides the damagecalc binary: it reads one damage
// calculation request as JSON (stdin or a file), resolves it through the
// damage engine, and writes the result as JSON to stdout. Logs go to
// stderr.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cory-johannsen/pokecalc/internal/config"
	"github.com/cory-johannsen/pokecalc/internal/game/battle"
	"github.com/cory-johannsen/pokecalc/internal/game/catalog"
	"github.com/cory-johannsen/pokecalc/internal/game/damage"
	"github.com/cory-johannsen/pokecalc/internal/game/typechart"
	"github.com/cory-johannsen/pokecalc/internal/observability"
)

// response is the JSON document written on success.
type response struct {
	CalculationID string             `json:"calculation_id"`
	damage.Result
	Statistics *damage.Statistics `json:"statistics,omitempty"`
}

// errorResponse is the JSON document written on failure.
type errorResponse struct {
	Error string `json:"error"`
}

func main() {
	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	inputFile := flag.String("file", "", "path to request JSON file; empty reads stdin")
	withRange := flag.Bool("range", false, "include 16-roll damage range statistics in the response")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	engine, err := buildEngine(cfg.Content, logger)
	if err != nil {
		logger.Fatal("loading reference data", zap.Error(err))
	}

	req, err := readRequest(*inputFile)
	if err != nil {
		emitError(fmt.Errorf("invalid request: %w", err))
	}

	resp, err := run(engine, req, *withRange, logger)
	if err != nil {
		emitError(err)
	}
	emit(resp)
}

// buildEngine loads the five catalogs named in the content configuration
// and wires them, with the built-in type chart, into an engine.
func buildEngine(content config.ContentConfig, logger *zap.Logger) (*damage.Engine, error) {
	start := time.Now()

	natures, err := catalog.LoadNatures(content.Natures)
	if err != nil {
		return nil, err
	}
	items, err := catalog.LoadItems(content.Items)
	if err != nil {
		return nil, err
	}
	abilities, err := catalog.LoadAbilities(content.Abilities)
	if err != nil {
		return nil, err
	}
	species, err := catalog.LoadSpecies(content.Species)
	if err != nil {
		return nil, err
	}
	moves, err := catalog.LoadMoves(content.Moves)
	if err != nil {
		return nil, err
	}

	logger.Info("reference data loaded",
		zap.Int("natures", natures.Len()),
		zap.Int("moves", moves.Len()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return damage.NewEngine(damage.Tables{
		Chart:     typechart.Default(),
		Natures:   natures,
		Items:     items,
		Abilities: abilities,
		Species:   species,
		Moves:     moves,
	}, nil), nil
}

// readRequest reads and decodes the request document from path, or from
// stdin when path is empty. A UTF-8 BOM is tolerated.
func readRequest(path string) (request, error) {
	var data []byte
	var err error
	if path != "" {
		data, err = os.ReadFile(path)
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return request{}, err
	}

	data = bytes.TrimPrefix(bytes.TrimSpace(data), []byte("\ufeff"))
	var req request
	if err := json.Unmarshal(data, &req); err != nil {
		return request{}, err
	}
	if req.Move == nil && req.MoveID == nil {
		return request{}, errors.New("either move or move_id is required")
	}
	return req, nil
}

// run resolves one request through the engine.
func run(engine *damage.Engine, req request, withRange bool, logger *zap.Logger) (response, error) {
	attacker := req.Attacker.toCombatant()
	defender := req.Defender.toCombatant()

	var move battle.Move
	if req.Move != nil {
		move = req.Move.toMove()
	} else {
		catalogMove, ok := engine.MoveByID(*req.MoveID)
		if !ok {
			return response{}, fmt.Errorf("%w: id %d", damage.ErrMoveNotFound, *req.MoveID)
		}
		move = catalogMove
	}

	result, err := engine.Calculate(attacker, defender, move, req.CriticalHit, req.RandomFactor)
	if err != nil {
		return response{}, err
	}

	resp := response{
		CalculationID: uuid.NewString(),
		Result:        result,
	}

	if withRange {
		stats, err := engine.DamageStatistics(attacker, defender, move, 0)
		if err != nil {
			return response{}, err
		}
		resp.Statistics = &stats
	}

	logger.Info("damage resolved",
		zap.String("calculation_id", resp.CalculationID),
		zap.String("attacker", attacker.Name),
		zap.String("defender", defender.Name),
		zap.Int("damage", result.Damage),
		zap.Int("base_damage", result.BaseDamage),
		zap.Float64("random_factor", result.Modifiers.RandomFactor),
	)

	return resp, nil
}

func emit(resp response) {
	out, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		emitError(err)
	}
	fmt.Println(string(out))
}

func emitError(err error) {
	out, _ := json.MarshalIndent(errorResponse{Error: err.Error()}, "", "  ")
	fmt.Println(string(out))
	os.Exit(1)
}
