// Package bot serves AI moves over NATS request/reply and provides the
// matching client.
package bot

import (
	"encoding/json"
	"fmt"
	"runtime"

	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/colormap/ai"
	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/config"
	"github.com/domino14/colormap/movesearch"
)

// MoveRequest asks the bot for a move in a position.
type MoveRequest struct {
	Board      []string `json:"board"`
	AIColor    string   `json:"ai_color"`
	HumanColor string   `json:"human_color"`
	PointDiff  int      `json:"point_diff"`
	// Level is easy or hard. Empty means the bot's configured level.
	Level string `json:"level,omitempty"`
}

// MoveResponse carries either a move or an error.
type MoveResponse struct {
	Row      int     `json:"row"`
	Col      int     `json:"col"`
	Coords   string  `json:"coords"`
	Posture  string  `json:"posture"`
	Target   string  `json:"target"`
	Centroid float64 `json:"centroid"`
	Error    string  `json:"error,omitempty"`
}

type Bot struct {
	config *config.Config
	rng    movesearch.RNG
}

func NewBot(cfg *config.Config) *Bot {
	return &Bot{config: cfg, rng: movesearch.NewRNG(cfg.Seed())}
}

func errorResponse(message string, err error) *MoveResponse {
	msg := message
	if err != nil {
		msg = fmt.Sprintf("%s: %s", msg, err.Error())
	}
	return &MoveResponse{Error: msg}
}

type position struct {
	board      *board.Board
	aiColor    board.Color
	humanColor board.Color
	pointDiff  int
	level      movesearch.Level
}

func (bot *Bot) Deserialize(data []byte) (*position, error) {
	req := MoveRequest{}
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, err
	}
	b, err := board.FromRows(req.Board)
	if err != nil {
		return nil, err
	}
	aiColor, err := board.ColorFromString(req.AIColor)
	if err != nil {
		return nil, err
	}
	humanColor, err := board.ColorFromString(req.HumanColor)
	if err != nil {
		return nil, err
	}
	lvl := req.Level
	if lvl == "" {
		lvl = bot.config.Level()
	}
	level, err := movesearch.ParseLevel(lvl)
	if err != nil {
		return nil, err
	}
	return &position{board: b, aiColor: aiColor, humanColor: humanColor,
		pointDiff: req.PointDiff, level: level}, nil
}

func (bot *Bot) handle(data []byte) *MoveResponse {
	pos, err := bot.Deserialize(data)
	if err != nil {
		return errorResponse("Could not parse request", err)
	}
	searcher, err := movesearch.ForLevel(pos.level, bot.rng, bot.config.GAGenerations())
	if err != nil {
		return errorResponse("Could not create AI player", err)
	}
	d, err := ai.NewPlayer(searcher).ChooseMove(pos.board, pos.aiColor, pos.humanColor,
		pos.board.EmptyCount(), pos.pointDiff)
	if err != nil {
		return errorResponse("Could not choose a move", err)
	}
	log.Info().Msgf("Generated move: %v (%v)", d.Pos, d.Posture)
	return &MoveResponse{
		Row:      d.Pos.Row,
		Col:      d.Pos.Col,
		Coords:   d.Pos.String(),
		Posture:  d.Posture.String(),
		Target:   d.Target.String(),
		Centroid: d.Fuzzy.Centroid,
	}
}

func (bot *Bot) respond(data []byte) []byte {
	out, err := json.Marshal(bot.handle(data))
	if err != nil {
		// Should never happen, ideally, but we need to do something sensible here.
		return []byte(err.Error())
	}
	return out
}

// Main listens for move requests on channel until the process exits.
func Main(channel string, bot *Bot) {
	nc, err := nats.Connect(bot.config.GetString(config.ConfigNatsURL))
	if err != nil {
		log.Fatal().Err(err).Msg("could not connect to nats")
	}
	// Simple Async Subscriber
	_, err = nc.Subscribe(channel, func(m *nats.Msg) {
		log.Info().Msgf("RECV: %d bytes", len(m.Data))
		if err := m.Respond(bot.respond(m.Data)); err != nil {
			log.Err(err).Msg("could not respond")
		}
	})
	if err != nil {
		log.Fatal().Err(err).Msg("could not subscribe")
	}
	nc.Flush()

	if err := nc.LastError(); err != nil {
		log.Fatal().Err(err).Msg("nats error")
	}

	log.Info().Msgf("Listening on [%s]", channel)

	runtime.Goexit()
}
