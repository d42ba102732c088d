package bot

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/nats-io/nats.go"
	"github.com/rs/zerolog/log"

	"github.com/domino14/colormap/ai"
	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/config"
	"github.com/domino14/colormap/fuzzy"
	"github.com/domino14/colormap/game"
	"github.com/domino14/colormap/movesearch"
)

// requester is the part of *nats.Conn the client needs.
type requester interface {
	Request(subj string, data []byte, timeout time.Duration) (*nats.Msg, error)
}

// Client asks a remote bot for moves. It implements ai.Mover.
type Client struct {
	nc       requester
	channel  string
	timeout  time.Duration
	attempts uint
	delay    time.Duration
	level    movesearch.Level
}

func NewClient(nc *nats.Conn, cfg *config.Config) *Client {
	return newClient(nc, cfg)
}

func newClient(nc requester, cfg *config.Config) *Client {
	attempts := cfg.GetInt(config.ConfigBotRetries)
	if attempts < 1 {
		attempts = 1
	}
	return &Client{
		nc:       nc,
		channel:  cfg.GetString(config.ConfigBotChannel),
		timeout:  cfg.BotTimeout(),
		attempts: uint(attempts),
		delay:    100 * time.Millisecond,
		level:    movesearch.Level(cfg.Level()),
	}
}

func (c *Client) SetLevel(l movesearch.Level) {
	c.level = l
}

// MakeRequest builds the request for the player on turn in g.
func MakeRequest(g *game.Game, level movesearch.Level) ([]byte, error) {
	onturn := g.PlayerOnTurn()
	req := MoveRequest{
		Board:      g.Board().Rows(),
		AIColor:    onturn.String(),
		HumanColor: onturn.Opponent().String(),
		PointDiff:  g.PointDiff(),
		Level:      string(level),
	}
	return json.Marshal(req)
}

// RequestMove sends the position to the bot and waits for its move.
// Transport failures are retried with back-off; an error reported by the
// bot is not.
func (c *Client) RequestMove(g *game.Game) (*MoveResponse, error) {
	data, err := MakeRequest(g, c.level)
	if err != nil {
		return nil, err
	}
	resp := &MoveResponse{}
	err = retry.Do(
		func() error {
			res, err := c.nc.Request(c.channel, data, c.timeout)
			if err != nil {
				return err
			}
			log.Debug().Msgf("res: %v", string(res.Data))
			if err := json.Unmarshal(res.Data, resp); err != nil {
				return retry.Unrecoverable(err)
			}
			if resp.Error != "" {
				return retry.Unrecoverable(errors.New("Bot returned: " + resp.Error))
			}
			return nil
		},
		retry.Attempts(c.attempts),
		retry.Delay(c.delay),
		retry.LastErrorOnly(true),
		retry.DelayType(func(n uint, err error, config *retry.Config) time.Duration {
			log.Err(err).Uint("n", n).Msg("bot-request-failed-try-again")
			return retry.BackOffDelay(n, err, config)
		}),
	)
	if err != nil {
		return nil, err
	}
	return resp, nil
}

// NextMove implements ai.Mover.
func (c *Client) NextMove(g *game.Game) (*ai.Decision, error) {
	resp, err := c.RequestMove(g)
	if err != nil {
		return nil, err
	}
	pos := board.Position{Row: resp.Row, Col: resp.Col}
	if !board.InBounds(pos) {
		return nil, fmt.Errorf("bot returned an off-board move %v", pos)
	}
	target, err := board.ColorFromString(resp.Target)
	if err != nil {
		return nil, err
	}
	posture := fuzzy.Offensive
	if resp.Posture == fuzzy.Defensive.String() {
		posture = fuzzy.Defensive
	}
	return &ai.Decision{
		Pos:     pos,
		Posture: posture,
		Target:  target,
		Fuzzy:   fuzzy.Decision{Centroid: resp.Centroid, Posture: posture},
		Search:  &movesearch.Result{Pos: pos},
	}, nil
}
