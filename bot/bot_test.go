package bot

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/matryer/is"
	"github.com/nats-io/nats.go"

	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/config"
	"github.com/domino14/colormap/fuzzy"
	"github.com/domino14/colormap/game"
	"github.com/domino14/colormap/movesearch"
)

var threatRows = []string{
	"..........",
	"..........",
	"..........",
	".R........",
	"R.R.......",
	".R........",
	"..........",
	".......B..",
	"........B.",
	"B.........",
}

func testBot() *Bot {
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigSeed, 5)
	return NewBot(cfg)
}

func request(t *testing.T, req MoveRequest) []byte {
	t.Helper()
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestHandleOffensive(t *testing.T) {
	is := is.New(t)
	empty := make([]string, board.Dim)
	for i := range empty {
		empty[i] = strings.Repeat(".", board.Dim)
	}
	resp := testBot().handle(request(t, MoveRequest{
		Board: empty, AIColor: "blue", HumanColor: "red", Level: "hard",
	}))
	is.Equal(resp.Error, "")
	is.Equal(resp.Posture, "offensive")
	is.Equal(resp.Target, "blue")
	// Every cell ties on an empty board; the exhaustive search keeps the first.
	is.Equal(resp.Coords, "A1")
	is.Equal(resp.Centroid, 10.0)
}

func TestHandleDefensive(t *testing.T) {
	is := is.New(t)
	resp := testBot().handle(request(t, MoveRequest{
		Board: threatRows, AIColor: "blue", HumanColor: "red", PointDiff: 25, Level: "hard",
	}))
	is.Equal(resp.Error, "")
	is.Equal(resp.Posture, "defensive")
	is.Equal(resp.Target, "red")
	is.Equal(resp.Row, 4)
	is.Equal(resp.Col, 1)
	is.Equal(resp.Coords, "B5")
}

func TestHandleDefaultLevel(t *testing.T) {
	is := is.New(t)
	resp := testBot().handle(request(t, MoveRequest{
		Board: threatRows, AIColor: "blue", HumanColor: "red",
	}))
	is.Equal(resp.Error, "")
	b, err := board.FromRows(threatRows)
	is.NoErr(err)
	is.True(b.IsEmpty(board.Position{Row: resp.Row, Col: resp.Col}))
}

func TestHandleErrors(t *testing.T) {
	is := is.New(t)
	bot := testBot()
	cases := [][]byte{
		[]byte("not json"),
		request(t, MoveRequest{Board: threatRows[:3], AIColor: "blue", HumanColor: "red"}),
		request(t, MoveRequest{Board: threatRows, AIColor: "green", HumanColor: "red"}),
		request(t, MoveRequest{Board: threatRows, AIColor: "blue", HumanColor: "red", Level: "medium"}),
		request(t, MoveRequest{Board: threatRows, AIColor: "blue", HumanColor: "blue"}),
	}
	for _, data := range cases {
		resp := bot.handle(data)
		is.True(resp.Error != "")
	}
}

// loopback hands requests straight to a bot, after failing the first few.
type loopback struct {
	bot   *Bot
	fails int
	calls int
}

func (l *loopback) Request(subj string, data []byte, timeout time.Duration) (*nats.Msg, error) {
	l.calls++
	if l.calls <= l.fails {
		return nil, nats.ErrTimeout
	}
	return &nats.Msg{Subject: subj, Data: l.bot.respond(data)}, nil
}

func testClient(lb *loopback) *Client {
	c := newClient(lb, config.DefaultConfig())
	c.delay = time.Millisecond
	return c
}

func TestClientNextMove(t *testing.T) {
	is := is.New(t)
	lb := &loopback{bot: testBot(), fails: 2}
	c := testClient(lb)
	c.SetLevel(movesearch.LevelHard)

	g := game.NewGame(50)
	_, err := g.PlayMove(board.Position{Row: 4, Col: 4})
	is.NoErr(err)
	d, err := c.NextMove(g)
	is.NoErr(err)
	is.Equal(lb.calls, 3)
	is.Equal(d.Posture, fuzzy.Offensive)
	is.Equal(d.Target, board.Blue)
	is.True(g.Board().IsEmpty(d.Pos))
}

func TestClientGivesUp(t *testing.T) {
	is := is.New(t)
	lb := &loopback{bot: testBot(), fails: 10}
	c := testClient(lb)
	_, err := c.NextMove(game.NewGame(50))
	is.True(err != nil)
	is.Equal(lb.calls, 3)
}

func TestClientBotErrorNotRetried(t *testing.T) {
	is := is.New(t)
	lb := &loopback{bot: testBot()}
	c := testClient(lb)
	c.SetLevel("medium")
	_, err := c.NextMove(game.NewGame(50))
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "Bot returned"))
	is.Equal(lb.calls, 1)
}

func TestMakeRequest(t *testing.T) {
	is := is.New(t)
	g := game.NewGame(50)
	_, err := g.PlayMove(board.Position{Row: 0, Col: 0})
	is.NoErr(err)
	data, err := MakeRequest(g, movesearch.LevelEasy)
	is.NoErr(err)
	req := MoveRequest{}
	is.NoErr(json.Unmarshal(data, &req))
	is.Equal(req.AIColor, "blue")
	is.Equal(req.HumanColor, "red")
	is.Equal(req.Board[0], "R.........")
	is.Equal(req.Level, "easy")
}
