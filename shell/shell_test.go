package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/colormap/ai"
	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/config"
	"github.com/domino14/colormap/fuzzy"
	"github.com/domino14/colormap/game"
	"github.com/domino14/colormap/movesearch"
)

func testController(t *testing.T, opponent ai.Mover) *ShellController {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigSeed, 17)
	sc, err := newController(cfg, opponent, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

// firstEmptyMover always takes the first empty cell.
type firstEmptyMover struct {
	level movesearch.Level
	calls int
}

func (m *firstEmptyMover) NextMove(g *game.Game) (*ai.Decision, error) {
	m.calls++
	p, ok := g.Board().FirstEmpty()
	if !ok {
		return nil, movesearch.ErrNoEmptyCells
	}
	return &ai.Decision{Pos: p, Posture: fuzzy.Offensive, Target: g.PlayerOnTurn()}, nil
}

func (m *firstEmptyMover) SetLevel(l movesearch.Level) {
	m.level = l
}

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"play C7", &shellcmd{"play", []string{"C7"}, CmdOptions{}}, nil},
		{"new hard -threshold 70",
			&shellcmd{"new", []string{"hard"}, CmdOptions{"threshold": "70"}},
			nil},
		{"help 'coords'", &shellcmd{"help", []string{"coords"}, CmdOptions{}}, nil},
		{"new -threshold", nil, errWrongOptionSyntax},
	}
	for _, tc := range cases {
		cmd, err := extractFields(tc.line)
		is.Equal(cmd, tc.expCmd)
		is.Equal(err, tc.expErr)
	}
}

func TestUnknownCommand(t *testing.T) {
	is := is.New(t)
	sc := testController(t, nil)
	_, err := sc.handle("frobnicate")
	is.True(err != nil)
	is.True(strings.Contains(err.Error(), "frobnicate"))
}

func TestNeedsGame(t *testing.T) {
	is := is.New(t)
	sc := testController(t, nil)
	for _, line := range []string{"show", "play C7", "ai", "hint", "posture", "history"} {
		_, err := sc.handle(line)
		is.Equal(err, errNoGame)
	}
}

func TestPlayAndBotReply(t *testing.T) {
	is := is.New(t)
	sc := testController(t, nil)
	resp, err := sc.handle("new")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "New easy game"))
	is.True(!sc.IsBotOnTurn())

	resp, err = sc.handle("play c7")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "You play C7 for 0 points"))
	is.Equal(sc.game.Board().At(board.Position{Row: 6, Col: 2}), board.Red)
	is.True(sc.IsBotOnTurn())

	_, err = sc.handle("play D7")
	is.True(err != nil) // not the human's turn

	_, err = sc.botTurn()
	is.NoErr(err)
	is.Equal(sc.game.Board().Count(board.Blue), 1)
	is.Equal(sc.game.PlayerOnTurn(), HumanPlayer)

	_, err = sc.handle("play C7")
	is.True(err != nil) // occupied
	_, err = sc.handle("play K1")
	is.True(err != nil)
	_, err = sc.handle("play")
	is.True(err != nil)

	resp, err = sc.handle("history")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "1. red C7 +0 0"))
}

func TestAIPlaysForHuman(t *testing.T) {
	is := is.New(t)
	sc := testController(t, nil)
	_, err := sc.handle("new")
	is.NoErr(err)
	_, err = sc.handle("ai")
	is.NoErr(err)
	is.Equal(sc.game.Board().Count(board.Red), 1)
	is.True(sc.IsBotOnTurn())
}

func TestHintLeavesBoardAlone(t *testing.T) {
	is := is.New(t)
	sc := testController(t, nil)
	_, err := sc.handle("new hard")
	is.NoErr(err)
	resp, err := sc.handle("hint")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "Try "))
	is.Equal(sc.game.EmptyCount(), 100)
}

func TestLevels(t *testing.T) {
	is := is.New(t)
	sc := testController(t, nil)
	resp, err := sc.handle("level")
	is.NoErr(err)
	is.Equal(resp.message, "level: easy")

	_, err = sc.handle("level hard")
	is.NoErr(err)
	is.Equal(sc.level, movesearch.LevelHard)

	_, err = sc.handle("level medium")
	is.True(err != nil)
	is.Equal(sc.level, movesearch.LevelHard)

	_, err = sc.handle("new easy")
	is.NoErr(err)
	is.Equal(sc.level, movesearch.LevelEasy)
}

func TestPosture(t *testing.T) {
	is := is.New(t)
	sc := testController(t, nil)
	_, err := sc.handle("new")
	is.NoErr(err)
	resp, err := sc.handle("posture")
	is.NoErr(err)
	is.True(strings.HasSuffix(resp.message, "-> offensive"))
}

func TestShapesAndHelp(t *testing.T) {
	is := is.New(t)
	sc := testController(t, nil)
	resp, err := sc.handle("shapes")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "T (5 x 3 = 15 points)"))

	resp, err = sc.handle("help")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "Commands:"))

	resp, err = sc.handle("help coords")
	is.NoErr(err)
	is.True(strings.Contains(resp.message, "J10"))

	resp, err = sc.handle("help nosuchtopic")
	is.NoErr(err)
	is.True(strings.HasPrefix(resp.message, "There is no help text"))
}

func TestRemoteOpponent(t *testing.T) {
	is := is.New(t)
	m := &firstEmptyMover{}
	sc := testController(t, m)
	is.Equal(m.level, movesearch.LevelEasy)

	_, err := sc.handle("new hard")
	is.NoErr(err)
	is.Equal(m.level, movesearch.LevelHard)

	_, err = sc.handle("play J10")
	is.NoErr(err)
	_, err = sc.botTurn()
	is.NoErr(err)
	is.Equal(m.calls, 1)
	is.Equal(sc.game.Board().At(board.Position{Row: 0, Col: 0}), board.Blue)
}

func TestExecuteAnswersAsBot(t *testing.T) {
	is := is.New(t)
	out := &bytes.Buffer{}
	sc := testController(t, nil)
	sc.out = out
	sc.Execute(nil, "new")
	sc.Execute(nil, "play A1")
	is.Equal(sc.game.Turn(), 2)
	is.True(strings.Contains(out.String(), "Bot ("))

	sc.Execute(nil, "bogus")
	is.True(strings.Contains(out.String(), "Error: command"))
}

func TestCompleter(t *testing.T) {
	is := is.New(t)
	c := NewShellCompleter(testController(t, nil))

	matches, n := c.Do([]rune("le"), 2)
	is.Equal(n, 2)
	is.Equal(matches, [][]rune{[]rune("vel")})

	matches, n = c.Do([]rune("level e"), 7)
	is.Equal(n, 1)
	is.Equal(matches, [][]rune{[]rune("asy")})

	matches, _ = c.Do([]rune("h"), 1)
	is.Equal(len(matches), 3) // hint, history, help
}
