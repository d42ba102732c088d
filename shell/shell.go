// Package shell is the interactive front end: a readline loop where a
// human plays red against the computer.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/kballard/go-shellquote"
	"github.com/rs/zerolog/log"

	"github.com/domino14/colormap/ai"
	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/config"
	"github.com/domino14/colormap/game"
	"github.com/domino14/colormap/movesearch"
)

const (
	HumanPlayer = board.Red
	BotPlayer   = board.Blue
)

var (
	errNoData            = errors.New("no data in this line")
	errWrongOptionSyntax = errors.New("wrong format; all options need arguments")
	errNoGame            = errors.New("no game in progress; type new to start one")
)

type shellcmd struct {
	cmd     string
	args    []string
	options CmdOptions
}

type CmdOptions map[string]string

func (c CmdOptions) String(key string) string {
	return c[key]
}

type Response struct {
	message string
}

func msg(message string) *Response {
	return &Response{message: message}
}

// leveler is implemented by opponents that can change how hard they play.
type leveler interface {
	SetLevel(movesearch.Level)
}

type ShellController struct {
	l      *readline.Instance
	config *config.Config
	out    io.Writer

	game  *game.Game
	level movesearch.Level
	rng   movesearch.RNG

	// opponent picks the bot's moves. When it is nil a local AI player
	// at the current level is used.
	opponent ai.Mover
	local    *ai.Player
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func writeln(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	writeln(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

// NewShellController creates the readline instance and a controller. A nil
// opponent plays locally; anything else, such as a bot client, is asked
// for the bot's moves instead.
func NewShellController(cfg *config.Config, opponent ai.Mover) *ShellController {
	sc, err := newController(cfg, opponent, os.Stderr)
	if err != nil {
		panic(err)
	}
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mcolormap>\033[0m ",
		HistoryFile:     "/tmp/colormap_readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",
		AutoComplete:    NewShellCompleter(sc),

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc.l = l
	sc.out = l.Stderr()
	return sc
}

func newController(cfg *config.Config, opponent ai.Mover, out io.Writer) (*ShellController, error) {
	level, err := movesearch.ParseLevel(cfg.Level())
	if err != nil {
		return nil, err
	}
	sc := &ShellController{
		config:   cfg,
		out:      out,
		rng:      movesearch.NewRNG(cfg.Seed()),
		opponent: opponent,
	}
	if err := sc.setLevel(level); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *ShellController) setLevel(level movesearch.Level) error {
	searcher, err := movesearch.ForLevel(level, sc.rng, sc.config.GAGenerations())
	if err != nil {
		return err
	}
	sc.level = level
	sc.local = ai.NewPlayer(searcher)
	if l, ok := sc.opponent.(leveler); ok {
		l.SetLevel(level)
	}
	return nil
}

func (sc *ShellController) mover() ai.Mover {
	if sc.opponent != nil {
		return sc.opponent
	}
	return sc.local
}

func (sc *ShellController) IsPlaying() bool {
	return sc.game != nil && sc.game.Playing() == game.Playing
}

func (sc *ShellController) IsBotOnTurn() bool {
	return sc.IsPlaying() && sc.game.PlayerOnTurn() == BotPlayer
}

// botTurn asks the opponent for its move and plays it.
func (sc *ShellController) botTurn() (*Response, error) {
	d, pts, err := ai.PlayTurn(sc.mover(), sc.game)
	if err != nil {
		return nil, fmt.Errorf("bot could not move: %w", err)
	}
	text := fmt.Sprintf("Bot (%v, blocking %v) plays %v for %d points",
		d.Posture, d.Target, d.Pos, pts)
	if d.Target == BotPlayer {
		text = fmt.Sprintf("Bot (%v) plays %v for %d points", d.Posture, d.Pos, pts)
	}
	return msg(text + "\n" + sc.game.ToDisplayText()), nil
}

func extractFields(line string) (*shellcmd, error) {
	fields, err := shellquote.Split(line)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, errNoData
	}
	cmd := fields[0]
	var args []string
	options := CmdOptions{}
	for idx := 1; idx < len(fields); idx++ {
		if strings.HasPrefix(fields[idx], "-") {
			if idx == len(fields)-1 {
				return nil, errWrongOptionSyntax
			}
			options[fields[idx][1:]] = fields[idx+1]
			idx++
			continue
		}
		args = append(args, fields[idx])
	}
	return &shellcmd{cmd: cmd, args: args, options: options}, nil
}

func (sc *ShellController) handle(line string) (*Response, error) {
	cmd, err := extractFields(line)
	if err != nil {
		return nil, err
	}
	switch cmd.cmd {
	case "new", "n":
		return sc.newGame(cmd)
	case "show", "s", "b":
		return sc.show(cmd)
	case "play", "pl", "p":
		return sc.play(cmd)
	case "aiplay", "ai", "a":
		return sc.aiplay(cmd)
	case "hint":
		return sc.hint(cmd)
	case "posture":
		return sc.posture(cmd)
	case "level":
		return sc.levelCmd(cmd)
	case "shapes":
		return sc.shapes(cmd)
	case "history", "h":
		return sc.history(cmd)
	case "help":
		return sc.help(cmd)
	default:
		msg := fmt.Sprintf("command %v not found", strconv.Quote(cmd.cmd))
		log.Info().Msg(msg)
		return nil, errors.New(msg)
	}
}

// Execute runs a single command line without the interactive loop, then
// lets the bot answer if it is on turn.
func (sc *ShellController) Execute(sig chan os.Signal, line string) {
	resp, err := sc.handle(line)
	if err != nil {
		sc.showError(err)
		return
	}
	if resp != nil {
		sc.showMessage(resp.message)
	}
	if sc.IsBotOnTurn() {
		sc.respondAsBot()
	}
}

func (sc *ShellController) respondAsBot() {
	resp, err := sc.botTurn()
	if err != nil {
		sc.showError(err)
		return
	}
	sc.showMessage(resp.message)
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	for {
		if sc.IsBotOnTurn() {
			sc.respondAsBot()
			if sc.IsBotOnTurn() {
				// The bot failed; don't spin on it.
				sc.game = nil
				sc.showMessage("Game abandoned. Type new to start another.")
			}
			continue
		}

		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			} else {
				continue
			}
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)

		if line == "exit" {
			sig <- syscall.SIGINT
			break
		}
		resp, err := sc.handle(line)
		if err == errNoData {
			continue
		} else if err != nil {
			sc.showError(err)
		} else if resp != nil {
			sc.showMessage(resp.message)
		}
	}
	log.Debug().Msgf("Exiting readline loop...")
}

func (sc *ShellController) Cleanup() {
	log.Debug().Msg("shell cleanup")
}
