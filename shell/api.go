package shell

import (
	"errors"
	"fmt"
	"strings"

	"github.com/domino14/colormap/board"
	"github.com/domino14/colormap/fuzzy"
	"github.com/domino14/colormap/game"
	"github.com/domino14/colormap/movesearch"
	"github.com/domino14/colormap/shape"
)

func (sc *ShellController) newGame(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) > 0 {
		level, err := movesearch.ParseLevel(cmd.args[0])
		if err != nil {
			return nil, err
		}
		if err := sc.setLevel(level); err != nil {
			return nil, err
		}
	}
	if sc.game == nil {
		sc.game = game.NewGame(sc.config.WinThreshold())
	} else {
		sc.game.Reset()
	}
	return msg(fmt.Sprintf("New %v game. You are %v and move first.\n%s",
		sc.level, HumanPlayer, sc.game.ToDisplayText())), nil
}

func (sc *ShellController) show(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	return msg(sc.game.ToDisplayText()), nil
}

func (sc *ShellController) play(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if len(cmd.args) != 1 {
		return nil, errors.New("play <coords>, e.g. play C7")
	}
	if sc.game.PlayerOnTurn() != HumanPlayer {
		return nil, errors.New("it is not your turn")
	}
	pos, err := board.FromCoords(cmd.args[0])
	if err != nil {
		return nil, err
	}
	pts, err := sc.game.PlayMove(pos)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("You play %v for %d points\n%s", pos, pts, sc.game.ToDisplayText())), nil
}

// aiplay lets the computer move for whoever is on turn.
func (sc *ShellController) aiplay(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	if !sc.IsPlaying() {
		return nil, game.ErrGameOver
	}
	if sc.game.PlayerOnTurn() == BotPlayer {
		return sc.botTurn()
	}
	d, err := sc.local.NextMove(sc.game)
	if err != nil {
		return nil, err
	}
	pts, err := sc.game.PlayMove(d.Pos)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Computer plays %v for you for %d points\n%s",
		d.Pos, pts, sc.game.ToDisplayText())), nil
}

func (sc *ShellController) hint(cmd *shellcmd) (*Response, error) {
	if !sc.IsPlaying() {
		return nil, errNoGame
	}
	d, err := sc.local.NextMove(sc.game)
	if err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("Try %v (%v, score %.2f)", d.Pos, d.Posture, d.Search.Score)), nil
}

func (sc *ShellController) posture(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	d := fuzzy.Classify(sc.game.EmptyCount(), sc.game.PointDiff())
	return msg(d.String()), nil
}

func (sc *ShellController) levelCmd(cmd *shellcmd) (*Response, error) {
	if len(cmd.args) == 0 {
		return msg(fmt.Sprintf("level: %v", sc.level)), nil
	}
	level, err := movesearch.ParseLevel(cmd.args[0])
	if err != nil {
		return nil, err
	}
	if err := sc.setLevel(level); err != nil {
		return nil, err
	}
	return msg(fmt.Sprintf("level set to %v", level)), nil
}

func (sc *ShellController) shapes(cmd *shellcmd) (*Response, error) {
	var out strings.Builder
	for _, s := range shape.Catalog() {
		out.WriteString(s.ToDisplayText())
	}
	return msg(out.String()), nil
}

func (sc *ShellController) history(cmd *shellcmd) (*Response, error) {
	if sc.game == nil {
		return nil, errNoGame
	}
	var out strings.Builder
	for i, t := range sc.game.History() {
		fmt.Fprintf(&out, "%3d. %v\n", i+1, t)
	}
	return msg(out.String()), nil
}

func (sc *ShellController) help(cmd *shellcmd) (*Response, error) {
	if cmd.args == nil {
		return usage()
	}
	return usageTopic(cmd.args[0])
}
