package shell

import (
	"strings"

	"github.com/kballard/go-shellquote"
)

// ShellCompleter completes command names and their arguments.
type ShellCompleter struct {
	sc *ShellController
}

func NewShellCompleter(sc *ShellController) *ShellCompleter {
	return &ShellCompleter{sc: sc}
}

var levelArgs = []string{"easy", "hard"}

var commandArgs = map[string][]string{
	"new":   levelArgs,
	"level": levelArgs,
	"help":  {"coords", "levels"},
}

var commandNames = []string{
	"new", "show", "play", "ai", "hint", "posture", "level", "shapes",
	"history", "help", "exit",
}

// Do implements the readline.AutoCompleter interface.
func (c *ShellCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line[:pos])

	fields, err := shellquote.Split(text)
	if err != nil {
		fields = strings.Fields(text)
	}
	endsWithSpace := len(text) > 0 && text[len(text)-1] == ' '

	var prefix string
	var completions []string

	if len(fields) == 0 || (len(fields) == 1 && !endsWithSpace) {
		if len(fields) == 1 {
			prefix = fields[0]
		}
		completions = commandNames
	} else {
		if !endsWithSpace {
			prefix = fields[len(fields)-1]
		}
		completions = commandArgs[fields[0]]
		if (fields[0] == "play" || fields[0] == "p") && c.sc.game != nil {
			// Suggest empty cells.
			for _, p := range c.sc.game.Board().EmptyCells() {
				completions = append(completions, p.String())
			}
		}
	}

	var matches [][]rune
	for _, completion := range completions {
		if strings.HasPrefix(completion, prefix) {
			matches = append(matches, []rune(completion[len(prefix):]))
		}
	}
	return matches, len(prefix)
}
