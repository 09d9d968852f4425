// Package session runs the interactive browse loop over a catalog engine.
package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/langradar/langradar/core"
	"github.com/langradar/langradar/internal/contract"
	"github.com/langradar/langradar/internal/outwriter"
	"github.com/langradar/langradar/schema"
	"go.uber.org/zap"
)

// ResetHint is shown with the empty-result notice inside a session.
const ResetHint = "Type 'reset' to clear filters."

const helpText = `Commands:
  search <text>   filter languages by name (no text clears the search)
  sort <key>      sort by a subject alias or label, or "none"
  toggle <id>     add or remove a language from the comparison
  show <id>       print the full card of a language
  clear           empty the comparison selection
  reset           clear the search and the sort
  view            print the visible languages
  compare         print the comparison panel
  state           print the current search, sort and selection
  help            print this help
  quit            leave the session
`

// Session drives an engine from line commands. It is not safe for concurrent use.
type Session struct {
	engine *core.Engine
	cfg    *contract.Config
	out    io.Writer
	logger *zap.Logger
	warn   *color.Color
}

// New creates a session writing text output to out.
// Output mode and output file of cfg are ignored; sessions always print text.
func New(engine *core.Engine, cfg *contract.Config, out io.Writer, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	sessionCfg := cfg.Clone()
	sessionCfg.Output = schema.TextOut
	sessionCfg.OutputFile = ""

	warn := color.New(color.FgYellow)
	if !sessionCfg.UseColors {
		warn.DisableColor()
	}
	return &Session{engine: engine, cfg: sessionCfg, out: out, logger: logger, warn: warn}
}

// Run reads commands from in until quit, end of input or context cancellation.
func (s *Session) Run(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)
	s.printf("Browsing %d languages. Type 'help' for commands.\n", len(s.engine.Catalog()))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.prompt()
		if !scanner.Scan() {
			s.printf("\n")
			return scanner.Err()
		}
		quit, err := s.Execute(scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
}

// Execute runs a single command line. It reports whether the session should end.
// Bad input is answered on the output; only write failures are returned as errors.
func (s *Session) Execute(line string) (bool, error) {
	cmd, arg := splitCommand(line)
	if cmd == "" {
		return false, nil
	}
	s.logger.Debug("session command", zap.String("command", cmd), zap.String("arg", arg))

	switch cmd {
	case "search":
		s.engine.SetSearchQuery(arg)
		return false, s.view()
	case "sort":
		return false, s.sort(arg)
	case "toggle":
		return false, s.toggle(arg)
	case "show":
		return false, s.show(arg)
	case "clear":
		s.engine.ClearSelection()
		s.printf("Selection cleared. %s\n", selectedCount(s.engine.State()))
		return false, nil
	case "reset":
		s.engine.ResetFilters()
		return false, s.view()
	case "view", "list":
		return false, s.view()
	case "compare":
		return false, outwriter.WriteComparisonResults(s.out, core.GetComparisonResult(s.engine), s.cfg)
	case "state":
		s.printState()
		return false, nil
	case "help", "?":
		s.printf("%s", helpText)
		return false, nil
	case "quit", "exit", "q":
		return true, nil
	default:
		s.warnf("Unknown command %q. Type 'help' for commands.\n", cmd)
		return false, nil
	}
}

func (s *Session) sort(arg string) error {
	key, ok := schema.ParseSortKey(arg)
	if !ok {
		s.warnf("Unknown sort key %q. Run 'langradar subjects' for the options.\n", arg)
		return nil
	}
	if err := s.engine.SetSortKey(key); err != nil {
		return err
	}
	return s.view()
}

func (s *Session) toggle(id string) error {
	if id == "" {
		s.warnf("Usage: toggle <id>\n")
		return nil
	}
	outcome, err := s.engine.ToggleSelection(id)
	state := s.engine.State()
	switch outcome {
	case schema.ToggleAdded:
		s.printf("Added %s. %s\n", id, selectedCount(state))
	case schema.ToggleRemoved:
		s.printf("Removed %s. %s\n", id, selectedCount(state))
	case schema.ToggleIgnored:
		s.warnf("Unknown language: %s\n", id)
	case schema.ToggleRejected:
		s.warnf("Cannot select %s: %v. Remove a language first.\n", id, err)
	}
	return nil
}

func (s *Session) show(id string) error {
	result, err := core.GetDetailResult(s.engine, id)
	if errors.Is(err, core.ErrUnknownLanguage) {
		s.warnf("Unknown language: %s\n", id)
		return nil
	}
	if err != nil {
		return err
	}
	return outwriter.WriteDetailResults(s.out, result, s.cfg)
}

func (s *Session) view() error {
	result := core.GetListResults(s.engine, s.cfg)
	result.ResetHint = ResetHint
	return outwriter.WriteLanguageResults(s.out, result, s.cfg)
}

func (s *Session) printState() {
	state := s.engine.State()
	search := state.SearchQuery
	if search == "" {
		search = "(none)"
	} else {
		search = fmt.Sprintf("%q", search)
	}
	s.printf("Search: %s\n", search)
	s.printf("Sort: %s\n", state.SortKey)
	s.printf("Selection: %s", selectedCount(state))
	if len(state.Selection) > 0 {
		s.printf(" (%s)", strings.Join(state.Selection, ", "))
	}
	s.printf("\n")
}

func (s *Session) prompt() {
	s.printf("[%d/%d] > ", len(s.engine.State().Selection), schema.MaxSelection)
}

func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

func (s *Session) warnf(format string, args ...any) {
	_, _ = s.warn.Fprintf(s.out, format, args...)
}

// splitCommand splits a line into a lowercased command and its trimmed argument.
func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	cmd, arg, _ := strings.Cut(line, " ")
	return strings.ToLower(cmd), strings.TrimSpace(arg)
}

func selectedCount(state schema.State) string {
	return fmt.Sprintf("%d selected", len(state.Selection))
}
