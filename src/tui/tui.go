package tui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/eriklarko/logic-simulator/src/simulator"
	"github.com/eriklarko/logic-simulator/src/truthtable"
)

const prompt = "Enter expression: "

// LineReader is the part of *readline.Instance the loop needs.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

type Options struct {
	Format string
	Color  bool
	// Banner prints the welcome text and a goodbye when the loop ends
	Banner bool
	// Status receives the result and error lines, defaults to the table output
	Status io.Writer
}

type TUI struct {
	simulator *simulator.Simulator
	lines     LineReader
	output    io.Writer
	opts      Options

	okStyle    lipgloss.Style
	errorStyle lipgloss.Style
}

// New creates a TUI reading from the terminal with line editing and history.
func New(sim *simulator.Simulator, historyFile string, opts Options) (*TUI, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize prompt: %w", err)
	}
	return newTUI(sim, rl, rl.Stdout(), opts), nil
}

// NewFromReader creates a TUI that reads one expression per line from input,
// for piped input and tests.
func NewFromReader(sim *simulator.Simulator, input io.Reader, output io.Writer, opts Options) *TUI {
	return newTUI(sim, &scannerReader{scanner: bufio.NewScanner(input)}, output, opts)
}

func newTUI(sim *simulator.Simulator, lines LineReader, output io.Writer, opts Options) *TUI {
	return &TUI{
		simulator:  sim,
		lines:      lines,
		output:     output,
		opts:       opts,
		okStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
		errorStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}
}

// Run reads expressions until quit, exit or end of input. Bad expressions are
// reported and the loop carries on.
func (t *TUI) Run() error {
	defer t.lines.Close()

	if t.opts.Banner {
		t.printBanner()
	}

	for {
		line, err := t.lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("failed to read user input: %w", err)
		}

		expression := strings.TrimSpace(line)
		switch strings.ToLower(expression) {
		case "":
			if t.opts.Banner {
				t.status(false, "Please enter a valid expression.")
			}
			continue
		case "quit", "exit":
			if t.opts.Banner {
				fmt.Fprintln(t.output, "Goodbye!")
			}
			return nil
		case "help":
			t.printHelp()
			continue
		}

		t.evaluate(expression)
	}

	return nil
}

func (t *TUI) evaluate(expression string) {
	slog.Debug("evaluating expression", "expression", expression)

	table, err := t.simulator.GenerateTable(expression)
	if err != nil {
		t.status(false, "Error: %v", err)
		return
	}

	if err := truthtable.Render(t.output, table, truthtable.RenderOptions{Format: t.opts.Format, Color: t.opts.Color}); err != nil {
		t.status(false, "Error: %v", err)
		return
	}
	t.status(true, "Generated truth table with %d rows", len(table.Rows))
}

func (t *TUI) status(ok bool, format string, a ...any) {
	message := fmt.Sprintf(format, a...)
	if t.opts.Color {
		if ok {
			message = t.okStyle.Render(message)
		} else {
			message = t.errorStyle.Render(message)
		}
	}
	out := t.opts.Status
	if out == nil {
		out = t.output
	}
	fmt.Fprintln(out, message)
}

func (t *TUI) printBanner() {
	rule := strings.Repeat("=", 60)
	fmt.Fprintln(t.output, rule)
	fmt.Fprintln(t.output, "Digital Logic Simulator")
	fmt.Fprintln(t.output, rule)
	t.printHelp()
}

func (t *TUI) printHelp() {
	fmt.Fprint(t.output, `
Enter a Boolean expression using:
  - Variables: Single uppercase letters (A, B, C, ...)
  - Gates: AND, OR, NOT, NAND, NOR, XOR
  - Constants: 0, 1, TRUE, FALSE
  - Example: (A AND B) OR (NOT C)

Type 'help' to see this again and 'quit' to exit.

`)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

func (r *scannerReader) Readline() (string, error) {
	if r.scanner.Scan() {
		return r.scanner.Text(), nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

func (r *scannerReader) Close() error {
	return nil
}
