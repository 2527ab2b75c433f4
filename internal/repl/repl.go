// Package repl implements the interactive read-judge-print loop spec.md §6
// describes: each line is parsed, resolved, run through the bidirectional
// judgment against a fresh context, and the context is discarded afterward so
// one line's existentials can never leak into the next. Grounded on the
// teacher's internal/repl/repl.go (fatih/color + peterh/liner), trimmed of
// everything tied to evaluation, effects and modules.
package repl

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/peterh/liner"

	"github.com/polylambda/bidipoly/internal/driver"
	"github.com/polylambda/bidipoly/internal/types"
)

var (
	green  = color.New(color.FgGreen).SprintFunc()
	red    = color.New(color.FgRed).SprintFunc()
	yellow = color.New(color.FgYellow).SprintFunc()
	bold   = color.New(color.Bold).SprintFunc()
	dim    = color.New(color.Faint).SprintFunc()
)

// REPL is a session of the judge loop. Tracer, when set, forwards every
// context operation to types.Ctx for :trace output.
type REPL struct {
	version string
	tracer  types.Tracer
	history []string
	prompt  string
}

const defaultPrompt = "⊢> "

// New creates a REPL reporting the given version string in its banner.
func New(version string) *REPL {
	if version == "" {
		version = "dev"
	}
	return &REPL{version: version, prompt: defaultPrompt}
}

// ApplyConfig applies a loaded Config's prompt override; the caller decides
// whether to install a tracer (cfg.Trace is only a request, the sink itself
// is the CLI's concern).
func (r *REPL) ApplyConfig(cfg *Config) {
	if cfg == nil || cfg.Prompt == "" {
		return
	}
	r.prompt = cfg.Prompt
}

// EnableTrace turns on context-operation tracing for every judgment run
// afterward.
func (r *REPL) EnableTrace(t types.Tracer) {
	r.tracer = t
}

// Start runs the loop until EOF or a :quit command. Input lines and the
// prompt go through liner on the process's terminal; in is not read. The
// banner, results and diagnostics are written to out.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	line := liner.NewLiner()
	defer line.Close()
	line.SetMultiLineMode(false)

	historyFile := filepath.Join(os.TempDir(), ".bidipoly_history")
	if f, err := os.Open(historyFile); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintf(out, "%s %s\n", bold("bidipoly"), bold(r.version))
	fmt.Fprintln(out, dim("Type :help for help, :quit to exit"))
	fmt.Fprintln(out)

	line.SetCompleter(func(text string) (c []string) {
		if !strings.HasPrefix(text, ":") {
			return nil
		}
		for _, cmd := range []string{":help", ":quit", ":reset", ":trace", ":history"} {
			if strings.HasPrefix(cmd, text) {
				c = append(c, cmd)
			}
		}
		return c
	})

	for {
		input, err := line.Prompt(r.prompt)
		if err == io.EOF {
			fmt.Fprintln(out, green("\nGoodbye!"))
			break
		}
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", red("Error"), err)
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		line.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if r.HandleCommand(input, out) {
				break
			}
			continue
		}

		r.history = append(r.history, input)
		r.Judge(input, out)
	}

	if f, err := os.Create(historyFile); err == nil {
		_, _ = line.WriteHistory(f)
		f.Close()
	}
}

// Judge runs one line through the pipeline against a fresh, empty context —
// every top-level judgment starts from Γ = ∅ per spec.md §6.
func (r *REPL) Judge(input string, out io.Writer) {
	ctx := types.NewCtx()
	if r.tracer != nil {
		ctx.SetTracer(r.tracer)
	}

	res, err := driver.InferSource(ctx, input)
	if err != nil {
		fmt.Fprintf(out, "%s %v\n", red("error:"), err)
		return
	}
	fmt.Fprintf(out, "%s : %s\n", res.Term, yellow(res.Type))
}

// HandleCommand runs a ":"-prefixed command and reports whether the loop
// should stop.
func (r *REPL) HandleCommand(cmd string, out io.Writer) bool {
	switch strings.Fields(cmd)[0] {
	case ":quit", ":q", ":exit":
		fmt.Fprintln(out, green("Goodbye!"))
		return true
	case ":help", ":h":
		r.printHelp(out)
	case ":history":
		for i, h := range r.history {
			fmt.Fprintf(out, "%4d  %s\n", i+1, h)
		}
	case ":reset":
		fmt.Fprintln(out, dim("context was already fresh for every judgment; nothing to reset"))
	case ":trace":
		if r.tracer == nil {
			r.EnableTrace(types.SlogTracer{Log: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))})
			fmt.Fprintln(out, dim("tracing enabled; context operations now log to stderr"))
		} else {
			r.tracer = nil
			fmt.Fprintln(out, dim("tracing disabled"))
		}
	default:
		fmt.Fprintf(out, "%s unknown command %q (try :help)\n", red("error:"), cmd)
	}
	return false
}

func (r *REPL) printHelp(out io.Writer) {
	fmt.Fprintln(out, bold("Commands:"))
	fmt.Fprintln(out, "  :help              show this message")
	fmt.Fprintln(out, "  :history           show judged expressions so far")
	fmt.Fprintln(out, "  :reset             no-op; each line already starts from an empty context")
	fmt.Fprintln(out, "  :trace             toggle logging context operations to stderr")
	fmt.Fprintln(out, "  :quit              exit")
	fmt.Fprintln(out)
	fmt.Fprintln(out, bold("Syntax:"))
	fmt.Fprintln(out, "  |x| x                lambda")
	fmt.Fprintln(out, "  f.x                  application")
	fmt.Fprintln(out, "  e :: T               ascription")
	fmt.Fprintln(out, "  e[T]                 type application")
	fmt.Fprintln(out, "  'a => T              universal quantifier")
	fmt.Fprintln(out, "  T -> U               function type")
}
