package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/numkit/seqcalc/internal/format"
	"github.com/numkit/seqcalc/internal/sequence"
	"github.com/numkit/seqcalc/internal/ui"
)

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Kind is the initial sequence kind.
	Kind sequence.Kind
	// Params are the initial sequence parameters.
	Params sequence.Params
	// Verbose enables the complete chunked sequence listing.
	Verbose bool
}

// REPL represents an interactive sequence calculator session.
type REPL struct {
	config REPLConfig
	kind   sequence.Kind
	params sequence.Params
	in     io.Reader
	out    io.Writer
}

// NewREPL creates a new REPL instance.
func NewREPL(config REPLConfig) *REPL {
	return &REPL{
		config: config,
		kind:   config.Kind,
		params: config.Params,
		in:     os.Stdin,
		out:    os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start begins the interactive REPL session.
// It continuously reads user input and processes commands until
// the user exits or EOF is reached.
func (r *REPL) Start() {
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)

	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"seq> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil {
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, "\nGoodbye!")
				return
			}
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		if !r.processCommand(input) {
			return // Exit command received
		}
	}
}

// printBanner displays the REPL welcome banner.
func (r *REPL) printBanner() {
	fmt.Fprintf(r.out, "\n%s╔══════════════════════════════════════════════════════════╗%s\n", ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s║%s     %s🔢 Sequence Calculator - Interactive Mode%s             %s║%s\n",
		ui.ColorCyan(), ui.ColorReset(), ui.ColorBold(), ui.ColorReset(), ui.ColorCyan(), ui.ColorReset())
	fmt.Fprintf(r.out, "%s╚══════════════════════════════════════════════════════════╝%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// printHelp displays available commands.
func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sarith <a1> <d> <n>%s - Generate an arithmetic sequence\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sgeo <a1> <r> <n>%s   - Generate a geometric sequence\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sgen%s                - Generate with the current parameters\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %skind <name>%s        - Change kind (arithmetic, geometric)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sset <field> <v>%s    - Set a default (first, step, terms)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s             - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s               - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s       - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "A plain number sets the term count and generates immediately.\n")
}

// processCommand parses and executes a user command.
// Returns false if the REPL should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "arith", "a":
		r.cmdGenerate(sequence.Arithmetic, args)
	case "geo", "g":
		r.cmdGenerate(sequence.Geometric, args)
	case "gen":
		r.generate()
	case "kind", "k":
		r.cmdKind(args)
	case "set":
		r.cmdSet(args)
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		// Try to interpret as a term count for quick generation
		if n, err := strconv.Atoi(cmd); err == nil {
			r.params.Terms = n
			r.generate()
		} else {
			fmt.Fprintf(r.out, "%sUnknown command: %s%s\n", ui.ColorRed(), cmd, ui.ColorReset())
			fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		}
	}

	return true
}

// cmdGenerate handles the "arith" and "geo" commands. With three arguments it
// replaces the current parameters; with none it reuses them.
func (r *REPL) cmdGenerate(kind sequence.Kind, args []string) {
	r.kind = kind
	if len(args) == 0 {
		r.generate()
		return
	}
	if len(args) != 3 {
		fmt.Fprintf(r.out, "%sUsage: %s <first> <step> <terms>%s\n", ui.ColorRed(), kind, ui.ColorReset())
		return
	}

	first, err1 := strconv.ParseFloat(args[0], 64)
	step, err2 := strconv.ParseFloat(args[1], 64)
	terms, err3 := strconv.Atoi(args[2])
	if err1 != nil || err2 != nil || err3 != nil {
		fmt.Fprintf(r.out, "%sInvalid values: %s%s\n", ui.ColorRed(), strings.Join(args, " "), ui.ColorReset())
		return
	}

	r.params = sequence.Params{FirstTerm: first, Step: step, Terms: terms}
	r.generate()
}

// generate validates the term count and renders a report for the current
// kind and parameters.
func (r *REPL) generate() {
	if err := sequence.Validate(r.params.Terms); err != nil {
		fmt.Fprintf(r.out, "%s⚠ %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	report, err := sequence.Compute(r.kind, r.params)
	if err != nil {
		CLIResultPresenter{}.HandleError(err, r.out)
		return
	}

	DisplayReport(report, r.config.Verbose, r.out)
	fmt.Fprintln(r.out)
}

// cmdKind handles the "kind" command.
func (r *REPL) cmdKind(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: kind <arithmetic|geometric>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	kind, err := sequence.ParseKind(args[0])
	if err != nil {
		fmt.Fprintf(r.out, "%s%v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}

	r.kind = kind
	fmt.Fprintf(r.out, "Kind changed to: %s%s%s\n", ui.ColorGreen(), kind.Title(), ui.ColorReset())
}

// cmdSet handles the "set" command.
func (r *REPL) cmdSet(args []string) {
	if len(args) != 2 {
		fmt.Fprintf(r.out, "%sUsage: set <first|step|terms> <value>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	field := strings.ToLower(args[0])
	switch field {
	case "first", "step":
		v, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[1], ui.ColorReset())
			return
		}
		if field == "first" {
			r.params.FirstTerm = v
		} else {
			r.params.Step = v
		}
	case "terms":
		v, err := strconv.Atoi(args[1])
		if err != nil {
			fmt.Fprintf(r.out, "%sInvalid value: %s%s\n", ui.ColorRed(), args[1], ui.ColorReset())
			return
		}
		if err := sequence.Validate(v); err != nil {
			fmt.Fprintf(r.out, "%s⚠ %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			return
		}
		r.params.Terms = v
	default:
		fmt.Fprintf(r.out, "%sUnknown field: %s%s\n", ui.ColorRed(), field, ui.ColorReset())
		return
	}
	fmt.Fprintf(r.out, "Set %s = %s%s%s\n", field, ui.ColorGreen(), args[1], ui.ColorReset())
}

// cmdStatus displays current REPL configuration.
func (r *REPL) cmdStatus() {
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  Kind:       %s%s%s\n", ui.ColorCyan(), r.kind.Title(), ui.ColorReset())
	fmt.Fprintf(r.out, "  First term: %s%s%s\n", ui.ColorCyan(), format.Number(r.params.FirstTerm), ui.ColorReset())
	fmt.Fprintf(r.out, "  %s: %s%s%s\n", r.kind.StepName(), ui.ColorCyan(), format.Number(r.params.Step), ui.ColorReset())
	fmt.Fprintf(r.out, "  Terms:      %s%d%s (max %d)\n", ui.ColorCyan(), r.params.Terms, ui.ColorReset(), sequence.MaxTerms)
	fmt.Fprintln(r.out)
}
