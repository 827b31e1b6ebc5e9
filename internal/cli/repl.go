// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// repl.go - Interactive line-based conversion loop for hexspect.
//
// Command: repl
// Short:   Read lines, convert each, keep settings between lines
// Aliases: i, interactive
//
// Each input line is converted and printed as a full report. Lines
// starting with ':' adjust settings for the rest of the session:
//
//   :hex | :number | :string   Pin the input kind
//   :auto                      Auto-detect the input kind (default)
//   :endian big|little         Byte order
//   :group 1|2|4|8             Uniform group size
//   :groups a,b,c              Custom group pattern
//   :width N                   Byte width for numbers
//   :repr REPR                 unsigned, twos, ones, signmag
//   :history                   List recent recorded conversions
//   :help                      Show this summary
//   :quit                      Exit (Ctrl+C and Ctrl+D work too)
//
// Input history is kept across sessions with readline-style editing.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/jeranaias/hexspect/internal/config"
	"github.com/jeranaias/hexspect/internal/hexconv"
	"github.com/jeranaias/hexspect/internal/history"
)

// replSession holds the state for one interactive session.
type replSession struct {
	line        *liner.State
	historyFile string

	cfg  *config.Config
	opts Options
	kind string // "auto", "hex", "number", "string"
	args Args
}

// HandleRepl handles the "repl" command.
func HandleRepl(args Args) error {
	cfg := loadConfigOrDefault(args.Verbose)

	opts, err := resolveOptions(args, cfg)
	if err != nil {
		return HandleError(err, false)
	}

	session := &replSession{
		line: liner.NewLiner(),
		cfg:  cfg,
		opts: opts,
		kind: "auto",
		args: args,
	}
	session.line.SetCtrlCAborts(true)

	configDir, err := config.ConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	session.historyFile = filepath.Join(configDir, "repl_history")
	session.loadHistory()
	defer session.close()

	if !args.Quiet {
		fmt.Println(TitleStyle.Render("hexspect repl") + DimStyle.Render("  (:help for commands, :quit to exit)"))
	}

	for {
		input, err := session.line.Prompt(promptText(session))
		if err != nil {
			// liner.ErrPromptAborted is Ctrl+C; EOF is Ctrl+D.
			fmt.Println()
			return nil
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		session.line.AppendHistory(input)

		if strings.HasPrefix(input, ":") {
			if quit := session.handleCommand(input); quit {
				return nil
			}
			continue
		}

		if strings.EqualFold(input, "exit") || strings.EqualFold(input, "quit") {
			return nil
		}

		session.convert(input)
	}
}

func promptText(s *replSession) string {
	label := s.kind
	if s.kind == "auto" {
		label = "hexspect"
	}
	return HighlightStyle.Render(label + "> ")
}

// handleCommand processes a ':' settings command. Returns true on :quit.
func (s *replSession) handleCommand(input string) bool {
	fields := strings.Fields(strings.TrimPrefix(input, ":"))
	if len(fields) == 0 {
		return false
	}
	cmd := strings.ToLower(fields[0])
	arg := ""
	if len(fields) > 1 {
		arg = fields[1]
	}

	switch cmd {
	case "quit", "q", "exit":
		return true

	case "help", "h", "?":
		s.printHelp()

	case "hex", "number", "num", "string", "str", "auto":
		switch cmd {
		case "num":
			s.kind = "number"
		case "str":
			s.kind = "string"
		default:
			s.kind = cmd
		}

	case "endian", "e":
		if e, err := hexconv.ParseEndian(arg); err == nil {
			s.opts.Endian = e
		} else {
			s.warn("endianness must be big or little")
		}

	case "group", "g":
		if n, err := strconv.Atoi(arg); err == nil && validGroupSize(n) {
			s.opts.Spec = hexconv.UniformGroups(n)
		} else {
			s.warn("group size must be 1, 2, 4, or 8")
		}

	case "groups":
		sizes := hexconv.ParseGroupPattern(arg)
		if len(sizes) == 0 {
			s.warn("pattern must be comma-separated sizes, e.g. 1,1,6")
		} else {
			s.opts.Spec = hexconv.PatternGroups(sizes)
		}

	case "width", "w":
		if n, err := strconv.Atoi(arg); err == nil && n >= 1 && n <= hexconv.MaxBytes {
			s.opts.Width = n
		} else {
			s.warn("width must be between 1 and 8")
		}

	case "repr", "r":
		if m, err := hexconv.ParseMode(arg); err == nil {
			s.opts.Mode = m
		} else {
			s.warn("representation must be unsigned, twos, ones, or signmag")
		}

	case "history":
		s.showRecent()

	default:
		s.warn("unknown command :" + cmd + " (:help for commands)")
	}
	return false
}

// convert converts one input line under the current settings.
func (s *replSession) convert(input string) {
	kind := s.kind
	if kind == "auto" {
		kind = detectKind(input)
	}

	var report *Report
	switch kind {
	case "number":
		value, err := hexconv.ParseInt(input)
		if err != nil {
			s.fail(err)
			return
		}
		data, err := hexconv.IntToBytes(value, s.opts.Width, s.opts.Mode, s.opts.Endian)
		if err != nil {
			s.fail(err)
			return
		}
		report = BuildReport("number", input, data, s.opts)
		report.Value = FormatGrouped(value)
		report.ScalarHex = hexconv.ScalarHex(value, s.opts.Width)
		report.Range = RangeLabel(s.opts.Width, s.opts.Mode)
		report.Width = s.opts.Width

	case "string":
		report = BuildReport("string", input, EncodeText(input), s.opts)

	default:
		data, err := hexconv.ParseHexBytes(input)
		if err != nil || data == nil {
			s.fail(err)
			return
		}
		report = BuildReport("hex", input, data, s.opts)
	}

	fmt.Print(report.Render(s.args.Verbose))
	recordConversion(report.Kind, report, s.opts, s.args, s.cfg)
}

// detectKind guesses what an input line is: a number if it parses as
// one, hex bytes if they parse, text otherwise.
func detectKind(input string) string {
	if _, err := hexconv.ParseInt(input); err == nil {
		return "number"
	}
	if b, err := hexconv.ParseHexBytes(input); err == nil && b != nil {
		return "hex"
	}
	return "string"
}

// showRecent prints the last few recorded conversions.
func (s *replSession) showRecent() {
	path := s.cfg.History.DBPath
	if path == "" {
		var err error
		path, err = history.DefaultPath()
		if err != nil {
			s.warn("history unavailable")
			return
		}
	}
	store, err := history.Open(path, s.cfg.History.MaxEntries)
	if err != nil {
		s.warn("history unavailable")
		return
	}
	defer store.Close()

	entries, err := store.Recent(context.Background(), 10)
	if err != nil {
		s.warn("history unavailable")
		return
	}
	if printErr := printEntries("history", entries, false); printErr != nil {
		s.warn("history unavailable")
	}
}

func (s *replSession) printHelp() {
	fmt.Println(SectionStyle.Render("Session commands"))
	fmt.Println("  :hex :number :string   pin the input kind     :auto   detect per line")
	fmt.Println("  :endian big|little     byte order             :width N  number width")
	fmt.Println("  :group 1|2|4|8         uniform group size     :groups a,b,c  pattern")
	fmt.Println("  :repr REPR             unsigned/twos/ones/signmag")
	fmt.Println("  :history               recent recorded conversions")
	fmt.Println("  :quit                  exit")
}

func (s *replSession) warn(msg string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", WarningStyle.Render("[WARN]"), msg)
}

func (s *replSession) fail(err error) {
	if err == nil {
		err = NewValidationError("input", "", "no bytes to decode")
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", ErrorStyle.Render("[ERROR]"), err)
}

// loadHistory loads input history from file.
func (s *replSession) loadHistory() {
	if f, err := os.Open(s.historyFile); err == nil {
		s.line.ReadHistory(f)
		f.Close()
	}
}

// saveHistory persists input history with owner-only permissions.
func (s *replSession) saveHistory() {
	if err := config.EnsureConfigDir(); err != nil {
		return
	}
	f, err := os.OpenFile(s.historyFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return
	}
	defer f.Close()
	s.line.WriteHistory(f)
}

func (s *replSession) close() {
	s.saveHistory()
	s.line.Close()
}
