/*
Breakcli is an interactive tool to inspect line breaking of bidirectional
text.

Text entered at the prompt is broken into lines, and the pieces of every
line are listed with their position, width and bidi level. Commands start
with a colon:

	:width 120      set the line width in pt
	:align right    set the alignment (left, center, right, justified, distributed)
	:engine txt     switch to the plain text breaker (rtf, txt)
	:glyphs         show glyph positions of the last paragraph
	:find pattern   find a pattern in the last paragraph
	:help           list commands
	:quit           leave

Usage:

	breakcli [-trace Debug] [-font file.ttf] [-width 100] [-align left]
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/npillmayer/textbreak"
	"github.com/npillmayer/textbreak/linebreak"
	"github.com/npillmayer/textbreak/metrics"
	"github.com/npillmayer/textbreak/textfind"
	"github.com/pterm/pterm"
)

// tracer traces with key 'textbreak.cli'
func tracer() tracing.Trace {
	return tracing.Select("textbreak.cli")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":            "go",
		"trace.textbreak.cli":        "Info",
		"trace.textbreak.linebreak":  "Error",
		"trace.textbreak.bidi":       "Error",
		"trace.textbreak.textfind":   "Error",
		"trace.textbreak.metrics":    "Error",
		"trace.textbreak.charclass":  "Error",
		linebreak.KeyAlignment:       "left",
		linebreak.KeyParaBreakChar:   "lf",
		linebreak.KeyExpandTab:       true,
		linebreak.KeyTabWidth:        "36",
		linebreak.KeyFontSize:        "12",
		linebreak.KeyLineWidth:       "100",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontfile := flag.String("font", "", "TrueType/OpenType font to measure with (default: monospace)")
	width := flag.Float64("width", 100, "Line width in pt")
	align := flag.String("align", "left", "Alignment [left|center|right|justified|distributed]")
	flag.Parse()
	conf[linebreak.KeyLineWidth] = strconv.FormatFloat(*width, 'f', -1, 32)
	conf[linebreak.KeyAlignment] = *align
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the line breaking CLI")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	settings, err := linebreak.SettingsFrom(conf)
	if err != nil {
		pterm.Error.Println(textbreak.UserMessage(err))
	}
	intp := &Intp{settings: settings, engine: "rtf"}
	if err := intp.loadFont(*fontfile); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(4)
	}
	intp.newBreaker()
	//
	// set up REPL
	repl, err := readline.New("tb > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	intp.REPL()
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// breaker is the common interface of RTFBreak and TxtBreak used by the CLI.
type breaker interface {
	linebreak.Configurable
	linebreak.CharSource
	SetFont(metrics.Font)
	AppendChar(rune) linebreak.BreakType
	EndBreak(linebreak.BreakType) linebreak.BreakType
	CountBreakPieces() int
	GetBreakPiece(int) *linebreak.BreakPiece
	ClearBreakPieces()
	TextPiece(*linebreak.BreakPiece, float32) *linebreak.TextPiece
}

// line is a finished line, with copies of its pieces' text pieces.
type line struct {
	pieces []linebreak.BreakPiece
	texts  []*linebreak.TextPiece
}

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	settings linebreak.Settings
	font     metrics.Font
	engine   string
	breaker  breaker
	text     string // last paragraph
	lines    []line
}

func (intp *Intp) loadFont(name string) error {
	if name == "" {
		intp.font = metrics.NewMonospace(metrics.ContextFromEnvironment())
		tracer().Infof("using monospace font")
		return nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return textbreak.WrapError(err, textbreak.EMISSING, "cannot read font %s", name)
	}
	f, err := metrics.LoadSFNT(data)
	if err != nil {
		return err
	}
	intp.font = f
	tracer().Infof("loaded font %s", name)
	return nil
}

func (intp *Intp) newBreaker() {
	switch intp.engine {
	case "txt":
		intp.breaker = linebreak.NewTxtBreak(intp.settings.Styles)
	default:
		intp.breaker = linebreak.NewRTFBreak(intp.settings.Styles)
	}
	intp.settings.Apply(intp.breaker)
	intp.breaker.SetFont(intp.font)
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		input, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if strings.TrimSpace(input) == "" {
			continue
		}
		if !strings.HasPrefix(input, ":") {
			intp.breakParagraph(input)
			intp.showLines()
			continue
		}
		quit, err := intp.execute(strings.Fields(input[1:]))
		if err != nil {
			pterm.Error.Println(textbreak.UserMessage(err))
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(cmd []string) (bool, error) {
	if len(cmd) == 0 {
		help()
		return false, nil
	}
	arg := strings.Join(cmd[1:], " ")
	switch strings.ToLower(cmd[0]) {
	case "quit", "q":
		return true, nil
	case "width":
		w, err := strconv.ParseFloat(arg, 32)
		if err != nil || w <= 0 {
			return false, textbreak.Error(textbreak.EINVALID, "invalid line width %q", arg)
		}
		intp.settings.LineWidth = float32(w)
		intp.newBreaker()
		pterm.Printfln("line width is %.2fpt", w)
	case "align":
		a, ok := linebreak.AlignmentFromString(strings.ToLower(arg))
		if !ok {
			return false, textbreak.Error(textbreak.EINVALID, "unknown alignment %q", arg)
		}
		intp.settings.Alignment = a
		intp.newBreaker()
		pterm.Printfln("alignment is %s", a)
	case "engine":
		if arg != "rtf" && arg != "txt" {
			return false, textbreak.Error(textbreak.EINVALID, "unknown engine %q", arg)
		}
		intp.engine = arg
		intp.newBreaker()
		pterm.Printfln("using %s line breaker", arg)
	case "glyphs":
		intp.showGlyphs()
	case "find":
		return false, intp.find(arg)
	default:
		help()
	}
	return false, nil
}

// breakParagraph feeds a paragraph of text to the line breaker and collects
// the finished lines.
func (intp *Intp) breakParagraph(text string) {
	intp.text = text
	intp.lines = intp.lines[:0]
	for _, r := range text {
		if intp.breaker.AppendChar(r) >= linebreak.Line {
			intp.collect()
		}
	}
	if intp.breaker.EndBreak(linebreak.Paragraph) >= linebreak.Line {
		intp.collect()
	}
}

func (intp *Intp) collect() {
	b := intp.breaker
	var l line
	top := float32(len(intp.lines)) * intp.settings.FontSize * 1.2
	for i := 0; i < b.CountBreakPieces(); i++ {
		p := b.GetBreakPiece(i)
		l.pieces = append(l.pieces, *p)
		l.texts = append(l.texts, b.TextPiece(p, top))
	}
	tracer().Debugf("line #%d has %d pieces", len(intp.lines), len(l.pieces))
	intp.lines = append(intp.lines, l)
	b.ClearBreakPieces()
}

func (intp *Intp) showLines() {
	data := pterm.TableData{{"line", "piece", "status", "start", "width", "level", "text"}}
	for n, l := range intp.lines {
		for i, p := range l.pieces {
			text := ""
			if tp := l.texts[i]; tp != nil {
				text = string(tp.Text)
			}
			data = append(data, []string{
				strconv.Itoa(n), strconv.Itoa(i), p.Status.String(),
				fmt.Sprintf("%.2f", float32(p.StartPos)/20000),
				fmt.Sprintf("%.2f", float32(p.Width)/20000),
				strconv.Itoa(int(p.BidiLevel)),
				strconv.Quote(text),
			})
		}
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func (intp *Intp) showGlyphs() {
	if len(intp.lines) == 0 {
		pterm.Info.Println("no paragraph yet")
		return
	}
	data := pterm.TableData{{"line", "glyph", "x", "y", "width"}}
	for n, l := range intp.lines {
		for _, tp := range l.texts {
			if tp == nil {
				continue
			}
			var positions []linebreak.GlyphPosition
			switch b := intp.breaker.(type) {
			case *linebreak.RTFBreak:
				positions = b.GetDisplayPos(tp, false)
			case *linebreak.TxtBreak:
				positions = b.GetDisplayPos(tp)
			}
			for _, g := range positions {
				data = append(data, []string{
					strconv.Itoa(n), fmt.Sprintf("%04X", g.Glyph),
					fmt.Sprintf("%.2f", g.Origin.X), fmt.Sprintf("%.2f", g.Origin.Y),
					strconv.Itoa(int(g.FontCharWidth)),
				})
			}
		}
	}
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		tracer().Errorf(err.Error())
	}
}

func (intp *Intp) find(pattern string) error {
	f, err := textfind.New(intp.text, pattern, textfind.Options{MatchWholeWord: true}, 0)
	if err != nil {
		return err
	}
	n := 0
	for f.FindNext() {
		pterm.Printfln("found %q at [%d,%d]", f.Match(), f.Start(), f.End())
		n++
	}
	if n == 0 {
		pterm.Info.Printfln("%q not found", pattern)
	}
	return nil
}

func help() {
	pterm.Info.Println(`Enter a paragraph of text to break it into lines, or one of
  :width <pt>      set the line width
  :align <name>    left, center, right, justified, distributed
  :engine rtf|txt  select the line breaker
  :glyphs          show glyph positions of the last paragraph
  :find <pattern>  find whole words in the last paragraph
  :quit            leave`)
}
