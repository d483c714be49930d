// This file is part of Gigascreen No-Flick.
//
// Gigascreen No-Flick is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gigascreen No-Flick is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gigascreen No-Flick.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/bradleyjkemp/memviz"

	"github.com/dotkoval/spectaculator-gigascreen-noflick/capture"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/digest"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/gui/overlay"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/gui/sdlview"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/logger"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/lut"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/modalflag"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/noflick"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/performance"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/performance/limiter"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/prefs"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/rgb565"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/statsview"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/testcard"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/userinput/termtoggle"
	"github.com/dotkoval/spectaculator-gigascreen-noflick/version"
)

// dimensions of the ZX Spectrum screen. the default size of testcards
const (
	defaultWidth  = 256
	defaultHeight = 192
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

// SDL requires that all calls are made from the main thread
func init() {
	runtime.LockOSThread()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	exitVal := launch(ctx, os.Args[1:], os.Stdout)
	stop()
	os.Exit(exitVal)
}

// the modes of the program. PLAY is the default
var modes = []modalflag.Mode{
	{Name: "PLAY", Help: "show a capture file or testcard in a window"},
	{Name: "RUN", Help: "process a capture file without a window"},
	{Name: "RECORD", Help: "write testcard frames to a capture file"},
	{Name: "DIGEST", Help: "print the digest of a processed capture file"},
	{Name: "LUT", Help: "write a lookup table as a C header"},
	{Name: "PERFORMANCE", Help: "measure the speed of the engine"},
	{Name: "VERSION", Help: "print version information"},
}

// launch parses the top level arguments and runs the selected mode. returns
// the value to be used with os.Exit()
func launch(ctx context.Context, args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddModes(modes...)

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "PLAY":
		err = play(ctx, md)

	case "RUN":
		err = run(ctx, md)

	case "RECORD":
		err = record(ctx, md)

	case "DIGEST":
		err = digestMode(ctx, md)

	case "LUT":
		err = lutMode(md)

	case "PERFORMANCE":
		err = perform(ctx, md)

	case "VERSION":
		fmt.Fprintf(output, "%s %s\n", version.ApplicationName, version.Current)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return exitModeError
	}

	return 0
}

// flags shared by all modes that create an engine
type engineFlags struct {
	prefsFile *string
	legacyCfg *string
	overrides *string
	log       *bool
}

func addEngineFlags(md *modalflag.Modes) engineFlags {
	return engineFlags{
		prefsFile: md.AddString("prefs", "", "preferences file (default is in the resource directory)"),
		legacyCfg: md.AddString("cfg", "", "read settings from a gigascreen.cfg file instead of the preferences file"),
		overrides: md.AddString("set", "", "override preferences. eg. \"gigascreen.gamma::1.8; gigascreen.mode::1\""),
		log:       md.AddBool("log", false, "echo log to stdout"),
	}
}

// preferences loads the preferences according to the flags. the command line
// overrides are applied while the preferences are added
func (ef engineFlags) preferences() (*noflick.Preferences, error) {
	if *ef.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *ef.overrides != "" {
		if err := prefs.PushCommandLineStack(*ef.overrides); err != nil {
			return nil, err
		}
		defer func() {
			if unused := prefs.PopCommandLineStack(); unused != "" {
				logger.Logf(logger.Allow, "prefs", "unused command line preferences: %s", unused)
			}
		}()
	}

	// the legacy file is read but never created
	if *ef.legacyCfg != "" {
		return noflick.NewPreferences(*ef.legacyCfg, false)
	}

	return noflick.NewPreferences(*ef.prefsFile, true)
}

func testcardHelp() string {
	return fmt.Sprintf("testcard to use: %s", strings.Join(testcard.Names(), ", "))
}

func play(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Shows a capture file, or a testcard if no file is given, in a window.\n" +
		"Shift+Tab cycles the anti-flicker mode. F12 saves a screenshot.")

	ef := addEngineFlags(md)
	card := md.AddString("testcard", "gigascreen", testcardHelp())
	width := md.AddInt("width", defaultWidth, "width of testcard")
	height := md.AddInt("height", defaultHeight, "height of testcard")
	scale := md.AddInt("scale", 1, "window scaling (applied to the doubled output)")
	fps := md.AddInt("fps", limiter.DefaultFPS, "frames per second")
	watch := md.AddBool("watch", true, "reload preferences when the preferences file changes")
	term := md.AddBool("term", false, "listen for Shift+Tab on the terminal too")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var src sdlview.Source

	switch len(md.RemainingArgs()) {
	case 0:
		gen, err := testcard.ByName(*card, *width, *height)
		if err != nil {
			return err
		}
		var n int
		src = func() (rgb565.Frame, error) {
			f := gen.Frame(n)
			n++
			return f, nil
		}
	case 1:
		f, err := os.Open(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()

		rdr, err := capture.NewReader(f)
		if err != nil {
			return err
		}
		defer rdr.Close()

		src = rdr.ReadFrame
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pr, err := ef.preferences()
	if err != nil {
		return err
	}

	eng := noflick.NewEngine(pr.Config())
	bar := overlay.NewBar(eng.Status)
	eng.SetNotifier(bar)
	if pr.Banner.Get().(bool) {
		bar.Banner(version.Short())
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if *watch {
		err = pr.Watch(ctx, func(err error) {
			if err != nil {
				logger.Log(logger.Allow, "prefs", err)
				return
			}
			eng.Reload(pr.Config())
		})
		if err != nil {
			return err
		}
	}

	if *stats {
		statsview.Launch(ctx, md.Output)
	}

	if *term {
		go func() {
			err := termtoggle.Listen(ctx, eng)
			if errors.Is(err, termtoggle.ErrQuit) {
				cancel()
			} else if err != nil {
				logger.Log(logger.Allow, "userinput", err)
			}
		}()
	}

	scr, err := sdlview.NewSdlView(eng, bar, *scale)
	if err != nil {
		return err
	}
	defer scr.Destroy()

	err = scr.SetFPS(*fps)
	if err != nil {
		return err
	}

	return scr.Run(ctx, src)
}

// process every frame in the capture file through the engine. the output
// function is called with each rendered frame
func process(ctx context.Context, eng *noflick.Engine, filename string, output func(dst rgb565.Frame) error) (int, error) {
	f, err := os.Open(filename)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	rdr, err := capture.NewReader(f)
	if err != nil {
		return 0, err
	}
	defer rdr.Close()

	var dst rgb565.Frame
	var n int

	for {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}

		src, err := rdr.ReadFrame()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return n, nil
			}
			return n, err
		}

		w := src.Width * noflick.Scale
		h := src.Height * noflick.Scale
		if dst.Width != w || dst.Height != h {
			dst = rgb565.NewFrame(w, h)
		}

		if w, _ := eng.Render(src, dst); w == 0 {
			continue
		}

		err = output(dst)
		if err != nil {
			return n, err
		}
		n++
	}
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Processes a capture file. The output is written to a second capture\n" +
		"file and/or to a series of PNG files.")

	ef := addEngineFlags(md)
	pngPrefix := md.AddString("png", "", "save every output frame as a PNG file with this prefix")
	memvizFile := md.AddString("memviz", "", "write a graphviz dot file of the engine to this file after processing")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var out *capture.Writer

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("capture file required for %s mode", md)
	case 1:
		if *pngPrefix == "" {
			return fmt.Errorf("output capture file or -png required for %s mode", md)
		}
	case 2:
		f, err := os.Create(md.GetArg(1))
		if err != nil {
			return err
		}
		defer f.Close()

		out, err = capture.NewWriter(f)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	pr, err := ef.preferences()
	if err != nil {
		return err
	}
	eng := noflick.NewEngine(pr.Config())

	var shot int
	n, err := process(ctx, eng, md.GetArg(0), func(dst rgb565.Frame) error {
		if out != nil {
			if err := out.WriteFrame(dst); err != nil {
				return err
			}
		}
		if *pngPrefix != "" {
			if err := capture.SavePNG(fmt.Sprintf("%s_%05d.png", *pngPrefix, shot), dst); err != nil {
				return err
			}
			shot++
		}
		return nil
	})
	if err != nil {
		return err
	}

	if out != nil {
		err = out.Close()
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(md.Output, "%d frames processed (%s)\n", n, eng)

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, eng)
	}

	return nil
}

func record(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Writes frames from a testcard to a capture file.")

	card := md.AddString("testcard", "gigascreen", testcardHelp())
	width := md.AddInt("width", defaultWidth, "width of testcard")
	height := md.AddInt("height", defaultHeight, "height of testcard")
	frames := md.AddInt("frames", limiter.DefaultFPS*2, "number of frames to record")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("exactly one output file required for %s mode", md)
	}

	gen, err := testcard.ByName(*card, *width, *height)
	if err != nil {
		return err
	}

	f, err := os.Create(md.GetArg(0))
	if err != nil {
		return err
	}
	defer f.Close()

	w, err := capture.NewWriter(f)
	if err != nil {
		return err
	}

	for n := range *frames {
		if ctx.Err() != nil {
			break
		}
		err = w.WriteFrame(gen.Frame(n))
		if err != nil {
			return err
		}
	}

	err = w.Close()
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d frames of %s testcard written to %s\n", w.Frames(), gen, md.GetArg(0))

	return nil
}

func digestMode(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Processes a capture file and prints the digest of the output.")

	ef := addEngineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("exactly one capture file required for %s mode", md)
	}

	pr, err := ef.preferences()
	if err != nil {
		return err
	}
	eng := noflick.NewEngine(pr.Config())
	dig := digest.NewFrames()

	_, err = process(ctx, eng, md.GetArg(0), func(dst rgb565.Frame) error {
		dig.AddFrame(dst)
		return nil
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%s (%d frames)\n", dig.Hash(), dig.Count())

	return nil
}

func lutMode(md *modalflag.Modes) error {
	md.NewMode()
	md.AdditionalHelp("Writes a lookup table as a C header. The header is written to stdout\n" +
		"unless an output file is given.")

	gamma := md.AddFloat64("gamma", lut.DefaultGamma, "gamma value")
	ratio := md.AddFloat64("ratio", lut.DefaultRatio, "weight of the newer frame in the blend")
	bits := md.AddInt("bits", 5, "bit depth: 5 or 6")
	linear := md.AddBool("linear", false, "use identity transfer tables")
	table := md.AddString("table", "blend", "table to write: blend, forward, reverse")
	name := md.AddString("name", "", "name of the array (default lut_blend_<bits>b)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	output := md.Output

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		f, err := os.Create(md.GetArg(0))
		if err != nil {
			return err
		}
		defer f.Close()
		output = f
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	var dim int
	switch *bits {
	case 5:
		dim = lut.Dim5
	case 6:
		dim = lut.Dim6
	default:
		return fmt.Errorf("unsupported bit depth (%d)", *bits)
	}

	var c lut.Channel
	if *linear {
		c = lut.Linear(dim, *ratio)
	} else {
		tab := lut.Build(*gamma, *ratio)
		if dim == lut.Dim5 {
			c = tab.C5
		} else {
			c = tab.C6
		}
	}

	switch strings.ToLower(*table) {
	case "blend":
		if *name == "" {
			*name = fmt.Sprintf("lut_blend_%db", *bits)
		}
		return lut.WriteHeader(output, *name, &c, lut.ClampGamma(*gamma), lut.ClampRatio(*ratio), *linear)
	case "forward":
		if *name == "" {
			*name = fmt.Sprintf("linear_to_srgb_%db", *bits)
		}
		return lut.WriteTable1D(output, *name, c.ForwardTable())
	case "reverse":
		if *name == "" {
			*name = fmt.Sprintf("srgb_to_linear_%db", *bits)
		}
		return lut.WriteTable1D(output, *name, c.ReverseTable())
	}

	return fmt.Errorf("unknown table (%s)", *table)
}

func perform(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	ef := addEngineFlags(md)
	card := md.AddString("testcard", "motion", testcardHelp())
	width := md.AddInt("width", defaultWidth, "width of testcard")
	height := md.AddInt("height", defaultHeight, "height of testcard")
	duration := md.AddString("duration", "5s", "run duration (note: there is a 2s overhead)")
	uncapped := md.AddBool("uncapped", true, "run without a frame rate limit")
	profile := md.AddString("profile", "none", "produce profiling reports: CPU, MEM, TRACE, ALL (comma separated)")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	gen, err := testcard.ByName(*card, *width, *height)
	if err != nil {
		return err
	}

	pr, err := ef.preferences()
	if err != nil {
		return err
	}
	eng := noflick.NewEngine(pr.Config())

	if *stats {
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()
		statsview.Launch(ctx, md.Output)
	}

	return performance.Check(md.Output, prf, eng, gen, *uncapped, *duration)
}
