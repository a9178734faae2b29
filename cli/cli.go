package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"dex-chunker/dex"
	"dex-chunker/dex/darchive"
	"dex-chunker/dex/dchunk"
	"dex-chunker/dex/dheader"
	"dex-chunker/ds"
	"dex-chunker/ui"
	"github.com/alexflint/go-arg"
	"github.com/go-stdlog/stdlog"
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type (
	Args struct {
		Config      string          `help:"path to the YAML config file" placeholder:"PATH"`
		Quiet       bool            `help:"only print headers and errors"`
		Header      *HeaderCmd      `arg:"subcommand:header" help:"print the decoded header of DEX files"`
		Split       *SplitCmd       `arg:"subcommand:split" help:"split the data section of DEX files into chunks"`
		Extract     *ExtractCmd     `arg:"subcommand:extract" help:"extract an APK, optionally splitting its DEX files"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"pick DEX files to split from a list"`
	}
	HeaderCmd struct {
		Paths []string `arg:"positional,required" placeholder:"FILE"`
		JSON  bool     `help:"print the headers as JSON"`
	}
	SplitCmd struct {
		Dir       string   `help:"directory searched for DEX files" placeholder:"DIR"`
		Pattern   string   `help:"glob matched inside --dir" placeholder:"GLOB"`
		Output    string   `arg:"env:DEX_CHUNKER_OUTPUT_DIR" help:"directory receiving the chunk files" placeholder:"DIR"`
		ChunkSize int      `arg:"--chunk-size" help:"size of every chunk file in bytes" placeholder:"N"`
		Paths     []string `arg:"positional" placeholder:"FILE"`
	}
	ExtractCmd struct {
		APK       string `arg:"required" help:"path to the APK" placeholder:"app.apk"`
		Output    string `arg:"env:DEX_CHUNKER_OUTPUT_DIR" help:"directory receiving the archive contents" placeholder:"DIR"`
		Split     bool   `help:"split every extracted classes*.dex into --output"`
		ChunkSize int    `arg:"--chunk-size" help:"size of every chunk file in bytes" placeholder:"N"`
	}
	InteractiveCmd struct {
		Dir    string `help:"directory searched for DEX files" placeholder:"DIR"`
		Output string `arg:"env:DEX_CHUNKER_OUTPUT_DIR" help:"directory receiving the chunk files" placeholder:"DIR"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Read the header of DEX files taken from an Android application and",
			"split their data section into fixed-size, zero-padded chunk files.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// App runs the commands against a config file, a report writer and a logger.
type App struct {
	Config Config
	Stdout io.Writer
	Logger stdlog.Logger
}

func (a *App) log() stdlog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return stdlog.Discard
}

func (a *App) splitter(chunkSize int) *dchunk.Splitter {
	return &dchunk.Splitter{
		ChunkSize: firstPositive(chunkSize, a.Config.ChunkSize, dchunk.DefaultChunkSize),
		Logger:    a.log(),
	}
}

func (a *App) dumpHeader(path string, header dheader.Header) {
	if err := dheader.Dump(a.Stdout, filepath.Base(path), header); err != nil {
		a.log().Error(err, "Failed printing header", "path", path)
	}
}

func (a *App) report(results []dex.Result) error {
	failed := dex.Failed(results)
	lo.ForEach(
		failed,
		func(result dex.Result, _ int) {
			a.log().Error(result.Err, "Failed processing DEX file", "path", result.Path)
		},
	)
	if len(failed) > 0 {
		return errors.Errorf("%d of %d files failed", len(failed), len(results))
	}
	return nil
}

func (a *App) RunHeader(cmd HeaderCmd) error {
	jsonHeaders := make([]*orderedmap.OrderedMap, 0, len(cmd.Paths))
	results := lo.Map(
		cmd.Paths,
		func(path string, _ int) dex.Result {
			header, err := dex.DecodeFile(path)
			if err != nil {
				return dex.Result{Path: path, Err: err}
			}
			if cmd.JSON {
				entry := orderedmap.New()
				entry.Set("path", path)
				entry.Set("header", dheader.ToLinkedHashMap(*header))
				jsonHeaders = append(jsonHeaders, entry)
			} else {
				a.dumpHeader(path, *header)
			}
			return dex.Result{Path: path, Header: header}
		},
	)
	if cmd.JSON {
		if _, err := fmt.Fprintln(a.Stdout, ds.DumpJSON(jsonHeaders)); err != nil {
			return errors.Wrap(err, "RunHeader error writing JSON")
		}
	}
	return a.report(results)
}

func (a *App) RunSplit(cmd SplitCmd) error {
	paths := cmd.Paths
	dir := firstNonEmpty(cmd.Dir, a.Config.InputDir, ".")
	if len(paths) == 0 {
		pattern := firstNonEmpty(cmd.Pattern, a.Config.Pattern, dex.DefaultPattern)
		discovered, err := dex.Discover(dir, pattern)
		if err != nil {
			return err
		}
		if len(discovered) == 0 {
			_, err := fmt.Fprintln(a.Stdout, "No classes.dex files found in", dir)
			return err
		}
		paths = discovered
	}

	outputDir := firstNonEmpty(cmd.Output, a.Config.OutputDir, dir)
	results := dex.ProcessAll(paths, outputDir, a.splitter(cmd.ChunkSize), a.dumpHeader)
	return a.report(results)
}

func (a *App) RunExtract(cmd ExtractCmd) error {
	outputDir := firstNonEmpty(cmd.Output, a.Config.OutputDir)
	if outputDir == "" {
		return errors.New("RunExtract error: an output directory is required (--output or output_dir)")
	}
	if _, err := darchive.Extract(cmd.APK, outputDir, a.log()); err != nil {
		return err
	}
	if !cmd.Split {
		return nil
	}
	return a.RunSplit(SplitCmd{Dir: outputDir, Output: outputDir, ChunkSize: cmd.ChunkSize})
}

func (a *App) RunInteractive(cmd InteractiveCmd) error {
	dir := firstNonEmpty(cmd.Dir, a.Config.InputDir, ".")
	paths, err := dex.Discover(dir, firstNonEmpty(a.Config.Pattern, dex.DefaultPattern))
	if err != nil {
		return err
	}
	// the terminal belongs to the selector, so chunk progress is not logged
	splitter := &dchunk.Splitter{ChunkSize: firstPositive(a.Config.ChunkSize, dchunk.DefaultChunkSize)}
	return ui.Start(paths, firstNonEmpty(cmd.Output, a.Config.OutputDir, dir), splitter)
}

func Start() {
	args := Args{}
	parser := arg.MustParse(&args)
	if parser.Subcommand() == nil {
		parser.WriteHelp(os.Stdout)
		os.Exit(1)
	}

	configPath := args.Config
	if configPath == "" {
		configPath = DefaultConfigPath()
	}
	cfg, err := LoadConfig(configPath, args.Config != "")
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	var logger stdlog.Logger = stdlog.NewStd(os.Stderr)
	if args.Quiet || cfg.Quiet {
		logger = stdlog.Discard
	}
	app := App{
		Config: cfg,
		Stdout: os.Stdout,
		Logger: logger,
	}

	switch {
	case args.Header != nil:
		err = app.RunHeader(*args.Header)
	case args.Split != nil:
		err = app.RunSplit(*args.Split)
	case args.Extract != nil:
		err = app.RunExtract(*args.Extract)
	case args.Interactive != nil:
		err = app.RunInteractive(*args.Interactive)
	default:
		err = ds.ErrUnreachableCode{Caller: "cli.Start"}
	}
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}
}
