// Command qrlite encodes text into QR Code symbols and prints them to the
// terminal or writes them as PNG images.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"

	"github.com/ericlevine/qrlite"
	"github.com/ericlevine/qrlite/internal/logger"
	"github.com/ericlevine/qrlite/qrcode"
	"github.com/ericlevine/qrlite/qrcode/encoder"
)

const version = "0.1.0"

// CLI defines the command-line interface for qrlite.
type CLI struct {
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error)" default:"${log_level}" enum:"debug,info,warn,error"`

	Encode  EncodeCmd  `cmd:"" help:"Encode text into a QR symbol"`
	Info    InfoCmd    `cmd:"" help:"Show the version, level, mask and mode chosen for text"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// SymbolFlags select how text is encoded.
type SymbolFlags struct {
	Text     string `arg:"" optional:"" help:"Text to encode; read from stdin when omitted"`
	Level    string `short:"l" help:"Error correction level (L, M, Q, H); empty picks the strongest that fits" default:"${level}"`
	Mode     string `short:"m" help:"Force a mode (numeric, alphanumeric, byte)"`
	Symbol   int    `name:"symbol-version" short:"s" help:"Force a symbol version (1-40); 0 picks the smallest that fits" default:"0"`
	Mask     int    `help:"Force a mask pattern (0-7); -1 picks the lowest penalty" default:"-1"`
	Parallel bool   `help:"Score mask patterns concurrently" default:"${parallel}"`
}

func (f *SymbolFlags) options(log *slog.Logger, margin int) *qrlite.EncodeOptions {
	opts := &qrlite.EncodeOptions{
		ErrorCorrection: f.Level,
		Mode:            f.Mode,
		Version:         f.Symbol,
		Margin:          &margin,
		Parallel:        f.Parallel,
		Logger:          log,
	}
	if f.Mask != -1 {
		opts.MaskPattern = &f.Mask
	}
	return opts
}

// app carries the process streams and logger into commands.
type app struct {
	stdin  io.Reader
	stdout io.Writer
	log    *slog.Logger
}

func (a *app) text(arg string) (string, error) {
	if arg != "" {
		return arg, nil
	}
	b, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}

// EncodeCmd prints a symbol to the terminal or writes it as a PNG.
type EncodeCmd struct {
	SymbolFlags `embed:""`

	Margin int    `help:"Quiet zone in modules" default:"${margin}"`
	Scale  int    `help:"Pixels per module for PNG output" default:"${scale}"`
	Output string `short:"o" help:"Write a PNG to this path instead of printing" type:"path"`
	Wide   bool   `help:"Print two characters per module instead of half blocks"`
}

func (c *EncodeCmd) Run(a *app) error {
	start := time.Now()
	text, err := a.text(c.Text)
	if err != nil {
		return err
	}
	if c.Margin < 0 {
		return fmt.Errorf("negative margin %d", c.Margin)
	}
	opts := c.options(a.log, c.Margin)
	bm, err := qrcode.NewWriter().Encode(text, 0, 0, opts)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}

	if c.Output == "" {
		if c.Wide {
			fmt.Fprint(a.stdout, qrcode.TerminalWide(bm))
		} else {
			fmt.Fprint(a.stdout, qrcode.Terminal(bm))
		}
		return nil
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := qrcode.WritePNG(f, bm, c.Scale); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	a.log.Info("png written", slog.String("path", c.Output), slog.Int("pixels", bm.Width()*max(c.Scale, 1)), logger.Elapsed(start))
	return nil
}

// InfoCmd prints the encoding decisions for text without rendering it.
type InfoCmd struct {
	SymbolFlags `embed:""`
}

func (c *InfoCmd) Run(a *app) error {
	text, err := a.text(c.Text)
	if err != nil {
		return err
	}
	code, err := qrcode.Encode(text, c.options(a.log, 0))
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	printInfo(a.stdout, code)
	return nil
}

func printInfo(w io.Writer, code *encoder.QRCode) {
	fmt.Fprintf(w, "version:  %d (%dx%d modules)\n", code.Version.Number, code.Size(), code.Size())
	fmt.Fprintf(w, "level:    %s\n", code.ECLevel)
	fmt.Fprintf(w, "mode:     %s\n", code.Mode)
	fmt.Fprintf(w, "mask:     %d\n", code.MaskPattern)
	fmt.Fprintf(w, "penalty:  %d\n", code.Penalty)
	fmt.Fprintf(w, "capacity: %d data codewords, %d blocks\n",
		code.Version.DataCodewords(code.ECLevel), code.Version.ECBlocksForLevel(code.ECLevel).NumBlocks())
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run(a *app) error {
	fmt.Fprintf(a.stdout, "qrlite version %s\n", version)
	return nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(stderr, "qrlite: %v\n", err)
		return 1
	}

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("qrlite"),
		kong.Description("QR Code encoder"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Writers(stdout, stderr),
		cfg.vars(),
	)
	if err != nil {
		fmt.Fprintf(stderr, "qrlite: %v\n", err)
		return 1
	}
	ctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "qrlite: %v\n", err)
		return 2
	}

	level, err := logger.ParseLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "qrlite: %v\n", err)
		return 2
	}
	a := &app{stdin: stdin, stdout: stdout, log: logger.New(stderr, level)}
	if err := ctx.Run(a); err != nil {
		a.log.Error("command failed", logger.Error(err))
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
