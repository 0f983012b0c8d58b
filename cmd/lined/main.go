// Command lined edits one text file in the terminal.
//
//	lined [-ui tcell|tea|ansi] [-log path] [file]
//
// Ctrl+S saves, Ctrl+X or Ctrl+C save and quit, Ctrl+D quits without
// saving.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"

	"github.com/iw2rmb/lined"
	"github.com/iw2rmb/lined/buffer"
	"github.com/iw2rmb/lined/editor"
	"github.com/iw2rmb/lined/internal/storage"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin, stdout *os.File, stderr io.Writer) int {
	flags := flag.NewFlagSet("lined", flag.ContinueOnError)
	flags.SetOutput(stderr)
	ui := flags.String("ui", "tcell", "frontend: tcell, tea or ansi")
	logPath := flags.String("log", "", "append a debug log to `path`")
	showVersion := flags.Bool("version", false, "print the version and exit")
	flags.Usage = func() {
		fmt.Fprintln(stderr, "usage: lined [flags] [file]")
		flags.PrintDefaults()
	}
	if err := flags.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if *showVersion {
		fmt.Fprintln(stdout, lined.VersionTag())
		return 0
	}
	if flags.NArg() > 1 {
		flags.Usage()
		return 2
	}

	start, ok := frontends[*ui]
	if !ok {
		fmt.Fprintf(stderr, "lined: unknown frontend %q\n", *ui)
		return 2
	}
	if err := checkTerminal(stdin, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	logger, closeLog, err := openLog(*logPath)
	if err != nil {
		fmt.Fprintf(stderr, "lined: %v\n", err)
		return 1
	}
	defer closeLog()

	cfg, err := newConfig(flags.Arg(0), storage.FS{}, logger)
	if err != nil {
		fmt.Fprintf(stderr, "lined: %v\n", err)
		return 1
	}
	if err := start(cfg, stdin, stdout, logger); err != nil {
		logger.Printf("lined: exit: %v", err)
		fmt.Fprintf(stderr, "lined: %v\n", err)
		return 1
	}
	return 0
}

type frontend func(cfg editor.Config, stdin, stdout *os.File, logger *log.Logger) error

var frontends = map[string]frontend{
	"tcell": runTcell,
	"tea":   runTea,
	"ansi":  runANSI,
}

func checkTerminal(stdin, stdout *os.File) error {
	if !term.IsTerminal(int(stdin.Fd())) {
		return errors.New("standard input is not a tty")
	}
	if !term.IsTerminal(int(stdout.Fd())) {
		return errors.New("standard output is not a tty")
	}
	return nil
}

// openLog routes the standard logger to path. An empty path discards.
func openLog(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	log.Println("lined: starting", lined.VersionTag())
	return log.Default(), func() { _ = f.Close() }, nil
}

// newConfig preloads name. A file that does not exist yet starts an empty
// buffer bound to that name; any other load error is fatal.
func newConfig(name string, store editor.Store, logger *log.Logger) (editor.Config, error) {
	cfg := editor.Config{
		File:   name,
		Store:  store,
		Logger: logger,
		Style:  editor.DefaultStyle(),
	}
	if name == "" {
		return cfg, nil
	}

	buf, err := store.Load(name)
	switch {
	case err == nil:
		cfg.Buffer = buf
	case errors.Is(err, storage.ErrNotExist):
		logger.Printf("lined: %s does not exist, starting empty", name)
		cfg.Buffer = buffer.Empty()
	default:
		return editor.Config{}, err
	}
	return cfg, nil
}
