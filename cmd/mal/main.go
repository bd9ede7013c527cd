package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bshepherdson/mal/config"
	"github.com/bshepherdson/mal/core"
	"github.com/bshepherdson/mal/eval"
	"github.com/bshepherdson/mal/printer"
	"github.com/bshepherdson/mal/reader"
	"github.com/bshepherdson/mal/readline"
	"github.com/bshepherdson/mal/types"
)

var (
	evalExpr   = flag.String("e", "", "Evaluate expression and print the result")
	configPath = flag.String("config", "~/.malrc.yml", "REPL config file")
	verbose    = flag.Bool("v", false, "Verbose output")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("mal: ")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] [file.mal]\n\nOptions:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(readline.ExpandHome(*configPath))
	if err != nil {
		log.Fatal(err)
	}

	env, err := core.Global(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range cfg.Prelude {
		if err := loadFile(readline.ExpandHome(path), env); err != nil {
			log.Fatal(err)
		}
	}

	switch {
	case *evalExpr != "":
		os.Exit(runSource(*evalExpr, env))
	case flag.NArg() > 0:
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil {
			log.Fatalf("reading %s: %v", flag.Arg(0), err)
		}
		os.Exit(runSource(string(data), env))
	default:
		repl(cfg, env)
	}
}

func loadFile(path string, env *types.Env) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	if _, err := core.Rep(string(data), env); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	if *verbose {
		log.Printf("loaded %s", path)
	}
	return nil
}

// runSource evaluates every form in src and prints the last result.
func runSource(src string, env *types.Env) int {
	result, err := core.Rep(src, env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", describe(err))
		return 1
	}
	fmt.Println(printer.PrintStr(result))
	return 0
}

func rep(input string, env *types.Env) (string, error) {
	form, err := reader.ReadStr(input)
	if err != nil {
		return "", err
	}

	evald, err := eval.Eval(form, env)
	if err != nil {
		return "", err
	}

	return printer.PrintStr(evald), nil
}

func describe(err error) string {
	if k := types.KindOf(err); k != 0 {
		return fmt.Sprintf("%s: %v", k, err)
	}
	return err.Error()
}

func repl(cfg *config.Config, env *types.Env) {
	if cfg.Banner != "" {
		fmt.Println(cfg.Banner)
	}

	rl := readline.New(cfg.HistoryFile)
	defer func() {
		if err := rl.Close(); err != nil {
			log.Printf("saving history: %v", err)
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		_ = rl.Close()
		os.Exit(130)
	}()

	if *verbose {
		log.Printf("history file: %q", cfg.HistoryFile)
	}

	for {
		line, err := rl.Readline(cfg.Prompt)
		if errors.Is(err, readline.ErrAborted) {
			continue
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Printf("reading input: %v", err)
			}
			fmt.Println()
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		s, err := rep(line, env)
		if err != nil {
			fmt.Println(describe(err))
		} else {
			fmt.Println(s)
		}
	}
}
