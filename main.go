package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/jcorbin/avm/internal/fileinput"
	"github.com/jcorbin/avm/internal/logio"
	"github.com/jcorbin/avm/internal/scanner"
	"github.com/jcorbin/avm/internal/token"
)

func main() {
	log := logio.NewLogger(os.Stderr)
	run(log)
	os.Exit(log.ExitCode())
}

func run(log *logio.Logger) {
	var (
		trace      bool
		configFile string
		forceRepl  bool
		dumpTokens bool
	)
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.StringVar(&configFile, "config", "", "read settings from a YAML file")
	flag.BoolVar(&forceRepl, "i", false, "run interactively after any files")
	flag.BoolVar(&dumpTokens, "dump-tokens", false, "print the token stream of each file instead of running it")
	flag.Parse()

	config, err := loadConfig(configFile)
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	if trace {
		config.Trace = true
	}

	var opts = []VMOption{
		WithOutput(os.Stdout),
	}
	if config.Trace {
		tl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.TraceLevel).
			With().Timestamp().Logger()
		opts = append(opts,
			WithLogf(func(mess string, args ...interface{}) {
				tl.Trace().Msgf(mess, args...)
			}),
			WithTee(&logio.Writer{Logf: func(mess string, args ...interface{}) {
				tl.Trace().Str("stream", "output").Msgf(mess, args...)
			}}),
		)
	}

	names := flag.Args()

	if dumpTokens {
		for _, name := range names {
			src, err := os.ReadFile(name)
			if err != nil {
				log.Errorf("%v", err)
				continue
			}
			printTokens(os.Stdout, log, name, src)
		}
		return
	}

	if len(names) > 0 && !forceRepl {
		for _, name := range names {
			vm := New(opts...)
			runFile(vm, log, name)
			if config.DumpOnExit {
				vm.Dump(os.Stderr)
			}
		}
		return
	}

	vm := New(opts...)
	for _, name := range names {
		runFile(vm, log, name)
	}
	rl := repl{
		vm:     vm,
		log:    log,
		prompt: os.Stdout,
		config: config,
	}
	rl.in.Queue = append(rl.in.Queue, fileinput.NamedReader("<stdin>", os.Stdin))
	log.ErrorIf(rl.run())
	log.ErrorIf(vm.Close())
	if config.DumpOnExit {
		vm.Dump(os.Stderr)
	}
}

func runFile(vm *VM, log *logio.Logger, name string) {
	src, err := os.ReadFile(name)
	if err != nil {
		log.Errorf("%v", err)
		return
	}
	reportError(log, vm.Run(name, src))
}

func printTokens(w io.Writer, log *logio.Logger, name string, src []byte) {
	var errs token.ErrorList
	for _, tok := range scanner.Scan(src, &errs) {
		fmt.Fprintln(w, tok)
	}
	if errs.HadError() {
		reportError(log, SourceError{Name: name, Errors: errs})
	}
}
