package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/zeebo/sha256bits"
)

const (
	exitOK       = 0
	exitMismatch = 1
	exitUsage    = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.Getenv))
}

type options struct {
	configPath string
	encoding   string
	verbose    bool
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&o.configPath, "config", "c", "", "YAML config file (default $"+envConfig+")")
	fs.StringVarP(&o.encoding, "encoding", "e", "", "input encoding: ascii or hex")
	fs.BoolVarP(&o.verbose, "verbose", "v", false, "log debug output to stderr")
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	if len(args) > 0 && args[0] == "verify" {
		return runVerify(args[1:], stdout, stderr, getenv)
	}
	return runHash(args, stdin, stdout, stderr, getenv)
}

func runHash(args []string, stdin io.Reader, stdout, stderr io.Writer, getenv func(string) string) int {
	var opts options

	fs := pflag.NewFlagSet("sha256bits", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.addFlags(fs)

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	logger := newLogger(stderr, opts.verbose)

	cfg, err := load(&opts, getenv)
	if err != nil {
		logger.Error("loading configuration", "error", err)
		return exitUsage
	}
	enc := sha256bits.Encoding(cfg.Encoding)

	inputs := fs.Args()
	if len(inputs) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			logger.Error("reading stdin", "error", err)
			return exitUsage
		}
		input := string(data)
		if enc == sha256bits.Hex {
			input = strings.TrimSpace(input)
		}
		inputs = []string{input}
	}

	for i, input := range inputs {
		digest, err := sha256bits.Hash(input, enc)
		if err != nil {
			logger.Error("hashing input", "index", i, "encoding", enc, "error", err)
			return exitUsage
		}
		logger.Debug("hashed input", "index", i, "encoding", enc, "length", len(input))
		fmt.Fprintln(stdout, digest)
	}

	return exitOK
}

func runVerify(args []string, stdout, stderr io.Writer, getenv func(string) string) int {
	var opts options
	var id, payload string

	fs := pflag.NewFlagSet("sha256bits verify", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	opts.addFlags(fs)
	fs.StringVar(&id, "id", "", "identifier hashed before the secret")
	fs.StringVar(&payload, "payload", "", "payload hashed after the secret")

	if err := fs.Parse(args); err != nil {
		if err == pflag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	logger := newLogger(stderr, opts.verbose)

	if fs.NArg() != 1 {
		logger.Error("verify takes exactly one token", "args", fs.NArg())
		return exitUsage
	}
	token := fs.Arg(0)

	cfg, err := load(&opts, getenv)
	if err != nil {
		logger.Error("loading configuration", "error", err)
		return exitUsage
	}

	v, err := sha256bits.NewVerifier(cfg.Secret)
	if err != nil {
		logger.Error("creating verifier", "error", errors.Wrapf(err, "set $%s or secret in the config file", envSecret))
		return exitUsage
	}

	if !v.Verify(id, payload, token) {
		logger.Debug("token mismatch", "id", id)
		fmt.Fprintln(stdout, "mismatch")
		return exitMismatch
	}

	logger.Debug("token verified", "id", id)
	fmt.Fprintln(stdout, "ok")
	return exitOK
}
