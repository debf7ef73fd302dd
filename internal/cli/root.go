// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/katalvlaran/homalg/homology"
	"github.com/katalvlaran/homalg/internal/config"
)

// Version is set by the linker; "go install" builds fall back to the module version.
var Version string

const (
	flagConfig       = "config"
	flagVerbose      = "verbose"
	flagCoefficients = "coefficients"
	flagStorage      = "storage"
	flagParallelism  = "parallelism"
	flagStyle        = "style"
)

// Execute runs the command tree against os.Args and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd builds a fresh command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "homalg",
		Short:         "Exact homology and persistent homology of simplicial complexes.",
		Version:       version(),
		SilenceUsage:  true,
	}

	pf := root.PersistentFlags()
	pf.String(flagConfig, "", "TOML configuration file")
	pf.BoolP(flagVerbose, "v", false, "log elimination progress to stderr")
	pf.StringP(flagCoefficients, "c", "", "coefficient ring: Z, Q, Z2, Z3, Z5, Z7 or Fr")
	pf.String(flagStorage, "", "boundary matrix storage: sparse or dense")
	pf.IntP(flagParallelism, "j", 0, "degrees computed concurrently (0 = GOMAXPROCS)")
	pf.String(flagStyle, "", "rendering: auto, unicode or ascii")

	root.AddCommand(newHomologyCmd(), newPersistenceCmd(), newSampleCmd())

	return root
}

func version() string {
	if Version != "" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.Main.Version
	}

	return "(unknown version)"
}

// session is the resolved configuration of one command invocation.
type session struct {
	cfg    config.Config
	style  homology.Style
	logger *log.Logger
	out    io.Writer
}

// newSession loads --config and applies every explicitly set global flag over it.
func newSession(cmd *cobra.Command) (*session, error) {
	flags := cmd.Flags()
	path, _ := flags.GetString(flagConfig)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if flags.Changed(flagVerbose) {
		cfg.Verbose, _ = flags.GetBool(flagVerbose)
	}
	if flags.Changed(flagCoefficients) {
		cfg.Coefficients, _ = flags.GetString(flagCoefficients)
	}
	if flags.Changed(flagStorage) {
		cfg.Storage, _ = flags.GetString(flagStorage)
	}
	if flags.Changed(flagParallelism) {
		cfg.Parallelism, _ = flags.GetInt(flagParallelism)
	}
	if flags.Changed(flagStyle) {
		cfg.Style, _ = flags.GetString(flagStyle)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(log.WarnLevel)
	if cfg.Verbose {
		logger.SetLevel(log.DebugLevel)
	}

	s := &session{cfg: cfg, logger: logger, out: cmd.OutOrStdout()}
	s.style = resolveStyle(cfg.Style, s.out)
	logger.WithFields(log.Fields{
		"coefficients": cfg.Coefficients,
		"storage":      cfg.Storage,
		"parallelism":  cfg.Parallelism,
	}).Debug("homalg: configuration resolved")

	return s, nil
}

// resolveStyle picks Unicode for terminals under StyleAuto.
func resolveStyle(name string, out io.Writer) homology.Style {
	switch name {
	case config.StyleUnicode:
		return homology.Unicode
	case config.StyleASCII:
		return homology.ASCII
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return homology.Unicode
	}

	return homology.ASCII
}

func (s *session) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}
