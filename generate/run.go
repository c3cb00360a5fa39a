// Package generate implements program commands producing names.
package generate

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"sylgen/config"
	"sylgen/state"
)

// Run is an action for "generate" command.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("generate")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}
	dst := cmd.Args().Get(0)

	if err := applyFlags(cmd, env.Cfg, log); err != nil {
		return err
	}

	gen, err := env.Generator()
	if err != nil {
		return err
	}
	if env.Rpt != nil {
		env.Rpt.StoreData("generator.txt", []byte(gen.String()))
	}

	n, err := newNamer(gen, env.Cfg.Names, env.Cfg.Generator.Seed)
	if err != nil {
		return err
	}

	start := time.Now()
	names, err := n.names(ctx)
	if err != nil {
		if !errors.Is(err, ErrNotEnoughUnique) {
			return fmt.Errorf("unable to generate names: %w", err)
		}
		log.Warn("Output will be shorter than requested", zap.Error(err))
	}

	name, err := writeTo(dst, func(w io.Writer) error {
		return writeNames(w, names, env.Cfg.Names.Format)
	})
	if err != nil {
		return err
	}
	log.Info("Names generated",
		zap.Int("count", len(names)),
		zap.Stringer("format", env.Cfg.Names.Format),
		zap.String("file", name),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// Describe is an action for "describe" command.
func Describe(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("describe")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	gen, err := env.Generator()
	if err != nil {
		return err
	}

	name, err := writeTo(cmd.Args().Get(0), func(w io.Writer) error {
		_, err := io.WriteString(w, gen.String())
		return err
	})
	if err != nil {
		return err
	}
	log.Debug("Generator described", zap.String("file", name))
	return nil
}

// applyFlags overwrites configured name options with values from command line.
func applyFlags(cmd *cli.Command, cfg *config.Config, log *zap.Logger) error {
	names := &cfg.Names

	if cmd.IsSet("count") {
		names.Count = cmd.Int("count")
	}
	if cmd.IsSet("min") {
		names.MinSyllables = cmd.Int("min")
	}
	if cmd.IsSet("max") {
		names.MaxSyllables = cmd.Int("max")
	}
	if cmd.IsSet("syllables") {
		names.MinSyllables = cmd.Int("syllables")
		names.MaxSyllables = names.MinSyllables
	}
	if cmd.IsSet("case") {
		lc, err := config.ParseLetterCase(cmd.String("case"))
		if err != nil {
			log.Warn("Unknown letter case requested, keeping configured", zap.Stringer("case", names.Case), zap.Error(err))
		} else {
			names.Case = lc
		}
	}
	if cmd.IsSet("format") {
		f, err := config.ParseOutputFmt(cmd.String("format"))
		if err != nil {
			log.Warn("Unknown output format requested, keeping configured", zap.Stringer("format", names.Format), zap.Error(err))
		} else {
			names.Format = f
		}
	}
	if cmd.IsSet("template") {
		names.Template = cmd.String("template")
	}
	if cmd.IsSet("unique") {
		names.Unique = cmd.Bool("unique")
	}
	if cmd.IsSet("sort") {
		names.Sort = cmd.Bool("sort")
	}
	if cmd.IsSet("transliterate") {
		names.Transliterate = cmd.Bool("transliterate")
	}
	if cmd.IsSet("seed") {
		cfg.Generator.Seed = cmd.Uint64("seed")
	}
	return checkNames(names)
}

// checkNames repeats configuration validation for values which could come
// from command line.
func checkNames(names *config.NamesConfig) error {
	switch {
	case names.Count < 1:
		return fmt.Errorf("number of names must be positive, got %d", names.Count)
	case names.MinSyllables < 1:
		return fmt.Errorf("minimum number of syllables must be positive, got %d", names.MinSyllables)
	case names.MaxSyllables < names.MinSyllables:
		return fmt.Errorf("maximum number of syllables (%d) is less than minimum (%d)", names.MaxSyllables, names.MinSyllables)
	case len(names.Template) == 0:
		return errors.New("name template could not be empty")
	}
	return nil
}

func writeNames(w io.Writer, names []string, format config.OutputFmt) error {
	if format == config.OutputFmtYaml {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(names); err != nil {
			return fmt.Errorf("unable to encode names: %w", err)
		}
		return enc.Close()
	}

	bw := bufio.NewWriter(w)
	for _, name := range names {
		bw.WriteString(name)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// writeTo calls write with destination file or STDOUT when fname is empty,
// returns name of destination for logging.
func writeTo(fname string, write func(io.Writer) error) (name string, err error) {
	if len(fname) == 0 {
		if err := write(os.Stdout); err != nil {
			return "STDOUT", fmt.Errorf("unable to write to STDOUT: %w", err)
		}
		return "STDOUT", nil
	}

	f, err := os.Create(fname)
	if err != nil {
		return fname, fmt.Errorf("unable to create destination file '%s': %w", fname, err)
	}
	defer func() {
		if er := f.Close(); er != nil {
			err = multierr.Append(err, fmt.Errorf("unable to close '%s': %w", fname, er))
		}
	}()

	if err := write(f); err != nil {
		return fname, fmt.Errorf("unable to write to '%s': %w", fname, err)
	}
	return fname, nil
}

// DumpConfig is an action for "dumpconfig" command.
func DumpConfig(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)
	log := env.Log.Named("config")

	if cmd.Args().Len() > 1 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[1:]))
	}

	var (
		data []byte
		err  error
		kind = "actual"
	)
	if cmd.Bool("default") {
		kind = "default"
		data, err = config.Prepare()
	} else {
		data, err = config.Dump(env.Cfg)
	}
	if err != nil {
		return fmt.Errorf("unable to get configuration: %w", err)
	}

	name, err := writeTo(cmd.Args().Get(0), func(w io.Writer) error {
		_, err := w.Write(data)
		return err
	})
	if err != nil {
		return err
	}
	log.Info("Configuration written", zap.String("state", kind), zap.String("file", name))
	return nil
}
