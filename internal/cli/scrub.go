package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dshills/redactobj/internal/config"
	"github.com/dshills/redactobj/internal/document"
	"github.com/dshills/redactobj/internal/output"
	"github.com/dshills/redactobj/internal/secretscan"
	"github.com/dshills/redactobj/redact"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

// addMatchFlags registers the keyword and match option flags shared by
// scrub and match.
func (a *app) addMatchFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.flags.keys, "keys", "", "Keywords to redact, replacing the configured list (comma-separated)")
	cmd.Flags().StringVar(&a.flags.addKeys, "add-keys", "", "Keywords to add to the configured list (comma-separated)")
	cmd.Flags().StringVar(&a.flags.replace, "replace", "", "Replacement value (default \""+redact.DefaultReplacement+"\")")
	cmd.Flags().BoolVar(&a.flags.partial, "partial", true, "Match keywords anywhere inside a key")
	cmd.Flags().BoolVar(&a.flags.strict, "strict", true, "Case-sensitive key matching")
	cmd.Flags().BoolVar(&a.flags.ignoreUnknown, "ignore-unknown", false, "Pass unsupported values through instead of failing")
}

// buildOverrides maps explicitly set flags to config keys. Boolean flags are
// only included when the user set them, so config file and environment
// values are not clobbered by flag defaults.
func (a *app) buildOverrides(fs *pflag.FlagSet) map[string]string {
	m := make(map[string]string)
	if fs.Changed("keys") {
		m["keywords"] = a.flags.keys
	}
	if a.flags.addKeys != "" {
		m["addKeywords"] = a.flags.addKeys
	}
	if fs.Changed("replace") {
		m["replacement"] = a.flags.replace
	}
	if fs.Changed("partial") {
		m["partial"] = strconv.FormatBool(a.flags.partial)
	}
	if fs.Changed("strict") {
		m["strict"] = strconv.FormatBool(a.flags.strict)
	}
	if fs.Changed("ignore-unknown") {
		m["ignoreUnknown"] = strconv.FormatBool(a.flags.ignoreUnknown)
	}
	if fs.Changed("scan-values") {
		m["scanValues"] = strconv.FormatBool(a.flags.scanValues)
	}
	if a.flags.format != "" {
		m["format"] = a.flags.format
	}
	if a.flags.inputFormat != "" {
		m["inputFormat"] = a.flags.inputFormat
	}
	if a.flags.logLevel != "" {
		m["logLevel"] = a.flags.logLevel
	}
	return m
}

func (a *app) scrubCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scrub [file...]",
		Short: "Redact sensitive keys in JSON or YAML documents",
		Long: "Read each file (or stdin when no file or \"-\" is given), replace the values of " +
			"keys matching the configured keywords, and write the result. With several files " +
			"the output is a single document keyed by file path.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.buildOverrides(cmd.Flags()))
			if err != nil {
				return err
			}
			inFormat, err := document.ParseFormat(cfg.InputFormat)
			if err != nil {
				return err
			}
			if _, err := output.GetWriter(cfg.Format); err != nil {
				return err
			}
			logger, err := newLogger(cfg.LogLevel, cmd.ErrOrStderr(), cfg.Redactor())
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			a.runScrub(cmd, args, cfg, inFormat, logger)
			return nil
		},
	}
	a.addMatchFlags(cmd)
	cmd.Flags().StringVar(&a.flags.format, "format", "", "Output format (json, yaml)")
	cmd.Flags().StringVar(&a.flags.inputFormat, "input-format", "", "Input format (auto, json, yaml)")
	cmd.Flags().StringVar(&a.flags.out, "out", "", "Output file path (default: stdout)")
	cmd.Flags().BoolVar(&a.flags.scanValues, "scan-values", false, "Also replace secret-shaped substrings inside string values")
	return cmd
}

func (a *app) runScrub(cmd *cobra.Command, paths []string, cfg config.Config, inFormat document.Format, logger *zap.Logger) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	if len(cfg.Keywords) == 0 {
		logger.Warn("no keywords configured; documents are copied unchanged")
	}

	base := cfg.Redactor()
	var scanner *secretscan.Scanner
	if cfg.ScanValues {
		scanner = secretscan.New(cfg.Placeholder())
	}
	results := make(map[string]any, len(paths))
	for _, path := range paths {
		doc, err := readDocument(cmd.InOrStdin(), path, inFormat)
		if err != nil {
			logger.Error("reading input", zap.String("path", path), zap.Error(err))
			a.exitCode = ExitRuntimeError
			return
		}

		var matched []string
		counting := redact.New(cfg.Keywords, redact.Func(func(v any, key string) string {
			matched = append(matched, key)
			return base.Replace(v, key)
		}), cfg.RedactConfig())

		redacted, err := counting.Redact(doc)
		if err != nil {
			var ute *redact.UnsupportedTypeError
			if errors.As(err, &ute) {
				logger.Error("cannot redact document",
					zap.String("path", path),
					zap.String("at", ute.Path),
					zap.Error(err),
				)
				a.exitCode = ExitUnsupported
				return
			}
			logger.Error("redacting document", zap.String("path", path), zap.Error(err))
			a.exitCode = ExitRuntimeError
			return
		}
		logger.Debug("redacted document",
			zap.String("path", path),
			zap.Int("replaced", len(matched)),
			zap.Strings("keys", matched),
		)
		if scanner != nil {
			var scanned int
			redacted, scanned = scanner.Values(redacted)
			logger.Debug("scanned values", zap.String("path", path), zap.Int("changed", scanned))
		}
		results[path] = redacted
	}

	var doc any = results
	if len(paths) == 1 {
		doc = results[paths[0]]
	}
	if err := output.WriteDocument(doc, cfg.Format, a.flags.out, cmd.OutOrStdout()); err != nil {
		logger.Error("writing output", zap.Error(err))
		a.exitCode = ExitRuntimeError
	}
}

func readDocument(stdin io.Reader, path string, format document.Format) (any, error) {
	if format == document.FormatAuto {
		format = document.DetectFormat(path)
	}
	if path == "-" {
		return document.Decode(stdin, format)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()
	return document.Decode(f, format)
}
