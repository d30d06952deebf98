package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/goodsign/monday"
	"github.com/spf13/cobra"
	"github.com/viant/coercion"
	"github.com/viant/coercion/lazy/raw"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type flags struct {
	tag      string
	policy   string
	input    string
	location string
	locale   string
	dump     bool
	verbose  bool
}

func newRootCmd(out io.Writer) *cobra.Command {
	f := &flags{}
	var logger *zap.Logger
	var undo func()
	cmd := &cobra.Command{
		Use:   "coerce [values...]",
		Short: "Coerce raw values into a type tag",
		Long: `Coerces each value into the requested type tag and prints the result.

Arguments are taken as raw text tokens, --input reads a YAML document
(a sequence is coerced element by element).

Example:
  coerce --tag INT abc123
  coerce --tag DATE --policy fail 01/15/2024
  coerce --tag MAP --input order.yaml --dump`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if f.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			var err error
			if logger, err = config.Build(); err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			undo = zap.ReplaceGlobals(logger)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if undo != nil {
				undo()
			}
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(out, f, logger, args)
		},
	}
	cmd.Flags().StringVarP(&f.tag, "tag", "t", "STRING", "target type tag, i.e. INT, DATE, BIG_DECIMAL, MAP")
	cmd.Flags().StringVarP(&f.policy, "policy", "p", "default", "coercion policy: default, fail or classic")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "YAML file with values")
	cmd.Flags().StringVar(&f.location, "location", "", "IANA location of zone-less dates, local by default")
	cmd.Flags().StringVar(&f.locale, "locale", "", "locale of the fallback date parser, i.e. en_GB")
	cmd.Flags().BoolVarP(&f.dump, "dump", "d", false, "dump results with their types")
	cmd.Flags().BoolVarP(&f.verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func run(out io.Writer, f *flags, logger *zap.Logger, args []string) error {
	tag, err := coercion.ParseTag(f.tag)
	if err != nil {
		return err
	}
	policy, err := coercion.ParsePolicy(f.policy)
	if err != nil {
		return err
	}
	options := []coercion.Option{coercion.WithLogger(logger)}
	if f.location != "" {
		location, err := time.LoadLocation(f.location)
		if err != nil {
			return fmt.Errorf("invalid location %v: %w", f.location, err)
		}
		options = append(options, coercion.WithLocation(location))
	}
	if f.locale != "" {
		options = append(options, coercion.WithLocale(monday.Locale(f.locale)))
	}
	coercer := coercion.New(options...)

	values, err := loadValues(f.input, args)
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no values to coerce")
	}
	rType := coercion.CanonicalType(tag)
	for _, value := range values {
		result, err := coercer.Apply(policy, tag, rType, value)
		if err != nil {
			return err
		}
		logger.Debug("coerced", zap.Stringer("tag", tag), zap.Stringer("policy", policy), zap.Any("value", value))
		if f.dump {
			spew.Fdump(out, result)
			continue
		}
		fmt.Fprintf(out, "%v\n", result)
	}
	return nil
}

func loadValues(input string, args []string) ([]interface{}, error) {
	var values []interface{}
	if input != "" {
		data, err := os.ReadFile(input)
		if err != nil {
			return nil, err
		}
		var document interface{}
		if err = yaml.Unmarshal(data, &document); err != nil {
			return nil, fmt.Errorf("failed to decode %v: %w", input, err)
		}
		if items, ok := document.([]interface{}); ok {
			values = append(values, items...)
		} else if document != nil {
			values = append(values, document)
		}
	}
	for _, arg := range args {
		values = append(values, raw.Text(arg))
	}
	return values, nil
}
