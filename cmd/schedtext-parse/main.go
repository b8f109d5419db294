// schedtext-parse turns an English schedule description into its recurrence
// constraints and prints them.
//
//	schedtext-parse [--now RFC3339] [--format json|yaml] [--cron] <text...>
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"schedtext/internal/core/domain/recurrence"
	"schedtext/internal/core/domain/schedule"
	"schedtext/internal/implementations/calendar"
	cronexport "schedtext/internal/implementations/cron_export"
	textparser "schedtext/internal/implementations/text_parser"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, time.Now))
}

type output struct {
	recurrence.Result `yaml:",inline"`
	Cron              string `json:"cron,omitempty" yaml:"cron,omitempty"`
}

func run(args []string, stdout, stderr io.Writer, clock func() time.Time) int {
	flagSet := pflag.NewFlagSet("schedtext-parse", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	rawNow := flagSet.String("now", "", "reference time for relative expressions (RFC 3339)")
	format := flagSet.StringP("format", "f", "json", "output format: json or yaml")
	withCron := flagSet.Bool("cron", false, "also print the equivalent cron spec when there is one")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	text := strings.Join(flagSet.Args(), " ")
	if text == "" {
		fmt.Fprintln(stderr, "usage: schedtext-parse [--now RFC3339] [--format json|yaml] [--cron] <text...>")
		return 2
	}

	now := clock()
	if *rawNow != "" {
		parsed, err := time.Parse(time.RFC3339, *rawNow)
		if err != nil {
			fmt.Fprintf(stderr, "invalid --now value: %v\n", err)
			return 2
		}
		now = parsed
	}

	parser := textparser.New(calendar.New())
	result, parseErr := parser.Parse(context.Background(), text, now)

	out := output{Result: result}
	if parseErr == nil && *withCron {
		spec, err := cronexport.New().Export(result)
		switch {
		case err == nil:
			out.Cron = spec
		case errors.Is(err, schedule.ErrNotExpressibleAsCron):
			fmt.Fprintln(stderr, "schedule is not expressible as a cron spec")
		default:
			fmt.Fprintln(stderr, err)
		}
	}

	if err := render(stdout, out, *format); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	if parseErr != nil {
		fmt.Fprintln(stderr, parseErr)
		fmt.Fprintln(stderr, text)
		fmt.Fprintln(stderr, strings.Repeat(" ", result.Error)+"^")
		return 1
	}
	return 0
}

func render(w io.Writer, out output, format string) error {
	switch format {
	case "json":
		content, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(content))
		return err
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(out); err != nil {
			return err
		}
		return encoder.Close()
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
