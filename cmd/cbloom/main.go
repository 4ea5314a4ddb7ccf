// Command cbloom drives a counting bloom filter from line commands on
// stdin and streams every operation record to stdout as JSONL.
//
//	insert <item>   check <item>   delete <item>
//	stats           snapshot       reset <m> <k>
//
// Diagnostics go to stderr through log/slog.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"

	"github.com/jpl-au/cbloom"
)

var algorithms = map[string]int{
	"xxh3":    cbloom.AlgXXHash3,
	"fnv1a":   cbloom.AlgFNV1a,
	"blake2b": cbloom.AlgBlake2b,
}

func main() {
	m := flag.Int("m", 20, "number of counter slots")
	k := flag.Int("k", 3, "hash positions per item")
	alg := flag.String("alg", "fnv1a", "base hash: fnv1a, xxh3 or blake2b")
	level := flag.String("log-level", "info", "debug, info, warn or error")
	format := flag.String("log-format", "text", "text or json")
	flag.Parse()

	logger, err := newLogger(os.Stderr, *level, *format)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	a, ok := algorithms[*alg]
	if !ok {
		logger.Error("unknown hash algorithm", "alg", *alg)
		os.Exit(2)
	}

	feed := cbloom.NewFeed(os.Stdout)
	f, err := cbloom.New(*m, *k, cbloom.Config{HashAlgorithm: a, Observer: feed.Observe})
	if err != nil {
		logger.Error("create filter", "m", *m, "k", *k, "error", err)
		os.Exit(2)
	}
	logger.Debug("filter created", "m", *m, "k", *k, "alg", *alg)

	if err := run(os.Stdin, os.Stdout, f, logger); err != nil {
		logger.Error("read commands", "error", err)
		os.Exit(1)
	}
	if err := feed.Err(); err != nil {
		logger.Error("write feed", "error", err)
		os.Exit(1)
	}
}

// newLogger builds a slog.Logger writing to w in the given format.
func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	opts := &slog.HandlerOptions{Level: lv}

	switch format {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("log format %q: want text or json", format)
	}
}

// stats is the JSON shape printed by the stats command.
type stats struct {
	Capacity          int     `json:"m"`
	HashCount         int     `json:"k"`
	Items             int     `json:"items"`
	Filled            int     `json:"filled"`
	FillRate          float64 `json:"fillRate"`
	FalsePositiveRate float64 `json:"fpRate"`
	ApproximateCount  float64 `json:"approxCount"`
}

// run executes commands from in until EOF. Operation records reach out via
// the filter's observer; stats and snapshot are written here. Command
// errors are logged and do not stop the loop.
func run(in io.Reader, out io.Writer, f *cbloom.Filter, logger *slog.Logger) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, arg, _ := strings.Cut(line, " ")

		switch cmd {
		case "insert":
			f.Insert(arg)
		case "check":
			f.Check(arg)
		case "delete":
			if _, err := f.Delete(arg); err != nil {
				logger.Warn("delete rejected", "item", arg, "error", err)
			}
		case "stats":
			if err := writeJSON(out, stats{
				Capacity:          f.Capacity(),
				HashCount:         f.HashCount(),
				Items:             f.Len(),
				Filled:            f.FilledCount(),
				FillRate:          f.FillRate(),
				FalsePositiveRate: f.EstimatedFalsePositiveRate(),
				ApproximateCount:  f.ApproximateCount(),
			}); err != nil {
				return err
			}
		case "snapshot":
			data, err := f.Snapshot().Encode()
			if err != nil {
				return err
			}
			if _, err := out.Write(append(data, '\n')); err != nil {
				return err
			}
		case "reset":
			m, k, err := parseDims(arg)
			if err == nil {
				err = f.Reset(m, k)
			}
			if err != nil {
				logger.Warn("reset rejected", "args", arg, "error", err)
				continue
			}
			logger.Info("filter reset", "m", m, "k", k)
		default:
			logger.Warn("unknown command", "command", cmd)
		}
	}
	return scanner.Err()
}

func parseDims(arg string) (m, k int, err error) {
	fields := strings.Fields(arg)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("want <m> <k>, got %q", arg)
	}
	if m, err = strconv.Atoi(fields[0]); err != nil {
		return 0, 0, err
	}
	if k, err = strconv.Atoi(fields[1]); err != nil {
		return 0, 0, err
	}
	return m, k, nil
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}
