// Command curbproject replays recorded edits against a blockface and writes
// the resulting partition, or its segments projected onto the blockface's
// geometry as GeoJSON.
//
// Usage:
//
//	curbproject -length 120 -blockface main-st-north-100 -edits edits.json
//	curbproject -partition saved.json -edits more.json -path blockface.geojson -o out.geojson
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"honnef.co/go/curb"
	"honnef.co/go/curb/internal/config"
	"honnef.co/go/curb/internal/log"
	"honnef.co/go/curb/internal/session"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "curbproject:", err)
		}
		os.Exit(2)
	}
}

type options struct {
	config    string
	length    float64
	blockface string
	partition string
	edits     string
	path      string
	output    string
	debug     bool
}

func parseFlags(args []string) (options, error) {
	var o options
	fs := flag.NewFlagSet("curbproject", flag.ContinueOnError)
	fs.StringVar(&o.config, "config", "", "YAML configuration file")
	fs.Float64Var(&o.length, "length", 0, "blockface length, for a new partition")
	fs.StringVar(&o.blockface, "blockface", "", "blockface id, for a new partition")
	fs.StringVar(&o.partition, "partition", "", "JSON file of a saved partition to continue from")
	fs.StringVar(&o.edits, "edits", "", "JSON file holding an array of edits")
	fs.StringVar(&o.path, "path", "", "GeoJSON file with the blockface geometry; if set, write projected segments")
	fs.StringVar(&o.output, "o", "", "output path (default stdout)")
	fs.BoolVar(&o.debug, "debug", false, "log at debug level")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() > 0 {
		return o, fmt.Errorf("unexpected arguments %q", fs.Args())
	}
	if (o.partition == "") == (o.length == 0) {
		return o, errors.New("exactly one of -partition and -length is required")
	}
	return o, nil
}

func run(args []string, stdout io.Writer) error {
	o, err := parseFlags(args)
	if err != nil {
		return err
	}
	if err := log.Init(o.debug); err != nil {
		return err
	}
	defer log.Sync()
	logger := log.GetSugaredLogger()

	cfg := &config.Config{}
	if o.config != "" {
		if cfg, err = config.Load(o.config); err != nil {
			return err
		}
	}

	var s *session.Session
	if o.partition != "" {
		var p curb.Partition
		if err := readJSON(o.partition, &p); err != nil {
			return err
		}
		s, err = session.Resume(cfg.Reducer(), p, logger)
	} else {
		s, err = session.New(cfg.Reducer(), o.length, o.blockface, logger)
	}
	if err != nil {
		return err
	}

	if o.edits != "" {
		var edits []curb.Edit
		if err := readJSON(o.edits, &edits); err != nil {
			return err
		}
		rejected := s.Replay(edits)
		for _, r := range rejected {
			logger.Infow("skipped edit", "seq", r.Seq, "edit", r.Edit.String(), "error", r.Err)
		}
		logger.Infow("replayed edits",
			"blockface", s.Partition().BlockfaceID,
			"accepted", len(edits)-len(rejected),
			"rejected", len(rejected))
	}

	var out any = s.Partition()
	if o.path != "" {
		data, err := os.ReadFile(o.path)
		if err != nil {
			return err
		}
		path, err := curb.ParsePath(data)
		if err != nil {
			return fmt.Errorf("%s: %w", o.path, err)
		}
		out = curb.FeatureCollection(s.Project(cfg.Projector(logger), path))
	}

	w := stdout
	if o.output != "" {
		f, err := os.Create(o.output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	if f, ok := w.(*os.File); ok && o.output != "" {
		return f.Close()
	}
	return nil
}

func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
