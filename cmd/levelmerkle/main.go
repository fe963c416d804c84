// Copyright 2026 Google LLC. All Rights Reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// The levelmerkle binary appends u64 keys to an in-memory Merkle tree and
// prints the resulting root hash.
//
// Keys are taken from the command line, or from stdin one per line if no
// arguments are given:
//
//	levelmerkle 0 1 2 3 4
//	seq 0 99 | levelmerkle --print_each --hash_strategy=RFC6962_SHA256
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/levelmerkle"
	"github.com/google/levelmerkle/cmd"
	"github.com/google/levelmerkle/merkle"
	"github.com/google/levelmerkle/merkle/hashers"
	"github.com/google/levelmerkle/monitoring/prometheus"
	"github.com/google/levelmerkle/util/signals"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	// Register supported hash strategies.
	_ "github.com/google/levelmerkle/merkle/plain"
	_ "github.com/google/levelmerkle/merkle/rfc6962"
)

var (
	hashStrategy    = flag.String("hash_strategy", levelmerkle.PlainSHA256.String(), "Hash strategy for leaves and nodes. One of: PLAIN_SHA256, RFC6962_SHA256")
	incremental     = flag.Bool("incremental", false, "If true, update only the right edge of each level on append instead of rebuilding")
	base64Output    = flag.Bool("base64", false, "If true, print hashes in base64 rather than hex")
	printEach       = flag.Bool("print_each", false, "If true, print the root after every appended key")
	metricsEndpoint = flag.String("metrics_endpoint", "", "Endpoint for serving /metrics (host:port, empty means disabled). The binary keeps serving until interrupted")

	configFile = flag.String("config", "", "Config file containing flags, file contents can be overridden by command line flags")
)

const shutdownTimeout = 5 * time.Second

// options holds everything run needs, decoupled from the global flags.
type options struct {
	strategy        levelmerkle.HashStrategy
	incremental     bool
	base64          bool
	printEach       bool
	metricsEndpoint string

	// registerer and gatherer back the metrics endpoint. The Prometheus
	// defaults are used when nil.
	registerer prom.Registerer
	gatherer   prom.Gatherer
}

func optionsFromFlags() (options, error) {
	strategy, err := levelmerkle.ParseHashStrategy(*hashStrategy)
	if err != nil {
		return options{}, fmt.Errorf("--hash_strategy: %w", err)
	}
	return options{
		strategy:        strategy,
		incremental:     *incremental,
		base64:          *base64Output,
		printEach:       *printEach,
		metricsEndpoint: *metricsEndpoint,
	}, nil
}

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	if *configFile != "" {
		if err := cmd.ParseFlagFile(*configFile); err != nil {
			klog.Exitf("Failed to load flags from config file %q: %s", *configFile, err)
		}
	}

	opts, err := optionsFromFlags()
	if err != nil {
		klog.Exitf("Invalid flags: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go signals.AwaitSignal(ctx, cancel)

	if err := run(ctx, opts, flag.Args(), os.Stdin, os.Stdout); err != nil {
		klog.Exitf("levelmerkle: %v", err)
	}
}

// run builds a tree from the keys in args, or in in when args is empty, and
// writes roots to out. With a metrics endpoint configured it keeps serving
// metrics after the keys are consumed until ctx is done.
func run(ctx context.Context, opts options, args []string, in io.Reader, out io.Writer) error {
	hasher, err := hashers.NewLogHasher(opts.strategy)
	if err != nil {
		return err
	}
	treeOpts := []merkle.Option{merkle.WithHasher(hasher)}
	if opts.incremental {
		treeOpts = append(treeOpts, merkle.WithIncrementalUpdates())
	}

	if opts.metricsEndpoint == "" {
		return appendKeys(ctx, merkle.New(treeOpts...), opts, args, in, out)
	}

	registerer, gatherer := opts.registerer, opts.gatherer
	if registerer == nil {
		registerer = prom.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prom.DefaultGatherer
	}
	mf := prometheus.MetricFactory{Prefix: "levelmerkle_", Registerer: registerer}
	tree := merkle.New(append(treeOpts, merkle.WithMetricFactory(mf))...)

	lis, err := net.Listen("tcp", opts.metricsEndpoint)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", opts.metricsEndpoint, err)
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Handler: mux}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		klog.Infof("Serving metrics on %v", lis.Addr())
		if err := srv.Serve(lis); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("metrics server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		if err := appendKeys(gctx, tree, opts, args, in, out); err != nil {
			return err
		}
		klog.Infof("Appended %d keys, serving metrics until interrupted", tree.Size())
		return nil
	})
	return g.Wait()
}

// appendKeys feeds every key to tree and prints the root(s).
func appendKeys(ctx context.Context, tree *merkle.Tree, opts options, args []string, in io.Reader, out io.Writer) error {
	add := func(key uint64) error {
		tree.Append(key)
		if opts.printEach {
			root, _ := tree.Root()
			_, err := fmt.Fprintf(out, "size=%d root: %s\n", tree.Size(), encode(root, opts.base64))
			return err
		}
		return nil
	}

	var err error
	if len(args) > 0 {
		err = keysFromArgs(ctx, args, add)
	} else {
		err = keysFromReader(ctx, in, add)
	}
	if err != nil {
		return err
	}

	root, ok := tree.Root()
	switch {
	case !ok:
		_, err = fmt.Fprintln(out, "root: <empty>")
	case !opts.printEach:
		_, err = fmt.Fprintf(out, "root: %s\n", encode(root, opts.base64))
	}
	return err
}

func keysFromArgs(ctx context.Context, args []string, fn func(uint64) error) error {
	for i, arg := range args {
		if err := ctx.Err(); err != nil {
			return err
		}
		key, err := parseKey(arg)
		if err != nil {
			return fmt.Errorf("argument %d: %w", i+1, err)
		}
		if err := fn(key); err != nil {
			return err
		}
	}
	return nil
}

// keysFromReader reads one key per line, ignoring blank lines and lines
// starting with '#'. It returns ctx.Err() as soon as ctx is done, even while
// a read is blocked.
func keysFromReader(ctx context.Context, r io.Reader, fn func(uint64) error) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(lines)
		s := bufio.NewScanner(r)
		for s.Scan() {
			select {
			case lines <- s.Text():
			case <-ctx.Done():
				errc <- ctx.Err()
				return
			}
		}
		errc <- s.Err()
	}()

	for line := 1; ; line++ {
		var text string
		select {
		case <-ctx.Done():
			return ctx.Err()
		case t, ok := <-lines:
			if !ok {
				return <-errc
			}
			text = strings.TrimSpace(t)
		}
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, err := parseKey(text)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		if err := fn(key); err != nil {
			return err
		}
	}
}

func parseKey(s string) (uint64, error) {
	key, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid key %q: %w", s, err)
	}
	return key, nil
}

func encode(h levelmerkle.Hash, b64 bool) string {
	if b64 {
		return h.Base64()
	}
	return h.String()
}
