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

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fortytw2/leaktest"
	"github.com/google/go-cmp/cmp"
	"github.com/google/levelmerkle"
	"github.com/google/levelmerkle/merkle"
	"github.com/google/levelmerkle/merkle/plain"
	"github.com/google/levelmerkle/merkle/testonly"
	"github.com/google/levelmerkle/util/flagsaver"
	prom "github.com/prometheus/client_golang/prometheus"
)

func plainOpts() options {
	return options{strategy: levelmerkle.PlainSHA256}
}

func TestRunOutput(t *testing.T) {
	roots := testonly.RootHashes()
	rfcRoots := testonly.RFC6962RootHashes()
	for _, tc := range []struct {
		desc  string
		opts  options
		args  []string
		stdin string
		want  string
	}{
		{
			desc: "args",
			opts: plainOpts(),
			args: []string{"0", "1", "2", "3", "4"},
			want: fmt.Sprintf("root: %s\n", roots[4]),
		},
		{
			desc:  "stdin",
			opts:  plainOpts(),
			stdin: "# keys\n0\n\n  1 \n2\n",
			want:  fmt.Sprintf("root: %s\n", roots[2]),
		},
		{
			desc: "empty",
			opts: plainOpts(),
			want: "root: <empty>\n",
		},
		{
			desc:  "empty-print-each",
			opts:  options{strategy: levelmerkle.PlainSHA256, printEach: true},
			stdin: "# nothing here\n",
			want:  "root: <empty>\n",
		},
		{
			desc: "print-each",
			opts: options{strategy: levelmerkle.PlainSHA256, printEach: true},
			args: []string{"0", "1", "2"},
			want: fmt.Sprintf("size=1 root: %s\nsize=2 root: %s\nsize=3 root: %s\n", roots[0], roots[1], roots[2]),
		},
		{
			desc: "base64",
			opts: options{strategy: levelmerkle.PlainSHA256, base64: true},
			args: []string{"0", "1"},
			want: fmt.Sprintf("root: %s\n", roots[1].Base64()),
		},
		{
			desc: "rfc6962-incremental",
			opts: options{strategy: levelmerkle.RFC6962SHA256, incremental: true},
			args: []string{"0", "1", "2", "3", "4", "5", "6", "7"},
			want: fmt.Sprintf("root: %s\n", rfcRoots[7]),
		},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			var out bytes.Buffer
			if err := run(context.Background(), tc.opts, tc.args, strings.NewReader(tc.stdin), &out); err != nil {
				t.Fatalf("run(): %v", err)
			}
			if diff := cmp.Diff(tc.want, out.String()); diff != "" {
				t.Errorf("output diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRunErrors(t *testing.T) {
	for _, tc := range []struct {
		desc    string
		opts    options
		args    []string
		stdin   string
		wantErr string
	}{
		{desc: "bad-arg", opts: plainOpts(), args: []string{"1", "x"}, wantErr: "argument 2: invalid key \"x\""},
		{desc: "negative-arg", opts: plainOpts(), args: []string{"-1"}, wantErr: "argument 1"},
		{desc: "bad-line", opts: plainOpts(), stdin: "1\n# c\n18446744073709551616\n", wantErr: "line 3"},
		{desc: "unknown-strategy", opts: options{}, args: []string{"1"}, wantErr: "UNKNOWN_HASH_STRATEGY"},
	} {
		t.Run(tc.desc, func(t *testing.T) {
			var out bytes.Buffer
			err := run(context.Background(), tc.opts, tc.args, strings.NewReader(tc.stdin), &out)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("run() = %v, want error containing %q", err, tc.wantErr)
			}
		})
	}
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var out bytes.Buffer
	if err := run(ctx, plainOpts(), []string{"1"}, strings.NewReader(""), &out); err != context.Canceled {
		t.Errorf("run() = %v, want %v", err, context.Canceled)
	}
}

func TestRunCancelledWhileReading(t *testing.T) {
	t.Cleanup(leaktest.Check(t))
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	opts := plainOpts()
	opts.printEach = true
	out := &signalWriter{written: make(chan struct{})}
	errc := make(chan error, 1)
	go func() {
		errc <- run(ctx, opts, nil, pr, out)
	}()
	go func() {
		// The pipe stays open after this line, so the next read blocks.
		_, _ = pw.Write([]byte("5\n"))
	}()

	select {
	case <-out.written:
	case err := <-errc:
		t.Fatalf("run() returned early: %v", err)
	}
	cancel()

	select {
	case err := <-errc:
		if err != context.Canceled {
			t.Errorf("run() = %v, want %v", err, context.Canceled)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("run() still blocked on stdin after cancel")
	}
	want := fmt.Sprintf("size=1 root: %s\n", merkle.HashKey(plain.DefaultHasher, 5))
	if got := out.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestOptionsFromFlags(t *testing.T) {
	defer flagsaver.Save().MustRestore()

	for name, value := range map[string]string{
		"hash_strategy": "RFC6962_SHA256",
		"incremental":   "true",
		"base64":        "true",
		"print_each":    "true",
	} {
		if err := flag.Set(name, value); err != nil {
			t.Fatalf("flag.Set(%q, %q): %v", name, value, err)
		}
	}
	got, err := optionsFromFlags()
	if err != nil {
		t.Fatalf("optionsFromFlags(): %v", err)
	}
	want := options{strategy: levelmerkle.RFC6962SHA256, incremental: true, base64: true, printEach: true}
	if diff := cmp.Diff(want, got, cmp.AllowUnexported(options{})); diff != "" {
		t.Errorf("optionsFromFlags() diff (-want +got):\n%s", diff)
	}

	if err := flag.Set("hash_strategy", "md5"); err != nil {
		t.Fatalf("flag.Set(): %v", err)
	}
	if _, err := optionsFromFlags(); err == nil {
		t.Error("optionsFromFlags() with unknown strategy succeeded")
	}
}

// signalWriter collects output and closes written on the first write.
type signalWriter struct {
	mu      sync.Mutex
	buf     bytes.Buffer
	once    sync.Once
	written chan struct{}
}

func (w *signalWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	defer w.once.Do(func() { close(w.written) })
	return w.buf.Write(p)
}

func (w *signalWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestRunServesMetrics(t *testing.T) {
	t.Cleanup(leaktest.Check(t))
	reg := prom.NewRegistry()
	opts := plainOpts()
	opts.metricsEndpoint = "localhost:0"
	opts.registerer = reg
	opts.gatherer = reg

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out := &signalWriter{written: make(chan struct{})}
	errc := make(chan error, 1)
	go func() {
		errc <- run(ctx, opts, []string{"0", "1", "2"}, strings.NewReader(""), out)
	}()

	select {
	case <-out.written:
	case err := <-errc:
		t.Fatalf("run() returned early: %v", err)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather(): %v", err)
	}
	var size float64 = -1
	for _, mf := range mfs {
		if mf.GetName() == "levelmerkle_tree_size" {
			size = mf.GetMetric()[0].GetGauge().GetValue()
		}
	}
	if size != 3 {
		t.Errorf("levelmerkle_tree_size = %v, want 3", size)
	}

	cancel()
	if err := <-errc; err != nil {
		t.Errorf("run() after cancel = %v, want nil", err)
	}
	if want := fmt.Sprintf("root: %s\n", testonly.RootHashes()[2]); out.String() != want {
		t.Errorf("output = %q, want %q", out.String(), want)
	}
}
