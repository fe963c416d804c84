// Copyright 2017 Google Inc. All Rights Reserved.
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

// Package flagsaver saves flag values and restores them later, typically at
// the end of a test that changes flags.
//
// Example:
//
//	func TestFoo(t *testing.T) {
//	  defer flagsaver.Save().MustRestore()
//	  // Test code that changes flags
//	} // flags are reset to their original values here.
package flagsaver

import (
	"flag"
	"strings"

	"k8s.io/klog/v2"
)

// Stash holds flag values of a single FlagSet so they can be restored.
type Stash struct {
	fs    *flag.FlagSet
	flags map[string]string
}

// Restore sets every saved flag back to the value it had when the Stash was
// created.
func (s *Stash) Restore() error {
	for name, value := range s.flags {
		if err := s.fs.Set(name, value); err != nil {
			return err
		}
	}
	return nil
}

// Save captures the current value of all flags on flag.CommandLine.
func Save() *Stash {
	return SaveSet(flag.CommandLine)
}

// SaveSet captures the current value of all flags defined on fs.
func SaveSet(fs *flag.FlagSet) *Stash {
	s := Stash{
		fs:    fs,
		flags: make(map[string]string),
	}
	// log_backtrace_at may report an empty value that it refuses to be set to.
	fs.VisitAll(func(f *flag.Flag) {
		if !strings.HasPrefix(f.Name, "test.") && f.Name != "log_backtrace_at" {
			s.flags[f.Name] = f.Value.String()
		}
	})
	return &s
}

// MustRestore calls Restore and exits on failure, since later tests would run
// against flags in an unknown state.
func (s *Stash) MustRestore() {
	if err := s.Restore(); err != nil {
		klog.Exitf("MustRestore(): failed to restore flags: %v", err)
	}
}
