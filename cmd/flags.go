// Copyright 2017 Google LLC. All Rights Reserved.
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

// Package cmd contains helpers shared by the command-line programs.
package cmd

import (
	"errors"
	"flag"
	"os"

	"bitbucket.org/creachadair/shell"
)

// ParseFlagFile parses a set of flags from a file at the provided path into
// flag.CommandLine. The command line is parsed again afterwards, so flags
// given on the command line take precedence over flags in the file.
// Environment variables in the file are expanded.
func ParseFlagFile(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return parseFlags(flag.CommandLine, string(file), os.Args[1:])
}

func parseFlags(fs *flag.FlagSet, contents string, cliArgs []string) error {
	args, valid := shell.Split(os.ExpandEnv(contents))
	if !valid {
		return errors.New("flag file contains unclosed quotations")
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	return fs.Parse(cliArgs)
}
