// Copyright 2026 Google LLC
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
	"fmt"

	"github.com/urfave/cli/v2"
)

var wordsCommand = &cli.Command{
	Name:      "words",
	Usage:     "List all words",
	ArgsUsage: " ",
	Action: func(c *cli.Context) error {
		if c.Args().Present() {
			return fmt.Errorf("%w: unexpected arguments", ErrFlagParse)
		}

		wn, err := openWordNet(c)
		if err != nil {
			return err
		}

		for _, w := range wn.Words() {
			fmt.Fprintln(c.App.Writer, w)
		}
		return nil
	},
}
