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
	"strings"

	"github.com/rodaine/table"
	"github.com/urfave/cli/v2"

	"github.com/ianlewis/go-wordnet/index"
)

var entriesCommand = &cli.Command{
	Name:      "entries",
	Usage:     "Print index entries",
	ArgsUsage: "[WORD]",
	Action: func(c *cli.Context) error {
		if c.Args().Len() > 1 {
			return fmt.Errorf("%w: unexpected number of arguments", ErrFlagParse)
		}

		wn, err := openWordNet(c)
		if err != nil {
			return err
		}

		var entries []*index.Entry
		if c.Args().Present() {
			entries, err = wn.Entries(c.Args().First())
		} else {
			entries, err = wn.IndexEntries()
		}
		if err != nil {
			return err
		}

		tbl := table.New("Lemma", "POS", "Synsets", "Pointers", "Senses", "Tagged", "Offsets").
			WithWriter(c.App.Writer)
		for _, e := range entries {
			offsets := make([]string, len(e.Offsets))
			for i, o := range e.Offsets {
				offsets[i] = fmt.Sprintf("%08d", o)
			}
			tbl.AddRow(
				e.Lemma,
				e.POS,
				e.SynsetCount,
				strings.Join(e.Pointers, " "),
				e.SenseCount,
				e.TagSenseCount,
				strings.Join(offsets, " "),
			)
		}
		tbl.Print()

		return nil
	},
}
