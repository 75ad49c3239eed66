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

	"github.com/ianlewis/go-wordnet"
	"github.com/ianlewis/go-wordnet/pos"
)

var synsetsCommand = &cli.Command{
	Name:      "synsets",
	Usage:     "Print synsets from the data files",
	ArgsUsage: " ",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "pos",
			Usage: "only print synsets of part of speech `P` (n, v, a, s, r)",
		},
		&cli.IntFlag{
			Name:  "limit",
			Usage: "print at most `N` synsets",
		},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Present() {
			return fmt.Errorf("%w: unexpected arguments", ErrFlagParse)
		}

		var p pos.POS
		if c.IsSet("pos") {
			var err error
			p, err = pos.Parse(c.String("pos"))
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFlagParse, err)
			}
		}
		limit := c.Int("limit")
		if limit < 0 {
			return fmt.Errorf("%w: negative limit %d", ErrFlagParse, limit)
		}

		wn, err := openWordNet(c)
		if err != nil {
			return err
		}

		tbl := table.New("Offset", "POS", "Lexfile", "Words", "Gloss").
			WithWriter(c.App.Writer)
		n := 0
		for s, err := range wn.Synsets(c.Context, p, &wordnet.LookupOptions{SkipPointers: true}) {
			if err != nil {
				return err
			}
			lexfile, ok := wn.LexFileName(s.LexFilenum)
			if !ok {
				lexfile = fmt.Sprintf("%02d", s.LexFilenum)
			}
			words := make([]string, len(s.Words))
			for i, w := range s.Words {
				words[i] = w.Text()
			}
			tbl.AddRow(fmt.Sprintf("%08d", s.Offset), s.POS, lexfile, strings.Join(words, ", "), s.Glossary)

			n++
			if n == limit {
				break
			}
		}
		tbl.Print()

		return nil
	},
}
