// Copyright 2024 The ForTheL Authors
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

// Package prover loads the external prover database.
//
// The database is a plain text file with one tag per line:
//
//	# E first
//	Peprover
//	LE 2.6
//	Ceprover --tstp-in --cpu-limit=%d
//	Ftptp
//	Y# SZS status Theorem
//	N# SZS status CounterSatisfiable
//	U# SZS status ResourceOut
//
// P starts a new prover and names it; L is a human-readable label; C is the
// command line, split like a shell would and with %d standing for the time
// limit in seconds; F selects the task format; Y, N and U add success,
// failure and unknown patterns matched against the prover's output lines.
// Blank lines and lines starting with # are ignored.
package prover

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/shlex"
)

// A Format is a task serialization format a prover understands.
type Format uint8

const (
	TPTP Format = iota
	DFG
)

func (f Format) String() string {
	switch f {
	case TPTP:
		return "tptp"
	case DFG:
		return "dfg"
	}
	panic("forthel: unknown prover format")
}

// A Prover describes one external prover.
type Prover struct {
	Name  string
	Label string

	// Path and Args are the split command line. Occurrences of %d in the
	// arguments are replaced by the time limit in seconds at invocation.
	Path string
	Args []string

	Format Format

	// Output classification patterns, matched as substrings per line.
	Successes []string
	Failures  []string
	Unknowns  []string
}

// Load reads a prover database file. Database errors are fatal and carry
// the offending line.
func Load(path string) ([]Prover, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ps, err := parse(path, string(data))
	if err != nil {
		return nil, err
	}
	return ps, nil
}

func parse(path, data string) ([]Prover, error) {
	var (
		provers []Prover
		cur     *Prover
		curLine int
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		if err := validate(cur); err != nil {
			return fmt.Errorf("%s:%d: prover %q: %w", path, curLine, cur.Name, err)
		}
		provers = append(provers, *cur)
		cur = nil
		return nil
	}
	for i, line := range strings.Split(data, "\n") {
		n := i + 1
		line = strings.TrimRight(line, "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tag, rest := line[0], line[1:]
		if tag != 'P' && cur == nil {
			return nil, fmt.Errorf("%s:%d: %q line outside a prover block", path, n, string(tag))
		}
		switch tag {
		case 'P':
			if err := flush(); err != nil {
				return nil, err
			}
			if rest == "" {
				return nil, fmt.Errorf("%s:%d: empty prover name", path, n)
			}
			cur = &Prover{Name: rest}
			curLine = n
		case 'L':
			cur.Label = rest
		case 'C':
			if cur.Path != "" {
				return nil, fmt.Errorf("%s:%d: duplicate command", path, n)
			}
			argv, err := shlex.Split(rest)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: bad command line: %v", path, n, err)
			}
			if len(argv) == 0 {
				return nil, fmt.Errorf("%s:%d: empty command", path, n)
			}
			cur.Path, cur.Args = argv[0], argv[1:]
		case 'F':
			switch rest {
			case "tptp":
				cur.Format = TPTP
			case "dfg":
				cur.Format = DFG
			default:
				return nil, fmt.Errorf("%s:%d: unknown format %q", path, n, rest)
			}
		case 'Y':
			cur.Successes = append(cur.Successes, rest)
		case 'N':
			cur.Failures = append(cur.Failures, rest)
		case 'U':
			cur.Unknowns = append(cur.Unknowns, rest)
		default:
			return nil, fmt.Errorf("%s:%d: unknown tag %q", path, n, string(tag))
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}
	if len(provers) == 0 {
		return nil, fmt.Errorf("%s: no provers", path)
	}
	return provers, nil
}

func validate(p *Prover) error {
	if p.Path == "" {
		return fmt.Errorf("missing command")
	}
	if len(p.Successes) == 0 {
		return fmt.Errorf("missing success pattern")
	}
	if len(p.Failures) == 0 && len(p.Unknowns) == 0 {
		return fmt.Errorf("missing failure and unknown patterns")
	}
	return nil
}

// ByName returns the prover named name, or the first prover if name is
// empty.
func ByName(provers []Prover, name string) (Prover, error) {
	if len(provers) == 0 {
		return Prover{}, fmt.Errorf("empty prover database")
	}
	if name == "" {
		return provers[0], nil
	}
	for _, p := range provers {
		if p.Name == name {
			return p, nil
		}
	}
	return Prover{}, fmt.Errorf("no such prover: %q", name)
}
