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

// Package export serializes reasoning tasks for external provers, invokes
// them and classifies their verdicts.
package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"forthel.org/go/fact"
	"forthel.org/go/instr"
	"forthel.org/go/prover"
)

// ErrUnsure reports that the prover gave neither a success nor a failure
// verdict within its budget.
var ErrUnsure = errors.New("prover gave no verdict")

// Export serializes the task, runs the selected prover on it and returns
// its verdict: true for proved, false with a nil error for a definite
// rejection, false with an error for timeouts and unclassifiable output.
// The iteration number of the goal driver scales the prover time limit, so
// deeper retries get more patience.
func Export(reduced bool, iteration int, provers []prover.Prover, is instr.Set, context []fact.Fact, goal fact.Fact) (bool, error) {
	p, err := prover.ByName(provers, is.Str(instr.Prover, ""))
	if err != nil {
		return false, err
	}
	if iteration < 1 {
		iteration = 1
	}
	timeout := is.Int(instr.Timelimit, 3) * iteration

	var task string
	switch p.Format {
	case prover.TPTP:
		task = TPTPTask(context, goal, reduced)
	case prover.DFG:
		task = DFGTask(context, goal, reduced)
	}

	if dir := is.Str(instr.Dump, ""); dir != "" {
		if err := dumpTask(dir, p.Format, task); err != nil {
			return false, err
		}
	}

	out, timedOut, err := run(p, timeout, task)
	if err != nil {
		return false, err
	}
	for _, line := range strings.Split(out, "\n") {
		for _, pat := range p.Successes {
			if strings.Contains(line, pat) {
				return true, nil
			}
		}
		for _, pat := range p.Failures {
			if strings.Contains(line, pat) {
				return false, nil
			}
		}
		for _, pat := range p.Unknowns {
			if strings.Contains(line, pat) {
				return false, fmt.Errorf("prover %s: %w", p.Name, ErrUnsure)
			}
		}
	}
	if timedOut {
		return false, fmt.Errorf("prover %s: timed out after %ds", p.Name, timeout)
	}
	return false, fmt.Errorf("prover %s: %w", p.Name, ErrUnsure)
}

// run feeds the task to the prover on stdin and captures its combined
// output. The prover is told its time limit through the %d argument
// placeholders; a grace second later the process is killed.
func run(p prover.Prover, timeout int, task string) (out string, timedOut bool, err error) {
	args := make([]string, len(p.Args))
	for i, a := range p.Args {
		args[i] = strings.ReplaceAll(a, "%d", strconv.Itoa(timeout))
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout+1)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.Path, args...)
	cmd.Stdin = strings.NewReader(task)
	b, runErr := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return string(b), true, nil
	}
	if runErr != nil {
		// Provers signal rejection through their exit status; the output
		// patterns decide, not the exit code.
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return "", false, fmt.Errorf("prover %s: %w", p.Name, runErr)
		}
	}
	return string(b), false, nil
}

func dumpTask(dir string, f prover.Format, task string) error {
	ext := ".p"
	if f == prover.DFG {
		ext = ".dfg"
	}
	name := filepath.Join(dir, "task-"+uuid.NewString()+ext)
	return os.WriteFile(name, []byte(task), 0o666)
}
