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

package instr

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads an instruction preset from a YAML file mapping flag names to
// values:
//
//	depthlimit: 5
//	ontored: true
//	prover: eprover
//
// Unknown flags and values of the wrong kind are errors.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse parses a YAML instruction preset. See Load.
func Parse(data []byte) (Set, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	var s Set
	for name, value := range raw {
		f, ok := flagByName(name)
		if !ok {
			return nil, fmt.Errorf("unknown instruction %q", name)
		}
		switch f.kind() {
		case boolKind:
			v, ok := value.(bool)
			if !ok {
				return nil, fmt.Errorf("instruction %q wants a boolean, got %v", name, value)
			}
			s = append(s, SetBool(f, v))
		case intKind:
			v, ok := value.(int)
			if !ok {
				return nil, fmt.Errorf("instruction %q wants an integer, got %v", name, value)
			}
			s = append(s, SetInt(f, v))
		case strKind:
			v, ok := value.(string)
			if !ok {
				return nil, fmt.Errorf("instruction %q wants a string, got %v", name, value)
			}
			s = append(s, SetStr(f, v))
		}
	}
	return s, nil
}

type kind uint8

const (
	boolKind kind = iota
	intKind
	strKind
)

func (f Flag) kind() kind {
	switch f {
	case Depthlimit, Timelimit:
		return intKind
	case Prover, Dump:
		return strKind
	}
	return boolKind
}

func flagByName(name string) (Flag, bool) {
	for f, n := range flagNames {
		if n == name {
			return Flag(f), true
		}
	}
	return 0, false
}
