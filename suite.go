package bfsim

import (
	"fmt"

	bf "nickandperla.net/bfsim/brainfuck"
)

// A Suite is a named list of programs with their input and expected output,
// loaded from TOML ([[case]] tables) or YAML (a cases list).
type Suite struct {
	Name    string            `toml:"name" yaml:"name"`
	Machine *bf.MachineConfig `toml:"machine" yaml:"machine"`
	Cases   []*Case           `toml:"case" yaml:"cases"`
}

type Case struct {
	Name     string `toml:"name" yaml:"name"`
	Program  string `toml:"program" yaml:"program"`
	Input    string `toml:"input" yaml:"input"`
	Expected string `toml:"expected" yaml:"expected"`
	// ExpectError, when set, must appear in the error message of the run
	// and Expected is then compared against the partial output.
	ExpectError string `toml:"expect_error" yaml:"expect_error"`
}

func LoadSuite(path string) (*Suite, error) {
	suite := &Suite{}
	if err := decodeFile(path, suite); err != nil {
		return nil, err
	}
	if err := suite.Validate(); err != nil {
		return nil, fmt.Errorf("Suite %s: %w", path, err)
	}
	return suite, nil
}

func (s *Suite) Validate() error {
	if len(s.Cases) == 0 {
		return fmt.Errorf("Suite [%s] has no cases", s.Name)
	}
	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c == nil {
			return fmt.Errorf("Case [%d] is empty", i)
		}
		if c.Name == "" {
			c.Name = fmt.Sprintf("case-%d", i+1)
		}
		if seen[c.Name] {
			return fmt.Errorf("Case name [%s] is used more than once", c.Name)
		}
		seen[c.Name] = true
	}
	return nil
}
