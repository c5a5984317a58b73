package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/jcorbin/avm/internal/operand"
)

type programCase struct {
	Name   string    `yaml:"name"`
	Source string    `yaml:"source"`
	Output *string   `yaml:"output"`
	Stack  *[]string `yaml:"stack"`
	Error  string    `yaml:"error"`
	Halted *bool     `yaml:"halted"`
}

var programErrors = map[string]error{
	"parse":            operand.ErrParse,
	"overflow":         operand.ErrOverflow,
	"underflow":        operand.ErrUnderflow,
	"division_by_zero": operand.ErrDivisionByZero,
	"empty_stack":      ErrEmptyStack,
	"assertion":        ErrAssertion,
	"wrong_type":       ErrWrongType,
	"not_executed":     ErrNotExecuted,
}

func loadProgramCases(t *testing.T, name string) (cases []programCase) {
	f, err := os.Open(name)
	require.NoError(t, err)
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	require.NoError(t, dec.Decode(&cases), "invalid fixtures in %v", name)
	return cases
}

func (pc programCase) vmTest(t *testing.T) vmTestCase {
	vmt := vmTest(pc.Name).withSource(pc.Source)
	if pc.Error != "" {
		err, ok := programErrors[pc.Error]
		require.True(t, ok, "%v: unknown error name %q", pc.Name, pc.Error)
		vmt = vmt.expectError(err)
	}
	if pc.Output != nil {
		vmt = vmt.expectOutput(*pc.Output)
	}
	if pc.Stack != nil {
		vmt = vmt.expectStack(*pc.Stack...)
	}
	if pc.Halted != nil {
		vmt = vmt.expectHalted(*pc.Halted)
	}
	return vmt
}

func TestPrograms(t *testing.T) {
	var vmts vmTestCases
	for _, pc := range loadProgramCases(t, "testdata/programs.yaml") {
		vmts = append(vmts, pc.vmTest(t))
	}
	require.NotEmpty(t, vmts)
	vmts.run(t)
}
