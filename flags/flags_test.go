package flags

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// TestOptionalFlagsDontSetRequired asserts that all flags deemed optional set
// the Required field to false.
func TestOptionalFlagsDontSetRequired(t *testing.T) {
	for _, flag := range optionalFlags {
		reqFlag, ok := flag.(cli.RequiredFlag)
		require.True(t, ok)
		require.False(t, reqFlag.IsRequired())
	}
}

// TestUniqueFlags asserts that all flag names are unique, to avoid accidental conflicts between the many flags.
func TestUniqueFlags(t *testing.T) {
	seenCLI := make(map[string]struct{})
	for _, flag := range Flags {
		name := flag.Names()[0]
		if _, ok := seenCLI[name]; ok {
			t.Errorf("duplicate flag %s", name)
			continue
		}
		seenCLI[name] = struct{}{}
	}
}

// TestFlagsHaveEnvVars asserts every flag carries a prefixed env-var alias.
func TestFlagsHaveEnvVars(t *testing.T) {
	for _, flag := range Flags {
		values := flag.(interface{ GetEnvVars() []string }).GetEnvVars()
		require.Len(t, values, 1, "flag %s", flag.Names()[0])
		require.True(t, strings.HasPrefix(values[0], EnvVarPrefix+"_"),
			"flag %s env var %s misses prefix", flag.Names()[0], values[0])
	}
}
