package installer_test

import (
	"testing"

	apperrors "github.com/arthur-debert/modinstall/pkg/errors"
	"github.com/arthur-debert/modinstall/pkg/installer"
	"github.com/arthur-debert/modinstall/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalog() map[string]types.Module {
	return map[string]types.Module{
		"C": {Enabled: true},
		"A": {Enabled: true},
		"B": {Enabled: false},
	}
}

func names(modules []types.Module) []string {
	out := make([]string, 0, len(modules))
	for _, m := range modules {
		out = append(out, m.Name)
	}
	return out
}

func TestSelectAllTakesEnabledSorted(t *testing.T) {
	got, err := installer.Select(catalog(), installer.ModeAll)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "C"}, names(got))
}

func TestSelectByNameIgnoresEnabled(t *testing.T) {
	got, err := installer.Select(catalog(), "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"B"}, names(got))
}

func TestSelectUnknownModule(t *testing.T) {
	got, err := installer.Select(catalog(), "Z")

	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, apperrors.IsErrorCode(err, apperrors.ErrUnknownModule))
	assert.NotEmpty(t, apperrors.Hint(err))
}

func TestSelectAllWithNothingEnabled(t *testing.T) {
	got, err := installer.Select(map[string]types.Module{"x": {}}, installer.ModeAll)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestNamesSorted(t *testing.T) {
	assert.Equal(t, []string{"A", "B", "C"}, installer.Names(catalog()))
}
