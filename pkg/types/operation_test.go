package types_test

import (
	"testing"

	"github.com/arthur-debert/modinstall/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestParseOperationType(t *testing.T) {
	tests := []struct {
		tag  string
		want types.OperationType
	}{
		{"replace_file", types.OperationReplaceFile},
		{"copy_file", types.OperationReplaceFile},
		{"copy_dir", types.OperationReplaceDir},
		{"merge_dir", types.OperationMergeDir},
		{"build_go", types.OperationProvisionBinary},
		{"patch_auggie", types.OperationPatchHostFile},
		{"symlink", types.OperationType("symlink")},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			assert.Equal(t, tt.want, types.ParseOperationType(tt.tag))
		})
	}
}

func TestOperationTypeKnown(t *testing.T) {
	for _, opType := range types.AllOperationTypes() {
		assert.True(t, opType.Known(), opType)
	}
	assert.False(t, types.OperationType("copy_file").Known())
	assert.False(t, types.OperationType("").Known())
}

func TestTargetPathDefaultsToSource(t *testing.T) {
	op := types.Operation{Type: types.OperationMergeDir, Source: "commands"}
	assert.Equal(t, "commands", op.TargetPath())

	op.Target = "commands/ccg"
	assert.Equal(t, "commands/ccg", op.TargetPath())
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Install commands", types.Operation{Description: "Install commands"}.Label())
	assert.Equal(t, "merge_dir agents", types.Operation{Type: types.OperationMergeDir, Source: "agents"}.Label())
	assert.Equal(t, "patch_host_file", types.Operation{Type: types.OperationPatchHostFile}.Label())
}
