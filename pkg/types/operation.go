package types

// OperationType defines the kind of work an operation performs
type OperationType string

const (
	// OperationReplaceFile copies one file over its target
	OperationReplaceFile OperationType = "replace_file"

	// OperationReplaceDir deletes the target directory and copies the source tree
	OperationReplaceDir OperationType = "replace_dir"

	// OperationMergeDir overlays the source tree onto the target without deleting
	OperationMergeDir OperationType = "merge_dir"

	// OperationProvisionBinary resolves or builds a helper binary and installs it on PATH
	OperationProvisionBinary OperationType = "provision_binary"

	// OperationPatchHostFile replaces a file of an external application after a one-time backup
	OperationPatchHostFile OperationType = "patch_host_file"
)

// legacyOperationTypes maps type tags of older catalogs to current ones
var legacyOperationTypes = map[string]OperationType{
	"copy_file":    OperationReplaceFile,
	"copy_dir":     OperationReplaceDir,
	"build_go":     OperationProvisionBinary,
	"patch_auggie": OperationPatchHostFile,
}

// AllOperationTypes returns every supported operation type
func AllOperationTypes() []OperationType {
	return []OperationType{
		OperationReplaceFile,
		OperationReplaceDir,
		OperationMergeDir,
		OperationProvisionBinary,
		OperationPatchHostFile,
	}
}

// ParseOperationType resolves a configuration tag, accepting legacy
// aliases. Unrecognized tags are returned unchanged so that the executor
// can report them when the operation runs.
func ParseOperationType(tag string) OperationType {
	if t, ok := legacyOperationTypes[tag]; ok {
		return t
	}
	return OperationType(tag)
}

// Known reports whether t is one of the supported operation types
func (t OperationType) Known() bool {
	for _, known := range AllOperationTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// Operation is one declared step of a module. Source and Target are
// relative to the source root and install root respectively.
type Operation struct {
	Type        OperationType `koanf:"type" validate:"required"`
	Source      string        `koanf:"source"`
	Target      string        `koanf:"target"`
	Description string        `koanf:"description"`
	// Binary is the final command name for provision_binary operations
	Binary string `koanf:"binary"`
}

// TargetPath returns Target, falling back to Source when unset
func (o Operation) TargetPath() string {
	if o.Target == "" {
		return o.Source
	}
	return o.Target
}

// Label returns a short human-readable identification of the operation
func (o Operation) Label() string {
	if o.Description != "" {
		return o.Description
	}
	if o.Source != "" {
		return string(o.Type) + " " + o.Source
	}
	return string(o.Type)
}
