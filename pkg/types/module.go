package types

// Module is a named, independently selectable bundle of operations
type Module struct {
	Name        string      `koanf:"-"`
	Description string      `koanf:"description"`
	Enabled     bool        `koanf:"enabled"`
	Operations  []Operation `koanf:"operations" validate:"dive"`
}
