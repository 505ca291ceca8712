package material

import "fmt"

// Table is an append-only list of materials addressed by integer handles.
// It is populated during scene assembly and read concurrently during rendering.
type Table struct {
	materials []Material
}

// NewTable creates an empty material table
func NewTable() *Table {
	return &Table{}
}

// Add appends a material and returns its stable handle
func (t *Table) Add(m Material) int {
	t.materials = append(t.materials, m)
	return len(t.materials) - 1
}

// Get returns the material for a handle. Panics on an unknown handle.
func (t *Table) Get(handle int) Material {
	if handle < 0 || handle >= len(t.materials) {
		panic(fmt.Sprintf("material: unknown handle %d (table has %d materials)", handle, len(t.materials)))
	}
	return t.materials[handle]
}

// Len returns the number of materials in the table
func (t *Table) Len() int {
	return len(t.materials)
}
