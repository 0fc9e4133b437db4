package stagewright

import "github.com/google/uuid"

// ContainerId is an opaque, comparable identifier for a container (scene
// node). It is stable for the lifetime of a session.
type ContainerId uuid.UUID

// NewContainerId returns a fresh random ContainerId.
func NewContainerId() ContainerId {
	return ContainerId(uuid.New())
}

// String renders the identifier in canonical UUID form.
func (id ContainerId) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether id is the zero ContainerId.
func (id ContainerId) IsNil() bool {
	return id == ContainerId{}
}

// LibraryId is an opaque, comparable identifier for a library item (a
// vector shape or a raster pattern).
type LibraryId uuid.UUID

// NewLibraryId returns a fresh random LibraryId.
func NewLibraryId() LibraryId {
	return LibraryId(uuid.New())
}

// String renders the identifier in canonical UUID form.
func (id LibraryId) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether id is the zero LibraryId.
func (id LibraryId) IsNil() bool {
	return id == LibraryId{}
}

// QuadTreeLayer names a spatial-index layer a container may participate in.
type QuadTreeLayer uint32
