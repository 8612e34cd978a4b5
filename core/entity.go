package core

// Entity is a unique identifier for a scene node
// The zero value is never allocated and means "no entity"
type Entity uint64

// EntityNone is the zero entity
const EntityNone Entity = 0
