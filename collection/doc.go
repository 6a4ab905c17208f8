// Package collection provides thin, allocator-parameterized containers.
//
// Every container requests its backing memory through an
// arenakit.Allocator chosen at construction, so the same container type
// can be arena-backed (bulk-freed with the arena) or heap-backed
// (GC-managed). The containers add no allocation logic of their own: they
// are parameterizations over the allocator contract.
//
// List growth routes through arenakit.GrowSlice, so an arena-backed list
// that is the arena's most recent allocation grows in place without
// copying. The same holds for Builder.
//
// Containers inherit the allocator's concurrency model: arena-backed
// containers belong to the arena's single owner.
package collection
