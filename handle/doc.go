// Package handle provides ownership handles that construct and destroy
// their payload through an arenakit.Allocator instead of the Go runtime
// alone.
//
// Three handle kinds exist:
//
//   - Unique: exclusive ownership of one value. Destroyed exactly once,
//     through the allocator that created it.
//   - Shared: reference-counted ownership among N holders. The payload is
//     destroyed when the last holder drops.
//   - Weak: observes a Shared family's payload without extending its
//     lifetime. Lock upgrades to a Shared handle, or reports expiration.
//
// Go has no destructors, so destruction is explicit: Unique.Destroy and
// Shared.Drop/Weak.Drop end a handle's ownership. An optional finalizer
// runs before the payload's memory is released, filling the role of a
// destructor for payloads that own other resources.
//
// Handles are small values. Copying a Shared or Weak handle with plain
// assignment aliases it without adjusting reference counts; create
// additional owners with Clone, and treat a plainly copied handle as a
// borrow that must not be dropped.
//
// Reference counting is atomic: concurrent Clone, Drop and Lock calls
// against the same family are safe. The payload itself is whatever the
// caller put there; coordinating access to it is the caller's business.
package handle
