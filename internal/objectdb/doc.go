// Package objectdb is the content-addressed object store for one season.
//
// The store keeps:
//   - Typed arenas: conferences, teams, games. Each is a slice preallocated at
//     a fixed capacity that never grows, so handles and record pointers stay
//     valid for the life of the store.
//   - An object arena of wrappers (content identifier, type tag, handle into
//     the typed arena, next link of the bin chain).
//   - A power-of-two directory of bin heads. An identifier's bin is its first
//     four bytes read big-endian, masked.
//
// Records follow a create → populate → add lifecycle. Create hands out a
// zeroed slot, the caller fills it in, and Add derives the content
// identifier, rejects duplicates, and makes the record visible to Get.
// Nothing is ever removed; Clear resets the whole store between runs.
//
// Cross-references are stored as content identifiers while files are being
// ingested. Link runs once afterwards and resolves every Team→Conference and
// Game→Team reference into a handle.
//
// Handles are 1-based arena indexes; the zero handle means "none" everywhere,
// including the bin heads and chain links, so no identifier value is reserved
// as a sentinel.
package objectdb
