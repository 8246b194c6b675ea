// Package kvstore is the persistent key-value layer under every AskPro
// repository.
//
// # Overview
//
// A Store maps string keys to opaque byte values. A missing key is reported
// as (nil, nil), never as an error, and deleting a missing key is a no-op.
// ReadJSON and WriteJSON layer JSON encoding on top, which is how the
// repositories keep their collections under the askpro_* keys.
//
// # Backends
//
//   - MemoryStore: process-lifetime map, used by tests and "-b memory"
//   - SQLStore: kv table over database/sql, dialects sqlite and postgres
//   - LocalStorage: window.localStorage, only in js/wasm builds
//
// Open selects a backend from configuration and applies the SQL migrations.
//
// There is no schema versioning of stored values: a value written in an
// incompatible shape is reported by ReadJSON as ErrMalformed and the caller
// decides whether to fall back.
package kvstore
