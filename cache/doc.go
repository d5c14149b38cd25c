// Package cache stores serialized catalogue payloads for the cache-aside
// services.
//
// A Store holds raw bytes under string keys. GetJSON and SetJSON encode the
// semantic value (a single response or a list of responses) on the way in
// and decode it on the way out. Entries never expire on their own; they live
// until a service invalidates them, either by exact key or by prefix.
//
// Two backends are provided:
//
//   - memory: an in-process sturdyc client, suited to a single instance
//   - redis: a shared Redis server, suited to several instances
//
// Key names are built with the helpers in keys.go. The invalidation rules in
// the services package depend on that exact layout, in particular on the
// trailing separator of the prefix helpers so that "dish:1:" never matches
// "dish:10:...".
package cache
