/*
Package citymap builds and queries the in-memory graph of a transportation
map: cities are the nodes and routes are the edges between them.

Cities live in a single arena owned by the Map. Routes never hold pointers
to cities; they store CityID handles, which are indexes into that arena.
This keeps the Map a plain value graph with no cross-references to manage.

Construction is a single synchronous pass:

 1. Resolution: each endpoint name of a record is resolved through a
    Registry. Known names return their existing handle; new names are
    appended to the arena in first-seen order.

 2. Counting: both referenced cities get their RouteCount incremented. A
    self-loop (both endpoints naming the same city) counts twice.

 3. Finalization: once every record is processed the Builder hands out an
    immutable *Map. The first malformed record aborts the pass and no Map
    is produced.

A finished Map is never mutated, so it may be shared between goroutines
without locking.
*/
package citymap
