/*
Immutable persistent data structures can be copied and modified efficiently,
leaving the original unchanged. The packages below this one provide the
ordered maps of this module: dict, a map over caller-derived comparable
keys, backed by a persistent B-tree; strdict, its string-keyed adapter for
enum and refined key types; and trie, a standalone string map organized as a
character trie.

Every mutating-looking operation returns a new map value and leaves its
input untouched. Old and new incarnations share structure, so copies are
cheap in space and time, and concurrent readers need no locking.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package persistent
