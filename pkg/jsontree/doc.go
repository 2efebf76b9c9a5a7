// Package jsontree provides an order-preserving value tree for JSON and YAML
// payloads. Standard map-based decoding loses the declaration order of object
// fields, which downstream consumers of OpenAPI schemas rely on, so the tree
// keeps object members as an ordered slice instead.
package jsontree
