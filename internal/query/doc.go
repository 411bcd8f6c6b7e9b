// Package query provides read-only lookups and traversals over a decoded
// distribution.
//
// Lookups never fail: a missing module, type or value is reported with a
// false second result, never an error. Name arguments are tokenized the
// same way stored names are, so "ValueInUsd", "valueInUsd" and
// "value_in_usd" all find the value stored as ["value","in","usd"].
//
// TRAVERSAL:
//
// Walk visits every module, definition and tree node of the package
// definition in pre-order using an explicit work stack. Stack usage is
// bounded by the size of the tree, not by the Go call stack, so
// adversarially deep trees cannot overflow it. Stats and References are
// built on Walk.
package query
