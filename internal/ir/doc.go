// Package ir provides the Morphir intermediate representation data model.
//
// This package contains type definitions and the name machinery only. All
// other internal packages import ir; ir imports nothing internal. This keeps
// the IR as the foundational layer with no circular dependencies.
//
// Key design constraints:
//   - Every tree is an immutable value; transformations build new trees
//   - Sum types are sealed interfaces (unexported marker method)
//   - Nodes are generic over their attribute payload (Type[A], Value[TA, VA])
//   - Keyed collections (modules, types, values) preserve insertion order
//   - Names compare by their canonical kebab-case form
package ir
