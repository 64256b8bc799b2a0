// Package core defines the fundamental value types shared by every bfield
// solver: observation points (cylindrical and Cartesian), field vectors,
// magnet geometries, physical constants and the package's sentinel errors.
//
// Design principles:
//   - Value semantics: every type is a small immutable struct or array;
//     solvers receive copies and never mutate caller state.
//   - Validation up front: geometries expose Validate(), and every solver
//     rejects invalid geometry with a core sentinel before any numerics run.
//   - No hidden state: there are no package-level mutable variables; all
//     magnet parameters travel inside explicit geometry values so that many
//     geometries can be evaluated concurrently without interference.
//
// Units are SI throughout: metres, A/m for magnetization, Tesla for fields.
package core
