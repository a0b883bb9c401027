/*
Package domain contains the core domain models for the tracker.

It defines the tracked entities and the vocabulary shared by the registry and its
collaborators (validation, views, metrics). This package is kept pure and free of
external dependencies like I/O or rendering.

# Key Entities

  - Project: a tracked record with a stable ID and a mutable Status.
  - Status: the two-value classification (Active, Finished).
  - Draft: the user-supplied fields of a project before it is registered.
  - ProjectEvent: what lifecycle hooks receive after a mutation.
*/
package domain
