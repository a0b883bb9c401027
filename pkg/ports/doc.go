/*
Package ports defines the interfaces between the project registry and its collaborators.

These interfaces decouple the core registry from the code that feeds it (validation, the
CLI shell) and the code that observes it (views, metrics), so every collaborator receives
the registry explicitly instead of reaching for a process-wide instance.

# Key Interfaces

  - ProjectRegistry: the observable collection (Subscribe, Add, MoveStatus, Projects).
  - Subscriber: the subscribe-only slice of ProjectRegistry handed to views.
  - IDGenerator: produces identities for new projects.
*/
package ports
