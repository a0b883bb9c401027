/*
Package observability turns registry lifecycle hooks into logs and Prometheus metrics.

Hooks built here are plain domain.LifecycleHooks values, so they can be combined and
passed to registry.WithLifecycleHooks or tracker.WithLifecycleHooks.
*/
package observability
