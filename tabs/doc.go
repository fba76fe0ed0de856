// Package tabs contains the console's top-level surfaces: topology canvas,
// approval queue, audit viewer, notifications and settings. Each implements
// core.Tab and talks to the datastore through the shared runtime.
package tabs
