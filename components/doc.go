// Package components contains the component types of the engine. Components
// reference each other through basita.Handle values, which serialize as plain strings.
package components
