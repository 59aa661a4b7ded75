// Package layout groups fields into tabbed or accordion sections.
//
// Layouts are created directly (NewTabs, NewAccordion) or by type name through
// a Types registry, which lets integrators plug in their own layout kinds.
// Asking a registry for an unregistered type is a configuration error
// (ErrUnknownType).
package layout
