// Package page assembles admin pages and metaboxes out of fields and layouts
// and applies form submissions to them.
//
// Pages and metaboxes only describe structure. Registering them with a host
// admin (menus, screens, capabilities) is left to the integrator, who reads
// the accessors exposed here.
package page
