// Package loader builds admin pages from declarative YAML or JSON documents.
//
// A document lists pages with their fields, layouts and metaboxes:
//
//	pages:
//	  - id: general
//	    title: General Settings
//	    fields:
//	      - id: site_title
//	        label: Site title
//	        required: true
//	      - id: per_page
//	        input_type: number
//	        min: 1
//	        max: 50
//	    layouts:
//	      - id: display
//	        type: tabs
//	        sections:
//	          - id: colors
//	            title: Colors
//	            fields:
//	              - id: accent
//	                default: "#1e73be"
//
// Fields without a type are resolved through a widgets.Registry. Definition
// mistakes are reported as criterio.FieldErrors with document paths such as
// "pages[0].fields[2].options".
package loader
