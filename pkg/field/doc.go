// Package field declares admin form fields and runs their
// sanitize-then-validate pipeline.
//
// A Field pairs its configuration (label, default, choices, bounds) with
// exactly one sanitizer and one validator. Builders pick a pairing that fits
// the field kind; WithSanitizer and WithValidator replace it.
//
//	f := field.TextInput("age").
//		Label("Age").
//		InputType(field.InputNumber).
//		Min(18).
//		Required(true)
//
//	res := f.Process("17") // res.Valid == false, f.State() == field.StateInvalid
//
// Each Process call walks the field through Pristine, Sanitized and finally
// Valid or Invalid. Fields are per-request objects and are not safe for
// concurrent use.
package field
