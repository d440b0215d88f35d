// Package validation provides input validation helpers.
//
// Two styles are supported: the fluent Validator for imperative checks on
// individual fields, and struct-tag validation via Validate for whole
// configuration structs. Both report failures as *errors.AppError with
// per-field details.
package validation
