// Package validation contains the stages that check request data before
// any mutation runs.
//
// It uses the `validator` library for presence checks (its `required`
// rule treats "", 0, false and null as missing, like the API contract
// does) and a custom `posint` rule for prices and quantities. Every stage
// fails with a 400 *errs.HTTPError carrying the client-facing message.
package validation
