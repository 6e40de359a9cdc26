// Package handler is the first layer. The first entry point
// for business logic after the router.
//
// It composes the validation chain of every operation from the
// validation stages and the service's loader and terminal handlers,
// then runs it for each request through Handle.
package handler
