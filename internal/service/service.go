// Package service contains the business logic.
//
// It sits between the handler and repository layers. Each service
// provides the loader stage and the terminal handlers for one resource;
// the handler layer composes them with validators into chains.
package service
