// Package lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains shared utilities (id generation) and the Prometheus
// metrics recorded around every chain run.
package lib
