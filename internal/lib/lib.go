// Package lib holds modules that do not fit strictly into the
// handler/service/repository layers.
//
// Subpackages:
//   - summation: the three sum-to-n implementations behind cmd/sumton
package lib
