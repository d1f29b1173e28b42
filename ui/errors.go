// SPDX-License-Identifier: Unlicense OR MIT

package ui

import "fmt"

// ContractError is the panic value for misuse of the tree building
// protocol. There is no way to recover the tree after a contract
// violation.
type ContractError struct {
	// Op is the operation that detected the violation, for example
	// "EndWidget".
	Op string
	// Msg describes the violation.
	Msg string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("ui: %s: %s", e.Op, e.Msg)
}

func contractf(op, format string, args ...any) {
	panic(&ContractError{Op: op, Msg: fmt.Sprintf(format, args...)})
}
