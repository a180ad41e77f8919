package rpn

import "strconv"

// UnknownTokenError is an error indicating a token that is not a number, a
// bound variable, a function, an operator, or a bracket. It implements
// InputError.
type UnknownTokenError struct {
	// Col is the position of the token.
	Col int
	// Text is the token.
	Text string
}

func (err *UnknownTokenError) Error() string {
	return errpos(err.Col, "unknown token "+strconv.Quote(err.Text))
}

func (err *UnknownTokenError) Pos() int {
	return err.Col
}

// BracketError is an error indicating mismatched parentheses in infix input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched bracket.
	Col int
	// Left is the open bracket if it is the one unmatched.
	Left string
	// Right is the close bracket if it is the one unmatched.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// MissingOperandError is an error indicating a function or operator in
// postfix input with too few values before it. It implements InputError.
type MissingOperandError struct {
	// Col is the position of the function or operator.
	Col int
	// Token is the function or operator.
	Token string
	// Need is the number of operands the token takes.
	Need int
	// Have is the number of values that were available.
	Have int
}

func (err *MissingOperandError) Error() string {
	operands := " operands"
	if err.Need == 1 {
		operands = " operand"
	}
	return errpos(err.Col, strconv.Quote(err.Token)+" needs "+strconv.Itoa(err.Need)+operands+" but has "+strconv.Itoa(err.Have))
}

func (err *MissingOperandError) Pos() int {
	return err.Col
}

// TooManyOperandsError is an error indicating that postfix input did not
// reduce to exactly one value. Empty input is reported with Count 0. It
// implements InputError.
type TooManyOperandsError struct {
	// Col is the position just past the end of the input.
	Col int
	// Count is the number of values left at the end of evaluation.
	Count int
}

func (err *TooManyOperandsError) Error() string {
	if err.Count == 0 {
		return errpos(err.Col, "no expression")
	}
	return errpos(err.Col, strconv.Itoa(err.Count)+" values left at end of expression")
}

func (err *TooManyOperandsError) Pos() int {
	return err.Col
}

// DivisionByZeroError is an error indicating division by exactly zero. It
// implements InputError.
type DivisionByZeroError struct {
	// Col is the position of the division operator.
	Col int
}

func (err *DivisionByZeroError) Error() string {
	return errpos(err.Col, "division by zero")
}

func (err *DivisionByZeroError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

var (
	_ InputError = (*UnknownTokenError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*MissingOperandError)(nil)
	_ InputError = (*TooManyOperandsError)(nil)
	_ InputError = (*DivisionByZeroError)(nil)
	_ InputError = DomainError{}
)
