// Package rpn converts infix arithmetic to Reverse Polish Notation and
// evaluates RPN to a number.
//
// Infix expressions use the binary operators + - * / with the usual
// precedence, parentheses, numbers, variables, and the unary functions exp,
// ln, sqr, sqrt, cos, sin, tan, acos, asin, atan, and round. Functions take a
// parenthesized argument: "sqrt(x)+sqr(y)-ln(z)" becomes
// "x sqrt y sqr + z ln -". There are no unary operators, so "-1" is not an
// expression; write "0-1".
//
// Variables are whatever names are in the Vars passed to each call. The same
// Vars can be used for many conversions and evaluations, including
// concurrently.
//
package rpn
