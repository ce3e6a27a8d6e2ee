// Package main implements simplecalc, a Reverse Polish Notation calculator.
//
// Input is read a line at a time and split on whitespace into tokens. Each token
// is either a number, which is pushed onto the stack, or the name of a command,
// which operates on the stack:
//
//	10 3 - print
//	-7
//
// Binary commands pop twice and apply themselves to the first value popped and
// then the second, so the example above computes 3 - 10. Likewise "8 2 log"
// takes the logarithm of 8 in base 2.
//
// Commands never abort the session: asking for more values than the stack holds,
// or for a command that does not exist, prints a single line of complaint and
// leaves the stack alone. Floating point results like division by zero are not
// errors at all; use inf? nan? and fin? to test for them.
//
// Run "help" for the list of commands. End of input (Ctrl+D) exits.
//
// Flags:
//
//	-trace    log each line read and each token evaluated to stderr
//	-metrics  print session counters in Prometheus text format on exit
//	-timeout  give up after a time limit
//
// Any other argument is a usage error.
package main
