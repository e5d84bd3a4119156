// Package cond implements the Vellum comparison condition.
//
// A condition relates the values of two operand expressions (or three for
// the "between" range form) under one of six relations. Construction runs
// the resolution protocol once per parsed condition:
//
//  1. Operands whose declared type is fully dynamic are speculatively
//     narrowed under a retained diagnostic scope, so a failed attempt
//     produces no user-visible errors on its own.
//  2. The comparator registry is consulted for the resolved type pair.
//     For the range form the second type is the common supertype of the
//     lower and upper bounds.
//  3. If either side stays fully dynamic, construction succeeds with a
//     deferred binding: dispatch happens per value pair at evaluation
//     time, using the runtime types of that pair.
//
// Evaluation then runs once per event. Each operand may yield several
// values; the condition quantifies over them according to each operand's
// conjunctive ("and") or disjunctive ("or") grouping, nesting first over
// the first operand and then the second (and third), with short-circuit.
package cond
