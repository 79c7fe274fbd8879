// Package pipes models a diagram of pipe segments as a graph and finds the
// closed loop through the start marker.
//
// Cells decode from '|', '-', 'L', 'J', '7', 'F' (pipes), '.' (ground) and
// 'S' (start). The start is kept as a placeholder while parsing and resolved
// afterwards from which neighbors point back at it; a start with other than
// two such neighbors is rejected with ErrAmbiguousStart.
//
// Two cells are adjacent only when both pipes open towards each other, so the
// flood fill from the start visits exactly the loop. Farthest reports half the
// loop length and EnclosedCount the number of cells the loop surrounds.
//
// FromDigPlan builds the same kind of loop from "R 6 (#70c710)" style dig
// instructions; Area then counts the trench together with its interior.
package pipes
