// Package table implements the editable table model and its keyboard
// navigation rules.
//
// Coordinates are 0-based (Row, Col) cell indices. A Table always has at
// least one row and one column, and every row has exactly Cols() cells.
package table
