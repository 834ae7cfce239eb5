// Package viz renders the particle field in the terminal.
//
// A braille [Canvas] gives a 2x4 sub-pixel grid per character cell;
// [DrawField] projects simulation renderables onto it with the world
// origin at the viewport center and the y axis pointing up.
package viz
