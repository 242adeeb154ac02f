// Package footer renders the genesis block hex dump appended below a snake
// animation.
//
// It owns the fixed 80-byte dump of the genesis block coinbase (the "The
// Times 03/Jan/2009" headline), the layout arithmetic that aligns the dump
// with the contribution grid, and the markup fragment whose clip-path reveal
// runs in lockstep with the snake loop.
package footer
