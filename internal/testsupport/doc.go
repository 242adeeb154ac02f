// Package testsupport holds fixtures shared by package tests: snk-shaped SVG
// documents and small temp-file helpers.
package testsupport
