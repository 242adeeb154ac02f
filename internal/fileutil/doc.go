// Package fileutil holds small filesystem helpers.
package fileutil
