// Package process terminates a headless browser together with its helper
// processes after PNG rendering.
package process
