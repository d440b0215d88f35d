// Package util contains small helpers shared across streamkit packages.
package util
