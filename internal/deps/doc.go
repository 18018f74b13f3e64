// Package deps checks for the external binaries a conversion run requires
// before any job may begin.
package deps
