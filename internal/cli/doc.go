// Package cli turns the command line of household-datapackage into a
// validated app.Config. Usage errors are reported as *ExitError carrying
// exit code 2; -h and a missing definition path print usage instead.
package cli
