// Package timezone keeps every timestamp the site stores or renders in the
// studio's local time.
//
// The location is read from APP_TIMEZONE when the package is imported and
// defaults to UTC. Use IANA names such as "Europe/London".
package timezone
