// Package phone validates, formats and classifies Myanmar mobile numbers.
// This is part of the platform layer and contains no business logic; every
// function is pure and safe for concurrent use.
package phone
