// Package domain contains the core business entities and domain logic of
// the application: the card record and the suit and value enumerations it
// is validated against, independent of any specific infrastructure or
// delivery mechanism.
package domain
