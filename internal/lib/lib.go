// Packages lib acts as a library for modules that do not fit
// strictly into other layers.
//
// It contains the access token signer used by the auth service and
// the auth middleware.
package lib
