// Package user contains the User identity entity and its Role. The core
// only performs identity lookup; authentication and the external OAuth flow
// are collaborators outside this module.
package user
