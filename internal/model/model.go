// Package model contains the domain entities of the walks API.
// Models carry JSON tags so handlers can echo them, but no persistence details.
package model
