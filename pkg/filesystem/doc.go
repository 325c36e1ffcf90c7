// Package filesystem holds the file collaborators used by a conversion:
// reading the load order, writing the userlist and clearing the masterlist.
//
// Everything goes through an afero.Fs so callers can swap the real disk for
// an in-memory filesystem.
package filesystem
