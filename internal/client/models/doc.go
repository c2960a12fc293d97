// Package models defines the client-side data model of the Papacapim API.
package models
